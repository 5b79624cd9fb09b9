// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dispatch

import (
	"strconv"
	"strings"

	"github.com/danielhkuo/agent-dispatch/fileparse"
	"github.com/danielhkuo/agent-dispatch/models"
)

// Candidate header names per canonical field, tried in order. Precedence
// matters: a file carrying both "firstName" and "FirstName" columns
// resolves to the former.
var (
	firstNameKeys = []string{"firstName", "FirstName"}
	phoneKeys     = []string{"phone", "Phone"}
	notesKeys     = []string{"notes", "Notes"}
)

// Normalize maps raw records onto canonical contacts and drops rows
// missing a first name or phone. Surviving rows keep their input order.
// Phone format is deliberately not validated beyond non-emptiness.
func Normalize(records []fileparse.Record) []models.Contact {
	contacts := make([]models.Contact, 0, len(records))
	for _, record := range records {
		contact := models.Contact{
			FirstName: resolve(record, firstNameKeys),
			Phone:     coercePhone(resolve(record, phoneKeys)),
			Notes:     resolve(record, notesKeys),
		}
		if contact.FirstName == "" || contact.Phone == "" {
			continue
		}
		contacts = append(contacts, contact)
	}
	return contacts
}

// resolve returns the first non-empty value among the candidate keys, or
// "" when every candidate misses.
func resolve(record fileparse.Record, keys []string) string {
	for _, key := range keys {
		if v := record[key]; v != "" {
			return v
		}
	}
	return ""
}

// coercePhone rewrites numeric renderings of a phone back to plain
// digits. Spreadsheet cells typed as numbers can surface as "2.22333e+09"
// or "1234567890.0"; both must round-trip to the full decimal string.
// Anything that isn't float-shaped passes through untouched.
func coercePhone(phone string) string {
	if !strings.ContainsAny(phone, ".eE") {
		return phone
	}
	f, err := strconv.ParseFloat(phone, 64)
	if err != nil {
		return phone
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
