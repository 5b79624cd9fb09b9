// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fileparse

import "errors"

// ErrInvalidInput marks a payload that could not be parsed as the declared
// (or fallback) format. Handlers surface it as a client error.
var ErrInvalidInput = errors.New("invalid input file")

// Record is one parsed row keyed by the file's header names, exactly as
// they appear in the source. Key casing is the uploader's problem until
// normalization.
type Record map[string]string

// Parse converts an uploaded payload into records, dispatching on the
// declared mimetype: text/csv is parsed as CSV, anything else is attempted
// as a spreadsheet workbook. The result is fully materialized — downstream
// distribution needs the whole batch and its count.
//
// An empty file body (headers only, or nothing at all) yields an empty
// record slice without error; whether that is acceptable is the caller's
// call.
func Parse(data []byte, declaredType string) ([]Record, error) {
	if data == nil {
		return nil, ErrInvalidInput
	}

	switch DetectKind(declaredType) {
	case KindCSV:
		return parseCSV(data)
	default:
		return parseWorkbook(data)
	}
}

// recordsFromRows builds records from a header row plus data rows,
// padding short rows and truncating long ones to the header width.
func recordsFromRows(headers []string, rows [][]string) []Record {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		record := make(Record, len(headers))
		for i, h := range headers {
			if i < len(row) {
				record[h] = row[i]
			} else {
				record[h] = ""
			}
		}
		records = append(records, record)
	}
	return records
}
