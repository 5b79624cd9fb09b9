// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fileparse

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// parseCSV reads delimited text with a header row. Quoted fields may
// contain delimiters and doubled quotes per RFC 4180; lazy quoting is
// enabled because real-world exports are rarely strict.
func parseCSV(data []byte) ([]Record, error) {
	decoded, err := decodeText(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	// Row widths are reconciled against the header ourselves.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			// No header row at all: an empty file, not a malformed one.
			return []Record{}, nil
		}
		return nil, fmt.Errorf("%w: failed to read header row: %v", ErrInvalidInput, err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		rows = append(rows, row)
	}

	return recordsFromRows(headers, rows), nil
}
