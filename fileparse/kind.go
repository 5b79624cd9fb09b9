// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fileparse

import "mime"

// Kind identifies the format an uploaded payload is parsed as.
type Kind int

const (
	// KindCSV is delimited text with a header row.
	KindCSV Kind = iota
	// KindWorkbook is a spreadsheet file (xlsx and friends).
	KindWorkbook
)

func (k Kind) String() string {
	if k == KindCSV {
		return "csv"
	}
	return "workbook"
}

// DetectKind classifies a declared mimetype. Only "text/csv" selects CSV;
// everything else is attempted as a workbook, matching the upload
// contract: clients that send any other type get spreadsheet parsing.
func DetectKind(declaredType string) Kind {
	mediaType, _, err := mime.ParseMediaType(declaredType)
	if err != nil {
		mediaType = declaredType
	}
	if mediaType == "text/csv" {
		return KindCSV
	}
	return KindWorkbook
}
