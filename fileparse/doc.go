// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package fileparse turns an uploaded byte payload into header-keyed records.

# Format Dispatch

The declared mimetype picks the parser:

	records, err := fileparse.Parse(data, "text/csv")

Only text/csv (parameters ignored) selects CSV parsing; every other type
is attempted as a spreadsheet workbook via excelize. This
csv-or-else-workbook rule is part of the upload contract and must not be
tightened — clients routinely declare xlsx uploads as
application/octet-stream.

# CSV Handling

CSV input is transcoded first (UTF-8 BOM stripped, UTF-16 with BOM
decoded), then parsed with lazy quoting. Rows shorter than the header are
padded with empty strings; longer rows are truncated.

# Workbooks

Only the first sheet is read; its first row supplies the header names.

# Errors

ErrInvalidInput wraps every parse failure. An empty file is NOT an error
here — it parses to zero records, and the orchestrator decides what an
empty batch means.
*/
package fileparse
