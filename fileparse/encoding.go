// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fileparse

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeText strips a UTF-8 BOM and transcodes UTF-16 (either byte order,
// BOM required) to UTF-8. Exported spreadsheets from Windows tools often
// arrive as UTF-16LE CSV.
func decodeText(data []byte) ([]byte, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), decoder))
	if err != nil {
		return nil, fmt.Errorf("failed to decode text: %w", err)
	}
	return decoded, nil
}
