// SPDX-License-Identifier: MIT

// Package export renders a parsed document to the tool's output artifacts:
// an indented JSON dump, per-record CSV tables and embedded JPEG images.
package export

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"pdztool/pdz"
)

// JSON renders the document as indented JSON.
func JSON(doc *pdz.Document) ([]byte, error) {
	out, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, errors.Wrap(err, "marshaling document")
	}
	return out, nil
}

// WriteJSON writes the document to <dir>/<baseName>.json and returns the
// written path.
func WriteJSON(doc *pdz.Document, dir, baseName string) (string, error) {
	out, err := JSON(doc)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, baseName+".json")
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}
	return path, nil
}
