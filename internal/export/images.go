// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"pdztool/pdz"
)

// Images collects the embedded JPEG payloads of the Image Details record, in
// file order. A document without images yields nil.
func Images(doc *pdz.Document) [][]byte {
	var out [][]byte
	for _, phase := range doc.Phases("Image Details") {
		for _, image := range phase.Groups("images") {
			if b := image.Bytes("image"); len(b) > 0 {
				out = append(out, b)
			}
		}
	}
	return out
}

// WriteImages writes each embedded image to <dir>/<baseName>_<i>.jpeg and
// returns the written paths. A document without images writes nothing.
func WriteImages(doc *pdz.Document, dir, baseName string) ([]string, error) {
	images := Images(doc)
	paths := make([]string, 0, len(images))
	for i, image := range images {
		path := filepath.Join(dir, fmt.Sprintf("%s_%d.jpeg", baseName, i))
		if err := os.WriteFile(path, image, 0o644); err != nil {
			return paths, errors.Wrapf(err, "writing %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
