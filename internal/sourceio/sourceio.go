// Package sourceio is the source loader spec.md §1 treats as an external
// collaborator: "a source loader produces a string of source text". It
// reads a file and strips a UTF-8 BOM, the one piece of the teacher's
// internal/lexer.New preamble worth keeping here (Iron source is also
// "UTF-8 text" per spec.md §6).
package sourceio

import (
	"os"
	"strings"
)

const bom = "\xef\xbb\xbf"

// Load reads path and returns its contents as a string with any leading
// UTF-8 BOM stripped.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(string(data), bom), nil
}
