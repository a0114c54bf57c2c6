package records

import (
	"bufio"
	"io"
	"os"
)

// maxLineBytes bounds a single input line. The longest borders line of the
// reference dataset is well under 1 KiB.
const maxLineBytes = 1 << 20

// withFile opens path and hands it to parse, turning open and read failures
// into a *FileError naming src.
func withFile(src Source, path string, parse func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return &FileError{Source: src, Path: path, Err: err}
	}
	defer f.Close()

	if err := parse(f); err != nil {
		return &FileError{Source: src, Path: path, Err: err}
	}

	return nil
}

// newLineScanner returns a line scanner sized for maxLineBytes.
func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return sc
}
