// Package seqio reads the pair of whitespace-separated input sequences
// an alignment run operates on, from a named file or from stdin.
package seqio

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// ReadTwoSequences reads the first two whitespace-separated tokens from
// path. An empty path reads from stdin instead. A stream with fewer
// than two tokens, or an underlying read error, is a fatal input error.
func ReadTwoSequences(path string) (s1, s2 []byte, err error) {
	var in io.Reader
	if path == "" {
		in = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "opening sequence file %q", path)
		}
		defer f.Close()
		in = f
	}
	return readTwoSequences(in)
}

// ReadFrom reads the first two whitespace-separated tokens from an
// already-open stream, for callers (tests, or a CLI driver with an
// injectable stdin) that don't go through a file path.
func ReadFrom(in io.Reader) (s1, s2 []byte, err error) {
	return readTwoSequences(in)
}

func readTwoSequences(in io.Reader) ([]byte, []byte, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<30)
	scanner.Split(bufio.ScanWords)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, nil, errors.Wrap(err, "reading input string 1")
		}
		return nil, nil, errors.New("expected at least two input strings but found none")
	}
	s1 := append([]byte(nil), scanner.Bytes()...)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, nil, errors.Wrap(err, "reading input string 2")
		}
		return nil, nil, errors.New("expected at least two input strings but found only 1")
	}
	s2 := append([]byte(nil), scanner.Bytes()...)

	return s1, s2, nil
}
