package source

import (
	"bufio"
	"io"
	"os"

	"github.com/aperturerobotics/billcoin/chainerr"
	"github.com/pkg/errors"
)

// maxLineSize bounds a single block line.
const maxLineSize = 16 * 1024 * 1024

// Source supplies block lines in order.
type Source interface {
	// Next returns the next line without its terminator.
	// ok is false once the source is exhausted.
	Next() (line string, ok bool, err error)
	// Close releases the source.
	Close() error
}

// readerSource reads lines from a reader.
type readerSource struct {
	scanner *bufio.Scanner
	closer  io.Closer
}

// FromReader builds a source reading lines from r.
func FromReader(r io.Reader) Source {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	s := &readerSource{scanner: sc}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// OpenFile opens a file source.
// A file that cannot be opened yields a SourceUnavailable error.
func OpenFile(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, chainerr.Errorf(chainerr.SourceUnavailable, "File '%s' does not exist.", path)
		}
		return nil, chainerr.Errorf(chainerr.SourceUnavailable, "File '%s' cannot be read: %v", path, err)
	}
	return FromReader(f), nil
}

// Next returns the next line.
func (s *readerSource) Next() (string, bool, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), true, nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", false, errors.WithMessage(
			chainerr.Errorf(chainerr.SourceUnavailable, "read failed: %v", err),
			"read block line",
		)
	}
	return "", false, nil
}

// Close closes the underlying reader if it is closable.
func (s *readerSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// sliceSource yields lines from memory.
type sliceSource struct {
	lines []string
	idx   int
}

// FromLines builds a source from in-memory lines.
func FromLines(lines ...string) Source {
	return &sliceSource{lines: lines}
}

// Next returns the next line.
func (s *sliceSource) Next() (string, bool, error) {
	if s.idx >= len(s.lines) {
		return "", false, nil
	}
	line := s.lines[s.idx]
	s.idx++
	return line, true, nil
}

// Close is a no-op.
func (s *sliceSource) Close() error {
	return nil
}
