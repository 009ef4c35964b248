// Copyright (c) 2025 Strataconf and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parse

import (
	"io"
	"os"
	"path/filepath"

	"github.com/strataconf/strata/internal/try"
)

// Buffer holds the entire raw text of one configuration source in
// memory, along with the origin relative path values resolve against.
// It is the "load raw text" half of a concrete cursor; a tokenizer
// interprets the text.
type Buffer struct {
	text   string
	origin string
}

// OpenFile reads the whole file at path into a Buffer and records the
// absolute form of path as the buffer origin. It fails with
// [OpenError] if the file can not be opened or read.
func OpenFile(path string) (*Buffer, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, OpenError{Path: path, Cause: err}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, OpenError{Path: path, Cause: err}
	}

	return &Buffer{text: string(b), origin: abs}, nil
}

// NewBuffer reads r to exhaustion into a Buffer with no origin. If r
// is an io.Closer it is closed after reading.
func NewBuffer(r io.Reader) (_ *Buffer, err error) {
	defer try.Close(&err, r)

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &Buffer{text: string(b)}, nil
}

// BufferString returns a Buffer over s with no origin.
func BufferString(s string) *Buffer {
	return &Buffer{text: s}
}

// Text returns the buffered raw text.
func (b *Buffer) Text() string {
	return b.text
}

// Origin returns the recorded origin, or "" when none has been set.
func (b *Buffer) Origin() string {
	return b.origin
}

// SetOrigin records the path relative values resolve against.
func (b *Buffer) SetOrigin(path string) {
	b.origin = path
}
