// Copyright (c) 2025 Strataconf and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package parse defines the cursor protocol shared by every concrete
// configuration format, along with the value coercion helpers which
// interpret the raw string values a cursor produces.
//
// A [Cursor] is positioned on at most one entry at a time. It starts
// before the first entry, is driven forward with [Cursor.Advance] and
// is exhausted once [Cursor.AtEnd] reports true. Cursors are single
// consumer: construct one over one source, drive it to exhaustion and
// discard it.
//
// Concrete formats compose two strategies: a [Buffer] loads the raw
// text of a source into memory, and a tokenizer ([INI], [TOML], [YAML],
// [JSON]) walks that text producing entries.
package parse

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Entry is one resolved configuration value.
type Entry struct {
	// Section and Key identify the entry within its source.
	Section string
	Key     string

	// Value is the raw string value. Typed interpretation is
	// deferred to the coercion helpers.
	Value string

	// Origin is the absolute path relative values resolve against.
	// It is empty when the entry was not produced from a file.
	Origin string
}

// Cursor is the protocol every concrete format implements.
//
// The zero position is before the first entry. Reading the current
// entry before the first Advance, or once AtEnd reports true, is a
// protocol violation and fails with [InvalidStateError].
type Cursor interface {
	// AtEnd reports whether no further entries remain.
	AtEnd() bool

	// Advance moves the cursor to the next entry. Advancing a cursor
	// which is already at end fails with [InvalidStateError].
	Advance() error

	// Entry returns the entry the cursor is currently positioned on.
	Entry() (Entry, error)

	// Origin returns the path relative values resolve against.
	Origin() string

	// SetOrigin records the path relative values resolve against.
	// It is set automatically when a cursor is built over a file
	// backed [Buffer].
	SetOrigin(path string)
}

// Int interprets the entry value as a decimal integer: an optional
// sign followed by one or more decimal digits. Anything else fails
// with [FormatError].
func Int(e Entry) (int64, error) {
	n, err := strconv.ParseInt(e.Value, 10, 64)
	if err != nil {
		return 0, FormatError{Value: e.Value, Want: "integer", Cause: err}
	}
	return n, nil
}

// Bool interprets the entry value as a boolean. The accepted literals
// are "true", "yes", "on" and "1" for true, and "false", "no", "off"
// and "0" for false, case-insensitively. Anything else fails with
// [FormatError].
func Bool(e Entry) (bool, error) {
	switch strings.ToLower(e.Value) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, FormatError{Value: e.Value, Want: "boolean"}
}

// AbsFile interprets the entry value as a file path. An absolute
// value is returned verbatim; a relative value is joined onto the
// directory of the entry origin. A relative value with no recorded
// origin fails with [InvalidStateError].
func AbsFile(e Entry) (string, error) {
	return absPath("parse.AbsFile", e)
}

// AbsDir interprets the entry value as a directory path, using the
// same resolution rule as [AbsFile].
func AbsDir(e Entry) (string, error) {
	return absPath("parse.AbsDir", e)
}

func absPath(op string, e Entry) (string, error) {
	if filepath.IsAbs(e.Value) {
		return e.Value, nil
	}
	if e.Origin == "" {
		return "", InvalidStateError{
			Op:     op,
			Reason: "relative value with no recorded origin",
		}
	}
	return filepath.Join(filepath.Dir(e.Origin), e.Value), nil
}
