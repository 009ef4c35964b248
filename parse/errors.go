// Copyright (c) 2025 Strataconf and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parse

import "fmt"

// OpenError occurs when the underlying source of a file backed
// [Buffer] can not be opened or read.
type OpenError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e OpenError) Error() string {
	return fmt.Sprintf("failed to read %s: %s", e.Path, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e OpenError) Unwrap() error {
	return e.Cause
}

// InvalidStateError occurs on a cursor protocol violation: reading
// the current entry before the first advance or after end of input,
// advancing past end of input, or resolving a relative path value
// with no recorded origin.
type InvalidStateError struct {
	Op     string
	Reason string
}

// Error implements the error interface.
func (e InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// FormatError occurs when a value does not match the literal format
// required by a coercion helper.
type FormatError struct {
	Value string
	Want  string
	Cause error
}

// Error implements the error interface.
func (e FormatError) Error() string {
	return fmt.Sprintf("value %q is not a valid %s", e.Value, e.Want)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e FormatError) Unwrap() error {
	return e.Cause
}

// DecodeError occurs when a structured source ([TOML], [YAML], [JSON])
// contains text its format can not decode.
type DecodeError struct {
	Format string
	Cause  error
}

// Error implements the error interface.
func (e DecodeError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Format, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e DecodeError) Unwrap() error {
	return e.Cause
}
