// Copyright (c) 2025 Strataconf and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parse

import (
	"github.com/BurntSushi/toml"
)

// TOML is a [Cursor] over a TOML document. Top level tables become
// sections and deeper tables fold into dotted keys; scalar values are
// rendered to strings so typed interpretation stays with the coercion
// helpers.
type TOML struct {
	listCursor
}

// NewTOML decodes the whole buffer up front and returns a cursor
// positioned before the first entry. It fails with [DecodeError] if
// the buffer is not valid TOML.
func NewTOML(buf *Buffer) (*TOML, error) {
	doc := make(map[string]any)
	err := toml.Unmarshal([]byte(buf.Text()), &doc)
	if err != nil {
		return nil, DecodeError{Format: "toml", Cause: err}
	}

	return &TOML{listCursor{
		op:     "parse.TOML",
		origin: buf.Origin(),
		items:  flatten(doc),
	}}, nil
}
