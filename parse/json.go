// Copyright (c) 2025 Strataconf and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parse

import (
	"encoding/json"
	"strings"
)

// JSON is a [Cursor] over a JSON object, flattened the same way as
// [TOML]: top level objects become sections, deeper objects fold into
// dotted keys. Numbers keep their literal form so integer values
// survive coercion with [Int].
type JSON struct {
	listCursor
}

// NewJSON decodes the whole buffer up front and returns a cursor
// positioned before the first entry. It fails with [DecodeError] if
// the buffer is not a valid JSON object.
func NewJSON(buf *Buffer) (*JSON, error) {
	dec := json.NewDecoder(strings.NewReader(buf.Text()))
	dec.UseNumber()

	doc := make(map[string]any)
	err := dec.Decode(&doc)
	if err != nil {
		return nil, DecodeError{Format: "json", Cause: err}
	}

	return &JSON{listCursor{
		op:     "parse.JSON",
		origin: buf.Origin(),
		items:  flatten(doc),
	}}, nil
}
