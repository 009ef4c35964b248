// Copyright (c) 2025 Strataconf and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parse

import (
	"gopkg.in/yaml.v3"
)

// YAML is a [Cursor] over a YAML document, flattened the same way as
// [TOML]: top level mappings become sections, deeper mappings fold
// into dotted keys.
type YAML struct {
	listCursor
}

// NewYAML decodes the whole buffer up front and returns a cursor
// positioned before the first entry. It fails with [DecodeError] if
// the buffer is not valid YAML.
func NewYAML(buf *Buffer) (*YAML, error) {
	doc := make(map[string]any)
	err := yaml.Unmarshal([]byte(buf.Text()), &doc)
	if err != nil {
		return nil, DecodeError{Format: "yaml", Cause: err}
	}

	return &YAML{listCursor{
		op:     "parse.YAML",
		origin: buf.Origin(),
		items:  flatten(doc),
	}}, nil
}
