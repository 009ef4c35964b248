// Copyright (c) 2025 Strataconf and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parse

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// listCursor implements the [Cursor] protocol over a pre-flattened
// slice of entries. The structured formats decode their whole source
// up front and walk the result through a listCursor.
type listCursor struct {
	op     string
	origin string
	items  []Entry

	// idx is one past the current entry; 0 means before the first.
	idx  int
	done bool
}

func (c *listCursor) AtEnd() bool {
	return c.done
}

func (c *listCursor) Advance() error {
	if c.done {
		return InvalidStateError{
			Op:     c.op + ".Advance",
			Reason: "cursor is already at end of input",
		}
	}

	if c.idx >= len(c.items) {
		c.done = true
		return nil
	}
	c.idx++
	return nil
}

func (c *listCursor) Entry() (Entry, error) {
	if c.idx == 0 || c.done {
		return Entry{}, InvalidStateError{
			Op:     c.op + ".Entry",
			Reason: "cursor is not positioned on an entry",
		}
	}

	e := c.items[c.idx-1]
	e.Origin = c.origin
	return e, nil
}

func (c *listCursor) Origin() string {
	return c.origin
}

func (c *listCursor) SetOrigin(path string) {
	c.origin = path
}

// flatten converts a decoded document into entries. Top level scalars
// belong to the default empty section; each top level table becomes a
// section, with deeper nesting folded into dotted keys. Entries are
// sorted by (section, key) so cursor order is deterministic.
func flatten(doc map[string]any) []Entry {
	var items []Entry
	for k, v := range doc {
		switch m := v.(type) {
		case map[string]any:
			foldInto(&items, k, "", m)
		default:
			items = append(items, Entry{Key: k, Value: renderScalar(v)})
		}
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Section != items[j].Section {
			return items[i].Section < items[j].Section
		}
		return items[i].Key < items[j].Key
	})
	return items
}

func foldInto(items *[]Entry, section, prefix string, m map[string]any) {
	for k, v := range m {
		name := k
		if prefix != "" {
			name = prefix + "." + k
		}
		switch sub := v.(type) {
		case map[string]any:
			foldInto(items, section, name, sub)
		default:
			*items = append(*items, Entry{
				Section: section,
				Key:     name,
				Value:   renderScalar(v),
			})
		}
	}
}

func renderScalar(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case []any:
		parts := make([]string, len(x))
		for i := range x {
			parts[i] = renderScalar(x[i])
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}
