// Copyright (c) 2025 Strataconf and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strata

import (
	"sort"
	"strings"

	"github.com/strataconf/strata/parse"
)

// SectionFromKey is the well known sentinel section. Passing it to a
// pool lookup derives the section from the key itself by splitting at
// the first "."; when the key contains no "." the section is the
// default empty section.
//
// A real section literally named "=" is indistinguishable from "no
// section specified". This is a documented limitation of the sentinel
// encoding, not a resolution rule.
const SectionFromKey = "="

// Pool merges the entries of one or more cursors into a flat table
// keyed by (section, key). Later writes override earlier ones entry
// by entry, whether they come from [Pool.Fill] or [Pool.Set].
//
// A Pool applies no locking. Concurrent reads are safe only while no
// goroutine is concurrently filling or setting; synchronization is
// the owner's responsibility.
type Pool struct {
	entries map[string]parse.Entry
	origin  string
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{entries: make(map[string]parse.Entry)}
}

// SetOrigin establishes the default origin recorded on entries created
// with [Pool.Set]. Entries obtained from [Pool.Fill] always keep the
// origin of the cursor which produced them.
func (p *Pool) SetOrigin(path string) {
	p.origin = path
}

// Fill drives the cursor from its current position to exhaustion,
// inserting or overwriting one table slot per visited entry.
//
// Multiple fills into one pool are expected; a later fill overrides an
// earlier one entry by entry, not wholesale.
func (p *Pool) Fill(c parse.Cursor) error {
	for !c.AtEnd() {
		err := c.Advance()
		if err != nil {
			return err
		}
		if c.AtEnd() {
			break
		}

		e, err := c.Entry()
		if err != nil {
			return err
		}
		p.entries[tableKey(e.Section, e.Key)] = e
	}
	return nil
}

// Set inserts or overrides a single entry directly. The entry origin
// is the pool's currently configured origin at the moment of the call.
func (p *Pool) Set(section, key, value string) {
	p.entries[tableKey(section, key)] = parse.Entry{
		Section: section,
		Key:     key,
		Value:   value,
		Origin:  p.origin,
	}
}

// Get returns the stored value for (section, key). Pass
// [SectionFromKey] as the section to derive the section from the key.
// It fails with [KeyNotFoundError] if no entry exists.
func (p *Pool) Get(key, section string) (string, error) {
	e, err := p.lookup(key, section)
	if err != nil {
		return "", err
	}
	return e.Value, nil
}

// GetInt is [Pool.Get] followed by the [parse.Int] coercion.
func (p *Pool) GetInt(key, section string) (int64, error) {
	e, err := p.lookup(key, section)
	if err != nil {
		return 0, err
	}
	return parse.Int(e)
}

// GetBool is [Pool.Get] followed by the [parse.Bool] coercion.
func (p *Pool) GetBool(key, section string) (bool, error) {
	e, err := p.lookup(key, section)
	if err != nil {
		return false, err
	}
	return parse.Bool(e)
}

// GetFile returns the stored value resolved as a file path against
// the entry's own recorded origin, per [parse.AbsFile]. It fails with
// [KeyNotFoundError] if no entry exists and with
// [parse.InvalidStateError] if the value is relative and the entry
// has no origin.
func (p *Pool) GetFile(key, section string) (string, error) {
	e, err := p.lookup(key, section)
	if err != nil {
		return "", err
	}
	return parse.AbsFile(e)
}

// Entries returns a snapshot of every stored entry, sorted by
// (section, key).
func (p *Pool) Entries() []parse.Entry {
	es := make([]parse.Entry, 0, len(p.entries))
	for _, e := range p.entries {
		es = append(es, e)
	}

	sort.Slice(es, func(i, j int) bool {
		if es[i].Section != es[j].Section {
			return es[i].Section < es[j].Section
		}
		return es[i].Key < es[j].Key
	})
	return es
}

func (p *Pool) lookup(key, section string) (parse.Entry, error) {
	section, key = resolveSection(key, section)
	e, ok := p.entries[tableKey(section, key)]
	if !ok {
		return parse.Entry{}, KeyNotFoundError{Section: section, Key: key}
	}
	return e, nil
}

func resolveSection(key, section string) (string, string) {
	if section != SectionFromKey {
		return section, key
	}
	if i := strings.IndexByte(key, '.'); i >= 0 {
		return key[:i], key[i+1:]
	}
	return "", key
}

func tableKey(section, key string) string {
	return section + "/" + key
}
