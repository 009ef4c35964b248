// Copyright (c) 2025 Strataconf and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package key provides reusable, pool independent configuration key
// descriptors. A descriptor fixes a (section, key) pair once so call
// sites stop repeating literal key names, and can be shared across
// arbitrarily many pools: it performs no lookup and caches nothing.
package key

import (
	"github.com/strataconf/strata"
)

// Key is an immutable (section, name) descriptor.
type Key struct {
	section string
	name    string
}

// New returns a descriptor for name in the default empty section.
func New(name string) Key {
	return Key{name: name}
}

// NewIn returns a descriptor for name in the given section. Pass
// [strata.SectionFromKey] to derive the section from the name at
// lookup time.
func NewIn(section, name string) Key {
	return Key{section: section, name: name}
}

// Name returns the descriptor's key name.
func (k Key) Name() string {
	return k.name
}

// Section returns the descriptor's section.
func (k Key) Section() string {
	return k.section
}

// Get is exactly [strata.Pool.Get] with the descriptor's name and section.
func (k Key) Get(p *strata.Pool) (string, error) {
	return p.Get(k.name, k.section)
}

// Int is exactly [strata.Pool.GetInt] with the descriptor's name and section.
func (k Key) Int(p *strata.Pool) (int64, error) {
	return p.GetInt(k.name, k.section)
}

// Bool is exactly [strata.Pool.GetBool] with the descriptor's name and section.
func (k Key) Bool(p *strata.Pool) (bool, error) {
	return p.GetBool(k.name, k.section)
}

// File is exactly [strata.Pool.GetFile] with the descriptor's name and section.
func (k Key) File(p *strata.Pool) (string, error) {
	return p.GetFile(k.name, k.section)
}
