// Copyright (c) 2025 Strataconf and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strata

import "fmt"

// KeyNotFoundError occurs when a pool lookup finds no entry for the
// resolved (section, key).
type KeyNotFoundError struct {
	Section string
	Key     string
}

// Error implements the error interface.
func (e KeyNotFoundError) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("no config entry for key %q", e.Key)
	}
	return fmt.Sprintf("no config entry for key %q in section %q", e.Key, e.Section)
}
