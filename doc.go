// Copyright (c) 2025 Strataconf and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package strata is a layered configuration engine. It merges the
// entries of one or more configuration sources into a flat pool keyed
// by (section, key), keeps per entry provenance so relative file paths
// resolve against the file which defined them, and offers typed, typo
// resistant lookups on top.
//
// The package is built around three pieces:
//
//   - parse.Cursor: the protocol every concrete format implements,
//     positioned on one entry at a time
//   - Pool: the storage layer, merging cursor passes with last write
//     wins semantics
//   - key.Key: a reusable, pool independent (section, key) handle
//
// # Basic Usage
//
// Load one or more files into a pool and read through it:
//
//	pool := strata.New()
//	if err := strata.LoadFiles(pool, "/etc/app/base.ini", "/etc/app/override.toml"); err != nil {
//	    log.Fatal(err)
//	}
//
//	port, err := pool.GetInt("server.port", strata.SectionFromKey)
//
// Or drive a single cursor by hand:
//
//	buf, err := parse.OpenFile("/etc/app/app.ini")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := pool.Fill(parse.NewINI(buf)); err != nil {
//	    log.Fatal(err)
//	}
//
// # Sections
//
// Lookups take an explicit section, or the [SectionFromKey] sentinel
// which derives the section by splitting the key at its first ".":
//
//	pool.Get("server.port", strata.SectionFromKey) // section "server", key "port"
//	pool.Get("port", "server")                     // the same entry
//
// # Error Handling
//
// Every failure is a typed, distinguishable error: [KeyNotFoundError]
// for absent entries, [parse.FormatError] for coercion mismatches,
// [parse.InvalidStateError] for protocol violations and unresolvable
// relative paths, and [parse.OpenError] for unreadable sources. The
// engine never terminates the process on its own.
package strata
