// Copyright (c) 2025 Strataconf and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strata

import (
	"path/filepath"
	"strings"

	"github.com/strataconf/strata/parse"

	"golang.org/x/sync/errgroup"
)

// LoadFiles reads every file concurrently, chooses a cursor for each
// by file extension (".toml", ".yaml"/".yml", ".json"; anything else
// is read as INI with default settings) and fills the pool in
// argument order, so later files override earlier ones entry by
// entry.
func LoadFiles(p *Pool, paths ...string) error {
	bufs := make([]*parse.Buffer, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			b, err := parse.OpenFile(path)
			if err != nil {
				return err
			}
			bufs[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, b := range bufs {
		c, err := cursorFor(paths[i], b)
		if err != nil {
			return err
		}
		if err := p.Fill(c); err != nil {
			return err
		}
	}
	return nil
}

func cursorFor(path string, b *parse.Buffer) (parse.Cursor, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return parse.NewTOML(b)
	case ".yaml", ".yml":
		return parse.NewYAML(b)
	case ".json":
		return parse.NewJSON(b)
	default:
		return parse.NewINI(b), nil
	}
}
