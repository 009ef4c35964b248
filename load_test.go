// Copyright (c) 2025 Strataconf and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/strataconf/strata/parse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFiles(t *testing.T) {
	t.Run("will layer files in argument order", func(t *testing.T) {
		dir := t.TempDir()
		base := writeFile(t, dir, "base.ini", "[server]\nhost = localhost\nport = 8080\n")
		override := writeFile(t, dir, "override.toml", "[server]\nport = 9090\n")

		p := New()
		require.NoError(t, LoadFiles(p, base, override))

		port, err := p.GetInt("server.port", SectionFromKey)
		require.NoError(t, err)
		require.Equal(t, int64(9090), port)

		host, err := p.Get("server.host", SectionFromKey)
		require.NoError(t, err)
		require.Equal(t, "localhost", host)
	})

	t.Run("will pick the cursor by file extension", func(t *testing.T) {
		dir := t.TempDir()
		yml := writeFile(t, dir, "app.yaml", "client:\n  retries: 3\n")
		jsn := writeFile(t, dir, "app.json", `{"client": {"timeout": 30}}`)

		p := New()
		require.NoError(t, LoadFiles(p, yml, jsn))

		retries, err := p.GetInt("retries", "client")
		require.NoError(t, err)
		require.Equal(t, int64(3), retries)

		timeout, err := p.GetInt("timeout", "client")
		require.NoError(t, err)
		require.Equal(t, int64(30), timeout)
	})

	t.Run("will record each file as the origin of its entries", func(t *testing.T) {
		dir := t.TempDir()
		ini := writeFile(t, dir, "app.ini", "data = sub/x.txt\n")

		p := New()
		require.NoError(t, LoadFiles(p, ini))

		got, err := p.GetFile("data", "")
		require.NoError(t, err)
		require.Equal(t, filepath.Join(dir, "sub", "x.txt"), got)
	})

	t.Run("will fail with parse.OpenError", func(t *testing.T) {
		t.Run("if any file can not be read", func(t *testing.T) {
			p := New()

			err := LoadFiles(p, filepath.Join(t.TempDir(), "missing.ini"))

			var oerr parse.OpenError
			if !assert.ErrorAs(t, err, &oerr) {
				return
			}
		})
	})
}
