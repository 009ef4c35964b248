// Copyright (c) 2025 Strataconf and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parse

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFile(t *testing.T) {
	t.Run("will load the whole file", func(t *testing.T) {
		t.Run("and record the absolute path as origin", func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "app.ini")
			require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0o600))

			buf, err := OpenFile(path)
			require.NoError(t, err)
			require.Equal(t, "a = 1\n", buf.Text())

			if !assert.True(t, filepath.IsAbs(buf.Origin())) {
				return
			}
			if !assert.Equal(t, "app.ini", filepath.Base(buf.Origin())) {
				return
			}
		})
	})

	t.Run("will fail with OpenError", func(t *testing.T) {
		t.Run("if the file does not exist", func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.ini")

			_, err := OpenFile(path)

			var oerr OpenError
			if !assert.ErrorAs(t, err, &oerr) {
				return
			}
			if !assert.Equal(t, path, oerr.Path) {
				return
			}
			if !assert.ErrorIs(t, err, os.ErrNotExist) {
				return
			}
		})
	})
}

type readCloser struct {
	*strings.Reader

	closed bool
	err    error
}

func (rc *readCloser) Close() error {
	rc.closed = true
	return rc.err
}

func TestNewBuffer(t *testing.T) {
	t.Run("will read the reader to exhaustion", func(t *testing.T) {
		buf, err := NewBuffer(strings.NewReader("a = 1"))
		require.NoError(t, err)
		require.Equal(t, "a = 1", buf.Text())
		require.Empty(t, buf.Origin())
	})

	t.Run("will close the reader", func(t *testing.T) {
		t.Run("if it implements io.Closer", func(t *testing.T) {
			rc := &readCloser{Reader: strings.NewReader("a = 1")}

			_, err := NewBuffer(rc)
			require.NoError(t, err)
			require.True(t, rc.closed)
		})

		t.Run("and surface the close failure", func(t *testing.T) {
			closeErr := errors.New("close failed")
			rc := &readCloser{Reader: strings.NewReader("a = 1"), err: closeErr}

			_, err := NewBuffer(rc)
			if !assert.ErrorIs(t, err, closeErr) {
				return
			}
		})
	})
}

func TestBuffer_SetOrigin(t *testing.T) {
	t.Run("will record the origin for later path resolution", func(t *testing.T) {
		buf := BufferString("a = sub/x.txt")
		buf.SetOrigin(filepath.Join(string(filepath.Separator), "a", "b", "conf.ini"))

		require.Equal(t, filepath.Join(string(filepath.Separator), "a", "b", "conf.ini"), buf.Origin())
	})
}
