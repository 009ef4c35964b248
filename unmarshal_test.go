// Copyright (c) 2025 Strataconf and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_Unmarshal(t *testing.T) {
	t.Run("will decode one section into a struct", func(t *testing.T) {
		p := New()
		fillString(t, p, `
[server]
host = localhost
port = 8080
tls = yes
`, "")

		var cfg struct {
			Host string `config:"host"`
			Port int    `config:"port"`
			TLS  bool   `config:"tls"`
		}
		require.NoError(t, p.Unmarshal("server", &cfg))

		require.Equal(t, "localhost", cfg.Host)
		require.Equal(t, 8080, cfg.Port)
		require.True(t, cfg.TLS)
	})

	t.Run("will accept the same boolean literal set as GetBool", func(t *testing.T) {
		p := New()
		fillString(t, p, "[flags]\na = yes\nb = OFF\nc = on\nd = No\n", "")

		var cfg struct {
			A bool `config:"a"`
			B bool `config:"b"`
			C bool `config:"c"`
			D bool `config:"d"`
		}
		require.NoError(t, p.Unmarshal("flags", &cfg))

		require.True(t, cfg.A)
		require.False(t, cfg.B)
		require.True(t, cfg.C)
		require.False(t, cfg.D)
	})

	t.Run("will ignore entries from other sections", func(t *testing.T) {
		p := New()
		fillString(t, p, "[server]\nhost = a\n[client]\nhost = b\n", "")

		var cfg struct {
			Host string `config:"host"`
		}
		require.NoError(t, p.Unmarshal("client", &cfg))
		require.Equal(t, "b", cfg.Host)
	})

	t.Run("will fail", func(t *testing.T) {
		t.Run("if a value can not be coerced to the field type", func(t *testing.T) {
			p := New()
			fillString(t, p, "[server]\nport = not-a-number\n", "")

			var cfg struct {
				Port int `config:"port"`
			}
			err := p.Unmarshal("server", &cfg)
			if !assert.Error(t, err) {
				return
			}
		})

		t.Run("if a value is not in the boolean literal set", func(t *testing.T) {
			p := New()
			fillString(t, p, "[server]\ntls = maybe\n", "")

			var cfg struct {
				TLS bool `config:"tls"`
			}
			err := p.Unmarshal("server", &cfg)
			if !assert.Error(t, err) {
				return
			}
		})
	})
}
