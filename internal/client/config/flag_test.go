package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-a", "127.0.0.1:9090", "-k", "tok", "-p", "10", "-t", "3"},
			expected: &Config{ServerEndpointAddr: "127.0.0.1:9090", AccessToken: "tok", PageSize: 10, RequestTimeout: 3 * time.Second}},
		{name: "unknown flags are ignored", args: []string{"cmd", "-x", "1", "-a", "host:1"},
			expected: &Config{ServerEndpointAddr: "host:1"}},
		{name: "incorrect page size", args: []string{"cmd", "-p", "abc"}, expectPanic: true},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
