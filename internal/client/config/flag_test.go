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

	base := Config{ServerEndpointAddr: defaultServerEndpointAddr, RequestTimeout: defaultRequestTimeout}

	tests := []struct {
		name      string
		args      []string
		want      Config
		wantPanic bool
	}{
		{name: "no flags keeps defaults", args: []string{"client"}, want: base},
		{name: "address and timeout", args: []string{"client", "-a", "10.0.0.5:7000", "-r", "30"},
			want: Config{ServerEndpointAddr: "10.0.0.5:7000", RequestTimeout: 30 * time.Second}},
		{name: "foreign flags are skipped", args: []string{"client", "-c", "client.json", "-r", "5"},
			want: Config{ServerEndpointAddr: defaultServerEndpointAddr, RequestTimeout: 5 * time.Second}},
		{name: "timeout not a number", args: []string{"client", "-r", "abc"}, wantPanic: true},
		{name: "zero timeout", args: []string{"client", "-r", "0"}, wantPanic: true},
		{name: "negative timeout", args: []string{"client", "-r=-3"}, wantPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			cfg := base

			if tt.wantPanic {
				require.Panics(t, func() { parseFlags(&cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(&cfg) })
			assert.Empty(t, cmp.Diff(tt.want, cfg))
		})
	}
}

func TestParseFlags_KeepsSubSecondTimeoutWithoutFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"client", "-a", "10.0.0.5:7000"}

	cfg := Config{RequestTimeout: 500 * time.Millisecond}
	require.NotPanics(t, func() { parseFlags(&cfg) })
	assert.Equal(t, 500*time.Millisecond, cfg.RequestTimeout)
}
