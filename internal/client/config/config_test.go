package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"pscli"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	require.Equal(t, "http://127.0.0.1:8080", cfg.APIBaseURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, "prepshare.db", cfg.CacheDSN)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-a", "https://api.prepshare.dev", "-t", "3", "-cache", "/tmp/p.db")

	cfg := LoadConfig()

	require.Equal(t, "https://api.prepshare.dev", cfg.APIBaseURL)
	require.Equal(t, 3*time.Second, cfg.RequestTimeout)
	require.Equal(t, "/tmp/p.db", cfg.CacheDSN)
}

func TestLoadConfig_UnknownFlagsIgnored(t *testing.T) {
	withArgs(t, "-verbose", "-a", "https://api.prepshare.dev")

	cfg := LoadConfig()
	require.Equal(t, "https://api.prepshare.dev", cfg.APIBaseURL)
}
