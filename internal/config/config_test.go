package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ABHAY_WEB_ADDR", "")
	t.Setenv("ABHAY_WEB_DEV", "")
	t.Setenv("ABHAY_WEB_CONTENT_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.ListenAddr())
	require.Equal(t, "ui", cfg.UIDir)
	require.Equal(t, 5*time.Minute, cfg.CacheTTL())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ABHAY_WEB_ADDR", "127.0.0.1:7000")
	t.Setenv("ABHAY_WEB_DEV", "true")
	t.Setenv("ABHAY_WEB_CONTENT_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:7000", cfg.ListenAddr())
	require.True(t, cfg.Dev)
	require.Equal(t, 30*time.Second, cfg.ContentTTL)
	require.Zero(t, cfg.CacheTTL(), "dev mode disables the content cache")
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("ABHAY_WEB_CONTENT_TTL", "soon")

	_, err := Load()
	require.Error(t, err)
}
