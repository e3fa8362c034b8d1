package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"intake": map[string]any{
			"maxRangeDays": 366,
		},
		"auth": map[string]any{
			"accessTokenTTL": "15m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "INTAKE_MAXRANGEDAYS", want: "intake.maxRangeDays"},
		{envKey: "AUTH_ACCESSTOKENTTL", want: "auth.accessTokenTTL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverridesAndDefaults(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `env:
  env: develop
  serviceName: phecalc
http:
  port: 8080
auth:
  accessTokenTTL: 30m
intake:
  maxRangeDays: 90
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yamlBody), 0o600))
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("INTAKE_MAXRANGEDAYS", "31")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)
	applyDefaults(cfg)

	assert.Equal(t, "phecalc", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 31, cfg.Intake.MaxRangeDays)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultRefreshTokenTTL, cfg.Auth.RefreshTokenTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.ErrorContains(t, err, "absent.yaml not found")
}
