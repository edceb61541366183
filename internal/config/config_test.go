package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("成功: ファイルがなければ既定値", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "/api", cfg.Server.BasePath)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, 300*time.Second, cfg.Redis.ListingTTL)
		assert.Equal(t, "info", cfg.Logger.Level)
	})

	t.Run("成功: yaml の値が既定値を上書き", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9090"
  mode: "release"
redis:
  listing_ttl: 1m
`), 0o644))

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, "release", cfg.Server.Mode)
		assert.Equal(t, time.Minute, cfg.Redis.ListingTTL)
		// 触れていないセクションは既定値のまま
		assert.Equal(t, "localhost", cfg.Database.Host)
	})

	t.Run("成功: 環境変数が yaml より優先", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"9090\"\n"), 0o644))
		t.Setenv("PORT", "7070")
		t.Setenv("ADMIN_JWT_SECRET", "from-env")

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.Server.Port)
		assert.Equal(t, "from-env", cfg.Auth.AdminSecret)
	})

	t.Run("失敗: 壊れた yaml はエラー", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [broken"), 0o644))

		_, err := Load(path)

		assert.Error(t, err)
	})
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.example.com",
		Port:     5433,
		User:     "app",
		Password: "secret",
		Name:     "hub",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.example.com port=5433 user=app password=secret dbname=hub sslmode=require",
		cfg.GetDSN())
}
