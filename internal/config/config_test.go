package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("STORE_DRIVER", "")
		t.Setenv("PORT", "")
		t.Setenv("AUTH_REQUIRED", "")
		t.Setenv("CASCADE_PARALLELISM", "")
		t.Setenv("DISPLAY_TIMEZONE", "")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, 8080, cfg.Port)
		require.Equal(t, DriverDynamoDB, cfg.StoreDriver)
		require.True(t, cfg.AuthRequired)
		require.Equal(t, 8, cfg.CascadeParallelism)

		loc, err := cfg.Location()
		require.NoError(t, err)
		require.Equal(t, "America/Sao_Paulo", loc.String())
	})

	t.Run("sqlite without auth", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "SQLite")
		t.Setenv("SQLITE_PATH", ":memory:")
		t.Setenv("AUTH_REQUIRED", "false")
		t.Setenv("JWT_SECRET", "")
		t.Setenv("CASCADE_PARALLELISM", "2")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, DriverSQLite, cfg.StoreDriver)
		require.Equal(t, ":memory:", cfg.SQLitePath)
		require.False(t, cfg.AuthRequired)
		require.Equal(t, 2, cfg.CascadeParallelism)
	})

	t.Run("rejects bad values", func(t *testing.T) {
		cases := map[string]map[string]string{
			"driver":      {"STORE_DRIVER": "postgres", "JWT_SECRET": "x"},
			"port":        {"PORT": "eighty", "JWT_SECRET": "x"},
			"secret":      {"AUTH_REQUIRED": "true", "JWT_SECRET": ""},
			"parallelism": {"CASCADE_PARALLELISM": "0", "JWT_SECRET": "x"},
			"timezone":    {"DISPLAY_TIMEZONE": "Mars/Olympus", "JWT_SECRET": "x"},
		}
		for name, env := range cases {
			t.Run(name, func(t *testing.T) {
				for k, v := range env {
					t.Setenv(k, v)
				}
				_, err := Load()
				require.Error(t, err)
			})
		}
	})
}
