package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileDSN(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"plain path", "data/a.db", "file:data/a.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"},
		{"file uri", "file:a.db", "file:a.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"},
		{"existing query", "file:a.db?cache=shared", "file:a.db?cache=shared&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, fileDSN(tt.path))
		})
	}
}

func TestConnectSQLite_EveryConnectionWaitsOnLocks(t *testing.T) {
	ctx := context.Background()
	db, err := ConnectSQLite(filepath.Join(t.TempDir(), "shop.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// Holding both connections forces the pool to open two distinct ones.
	first, err := db.Conn(ctx)
	require.NoError(t, err)
	defer first.Close()
	second, err := db.Conn(ctx)
	require.NoError(t, err)
	defer second.Close()

	for _, conn := range []*sql.Conn{first, second} {
		var timeout int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&timeout))
		require.Equal(t, busyTimeoutMillis, timeout)

		var mode string
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
		require.Equal(t, "wal", mode)
	}
}
