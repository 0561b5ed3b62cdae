package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestDB connects to the database named by TEST_MYSQL_DSN and wipes the
// mutable tables. Tests are skipped when no test database is configured.
func newTestDB(t *testing.T) *MYSQLStore {
	t.Helper()

	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("TEST_MYSQL_DSN is not set")
	}

	db, err := New(context.Background(), Config{
		DSN:         dsn,
		Automigrate: true,
	})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	ctx := context.Background()
	for _, stmt := range []string{
		"SET FOREIGN_KEY_CHECKS = 0",
		"DELETE FROM claim_order",
		"DELETE FROM order_item",
		"DELETE FROM orders",
		"DELETE FROM member",
		"DELETE FROM master_item WHERE code LIKE 'TEST\\_%'",
		"SET FOREIGN_KEY_CHECKS = 1",
	} {
		_, err = db.db.ExecContext(ctx, stmt)
		require.NoError(t, err)
	}

	return db
}
