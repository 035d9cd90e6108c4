package db

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/ferdiebergado/gopherkit/env"
	"github.com/ferdiebergado/inflowkit/internal/config"
)

// Setup connects to the database declared in .env.testing and hands the
// caller a transaction that is rolled back on cleanup. Tests are skipped
// when no test database is configured.
func Setup(t *testing.T) (*sql.DB, *sql.Tx) {
	t.Helper()

	const projRoot = "../../"

	if _, err := os.Stat(projRoot + ".env.testing"); err != nil {
		t.Skip("no .env.testing, skipping database tests")
	}

	if err := env.Load(projRoot + ".env.testing"); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(projRoot + "config.json")
	if err != nil {
		t.Fatal(err)
	}

	conn, err := NewConnection(context.Background(), cfg.DB)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := conn.Close(); err != nil {
			t.Logf("unable to close connection: %v", err)
		}
	})

	if err := EnsureSchema(context.Background(), conn); err != nil {
		t.Fatal(err)
	}

	tx, err := conn.Begin()
	if err != nil {
		t.Fatalf("unable to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Logf("unable to rollback transaction: %v", err)
		}
	})

	return conn, tx
}
