// Package dbtest prepares a throwaway Postgres schema for repository tests.
package dbtest

import (
	"fmt"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"
)

// DSNEnv names the variable that enables database tests.
const DSNEnv = "PG_TEST_DSN"

// Open connects to the test database, recreates the public schema and
// applies the migrations. The test is skipped when DSNEnv is unset.
func Open(t testing.TB, migrations ...string) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set", DSNEnv)
	}

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		t.Fatalf("sqlx.Connect: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(`DROP SCHEMA public CASCADE; CREATE SCHEMA public`); err != nil {
		t.Fatalf("reset schema: %v", err)
	}

	if err := MigrateFromFile(db, migrations...); err != nil {
		t.Fatalf("dbtest.MigrateFromFile: %v", err)
	}

	return db
}

// MigrateFromFile executes each file as one multi-statement script.
func MigrateFromFile(db *sqlx.DB, fileNames ...string) error {
	for _, fileName := range fileNames {
		script, err := os.ReadFile(fileName)
		if err != nil {
			return fmt.Errorf("os.ReadFile: %w", err)
		}

		if _, err = db.Exec(string(script)); err != nil {
			return fmt.Errorf("db.Exec %s: %w", fileName, err)
		}
	}

	return nil
}
