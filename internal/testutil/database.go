package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

const defaultTestDSN = "root:@tcp(localhost:3306)/franchises_test?parseTime=true"

// SetupTestDB opens the integration database, skipping the test when it is
// unreachable. TEST_MYSQL_DSN overrides the default local DSN.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		dsn = defaultTestDSN
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties the test tables and closes db.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	t.Helper()

	if db == nil {
		return
	}

	for _, table := range []string{"Franchises"} {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

func SetupTestTables(t *testing.T, db *sql.DB) {
	t.Helper()

	createFranchisesTable := `
	CREATE TABLE IF NOT EXISTS Franchises (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		version BIGINT NOT NULL DEFAULT 1,
		document JSON NOT NULL,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_franchises_name (name)
	)`

	if _, err := db.Exec(createFranchisesTable); err != nil {
		t.Logf("failed to create table Franchises: %v", err)
	}
	if _, err := db.Exec("DELETE FROM Franchises"); err != nil {
		t.Logf("failed to clean table Franchises: %v", err)
	}
}
