package repository

import (
	"context"
	"fmt"
)

const createFranchisesTable = `
	CREATE TABLE IF NOT EXISTS Franchises (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		version BIGINT NOT NULL DEFAULT 1,
		document JSON NOT NULL,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_franchises_name (name)
	)`

// EnsureSchema creates the Franchises table when it does not exist yet.
func (r *MySQLRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createFranchisesTable); err != nil {
		return fmt.Errorf("creating Franchises table: %w", err)
	}
	return nil
}
