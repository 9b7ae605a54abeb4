package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"

	"franchises/internal/domain"
	apperrors "franchises/internal/errors"
)

const mysqlDuplicateEntry = 1062

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

// Save inserts the franchise when Version is zero and otherwise performs a
// conditional update against the version that was read.
func (r *MySQLRepository) Save(ctx context.Context, franchise *domain.Franchise) (*domain.Franchise, error) {
	out := franchise.Clone()
	out.Version = franchise.Version + 1

	document, err := marshalFranchise(out)
	if err != nil {
		return nil, err
	}

	if franchise.Version == 0 {
		if err := r.insert(ctx, out, document); err != nil {
			return nil, err
		}
		return &out, nil
	}

	if err := r.update(ctx, out, franchise.Version, document); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *MySQLRepository) insert(ctx context.Context, f domain.Franchise, document []byte) error {
	query := `INSERT INTO Franchises (id, name, version, document) VALUES (?, ?, ?, ?)`

	if _, err := r.db.ExecContext(ctx, query, f.ID, f.Name, f.Version, document); err != nil {
		return classifyWriteError("inserting franchise", err)
	}
	return nil
}

func (r *MySQLRepository) update(ctx context.Context, f domain.Franchise, expectedVersion int64, document []byte) error {
	query := `UPDATE Franchises SET name = ?, version = ?, document = ? WHERE id = ? AND version = ?`

	result, err := r.db.ExecContext(ctx, query, f.Name, f.Version, document, f.ID, expectedVersion)
	if err != nil {
		return classifyWriteError("updating franchise", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		exists, err := r.exists(ctx, f.ID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NewNotFoundError(apperrors.EntityFranchise, f.ID)
		}
		return apperrors.NewConflictError(fmt.Sprintf("franchise %s was modified concurrently", f.ID))
	}

	return nil
}

func (r *MySQLRepository) exists(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM Franchises WHERE id = ?`, id).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking franchise existence: %w", err)
	}
	return count > 0, nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, id string) (*domain.Franchise, error) {
	query := `SELECT id, name, version, document FROM Franchises WHERE id = ?`

	f, err := r.scanOne(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(apperrors.EntityFranchise, id)
	}
	if err != nil {
		return nil, apperrors.NewInternalError("querying franchise by id", err)
	}
	return f, nil
}

func (r *MySQLRepository) FindByName(ctx context.Context, name string) (*domain.Franchise, error) {
	query := `SELECT id, name, version, document FROM Franchises WHERE name = ?`

	f, err := r.scanOne(r.db.QueryRowContext(ctx, query, name))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(apperrors.EntityFranchise, name)
	}
	if err != nil {
		return nil, apperrors.NewInternalError("querying franchise by name", err)
	}
	return f, nil
}

// scanOne reads a row; the row columns win over whatever the document says.
func (r *MySQLRepository) scanOne(row *sql.Row) (*domain.Franchise, error) {
	var (
		id, name string
		version  int64
		document []byte
	)
	if err := row.Scan(&id, &name, &version, &document); err != nil {
		return nil, err
	}

	f, err := unmarshalFranchise(document)
	if err != nil {
		return nil, err
	}
	f.ID = id
	f.Name = name
	f.Version = version
	return &f, nil
}

func classifyWriteError(op string, err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		field := "name"
		if strings.Contains(mysqlErr.Message, "PRIMARY") {
			field = "id"
		}
		return apperrors.NewUniqueViolationError(field, err)
	}
	return apperrors.NewInternalError(op, err)
}
