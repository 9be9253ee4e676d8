package repository

import (
	"context"

	"gorm.io/gorm"
)

// Record is one result row, flattened to column name -> value.
type Record = map[string]any

// call executes a stored procedure that returns no rows. The call runs in
// its own transaction: committed when the procedure succeeds, rolled back
// when it raises.
func call(ctx context.Context, db *gorm.DB, stmt string, args ...any) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Exec(stmt, args...).Error
	})
	return normalizeError(err)
}

// queryOne executes a set-returning function expected to yield at most one
// row. Zero rows is ErrNotFound.
func queryOne(ctx context.Context, db *gorm.DB, stmt string, args ...any) (Record, error) {
	rows, err := queryAll(ctx, db, stmt, args...)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

// queryAll executes a set-returning function. An empty result is success.
// The full parameter arity is always bound; unset filters travel as NULL and
// the function treats NULL as "ignore this filter".
func queryAll(ctx context.Context, db *gorm.DB, stmt string, args ...any) ([]Record, error) {
	rows := make([]Record, 0)
	if err := db.WithContext(ctx).Raw(stmt, args...).Scan(&rows).Error; err != nil {
		return nil, normalizeError(err)
	}
	return rows, nil
}
