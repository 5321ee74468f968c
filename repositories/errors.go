package repositories

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// Sentinel errors returned (optionally wrapped) by every repository.
// Services translate them into apperrors types.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	// ErrCorrupt marks a stored row that no longer decodes into its model.
	ErrCorrupt = errors.New("corrupt record")
)

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
