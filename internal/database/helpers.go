package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/thenoetrevino/roster/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// timeLayout is how timestamps are stored in TEXT columns
const timeLayout = time.RFC3339Nano

// now is swapped in tests that need stable timestamps
var now = func() time.Time {
	return time.Now().UTC()
}

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
// fn must only use the given tx: the pool holds a single connection.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// rowExists runs a SELECT 1 style query and reports whether it matched
func rowExists(ctx context.Context, tx *sql.Tx, query string, args ...any) (bool, error) {
	var one int
	err := tx.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// sqliteCode returns the extended SQLite result code carried by err, or 0
func sqliteCode(err error) int {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()
	}
	return 0
}

func isUniqueViolation(err error) bool {
	switch sqliteCode(err) {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		return strings.Contains(err.Error(), "UNIQUE constraint failed")
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	switch sqliteCode(err) {
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
	}
	return false
}

// nullableString converts an optional reference into a value for a nullable column
func nullableString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// nullStringToPtr converts sql.NullString to *string.
// Returns nil if the value is not valid.
func nullStringToPtr(ns sql.NullString) *string {
	if ns.Valid {
		val := ns.String
		return &val
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime reads a stored timestamp. A malformed value yields the zero
// time rather than failing the whole read.
func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		slog.Warn("unparseable timestamp", "value", s, "error", err)
		return time.Time{}
	}
	return t
}

// listQuery builds SELECTs for the list operations from a fixed base query,
// a whitelist of sort keys and the columns a search matches against.
type listQuery struct {
	base     string
	idColumn string
	sortable map[string]string
	search   []string
}

func (q listQuery) build(opts models.ListOptions) (string, []any, error) {
	var sb strings.Builder
	var args []any

	sb.WriteString(q.base)

	if term := strings.TrimSpace(opts.Search); term != "" {
		pattern := "%" + escapeLike(foldString(term)) + "%"
		clauses := make([]string, len(q.search))
		for i, col := range q.search {
			clauses[i] = fmt.Sprintf("%s(%s) LIKE ? ESCAPE '\\'", foldFunc, col)
			args = append(args, pattern)
		}
		sb.WriteString(" WHERE (")
		sb.WriteString(strings.Join(clauses, " OR "))
		sb.WriteString(")")
	}

	orderCol := q.idColumn
	if opts.SortBy != "" {
		col, ok := q.sortable[strings.ToLower(opts.SortBy)]
		if !ok {
			return "", nil, &models.ValidationError{
				Field:  "sort",
				Reason: fmt.Sprintf("unknown sort key %q (allowed: %s)", opts.SortBy, strings.Join(q.sortKeys(), ", ")),
			}
		}
		orderCol = col
	}

	direction := "ASC"
	if opts.Desc {
		direction = "DESC"
	}

	sb.WriteString(" ORDER BY ")
	sb.WriteString(orderCol)
	sb.WriteString(" ")
	sb.WriteString(direction)
	if orderCol != q.idColumn {
		// ties keep insertion order
		sb.WriteString(", ")
		sb.WriteString(q.idColumn)
		sb.WriteString(" ASC")
	}

	return sb.String(), args, nil
}

func (q listQuery) sortKeys() []string {
	keys := make([]string, 0, len(q.sortable))
	for k := range q.sortable {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
