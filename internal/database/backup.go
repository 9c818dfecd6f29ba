package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Backup writes a consistent copy of db to dest using VACUUM INTO.
// dest must not exist; its parent directory is created if needed.
func Backup(ctx context.Context, db *sql.DB, dest string) error {
	if dest == "" {
		return errors.New("backup destination is empty")
	}

	if _, err := os.Stat(dest); err == nil {
		return fmt.Errorf("backup destination %s: %w", dest, fs.ErrExist)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat backup destination: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := db.ExecContext(ctx, `VACUUM INTO ?`, dest); err != nil {
		return fmt.Errorf("failed to back up database to %s: %w", dest, err)
	}
	return nil
}
