// Package dataset holds the cli commands that move the whole data set:
// export, import and backup
package dataset

import (
	"context"
	"fmt"
	"strings"

	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/styles"
	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/exchange"
)

// Counts is the number of records of each kind
type Counts struct {
	Students    int `json:"students"`
	Instructors int `json:"instructors"`
	Courses     int `json:"courses"`
	Enrollments int `json:"enrollments"`
}

func (c Counts) String() string {
	return fmt.Sprintf("%d students, %d instructors, %d courses, %d enrollments",
		c.Students, c.Instructors, c.Courses, c.Enrollments)
}

// countAll reads the record counts from the store
func countAll(ctx context.Context, store database.DataStore) (Counts, error) {
	var c Counts
	var err error
	if c.Students, err = store.CountStudents(ctx); err != nil {
		return c, err
	}
	if c.Instructors, err = store.CountInstructors(ctx); err != nil {
		return c, err
	}
	if c.Courses, err = store.CountCourses(ctx); err != nil {
		return c, err
	}
	if c.Enrollments, err = store.CountEnrollments(ctx); err != nil {
		return c, err
	}
	return c, nil
}

// resolveFormat picks the exchange format from --format or the file name
func resolveFormat(format, path string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case exchange.FormatXLSX, exchange.FormatJSON:
		return format, nil
	case "":
		f, err := exchange.FormatFromPath(path)
		if err != nil {
			return "", &cli.UsageError{Err: err}
		}
		return f, nil
	default:
		return "", &cli.UsageError{Err: fmt.Errorf("unknown format %q (must be: %s, %s)", format, exchange.FormatXLSX, exchange.FormatJSON)}
	}
}

// fileResult describes a file written by export or backup
type fileResult struct {
	Path   string `json:"path"`
	Format string `json:"format"`
	Counts Counts `json:"counts"`
	action string
}

// QuietLines implements cli.QuietLister
func (r *fileResult) QuietLines() []string {
	return []string{r.Path}
}

// RenderHuman implements cli.HumanRenderer
func (r *fileResult) RenderHuman() string {
	return fmt.Sprintf("✓ %s %s\n  %s", r.action, r.Path, styles.SubtitleStyle.Render(r.Counts.String()))
}
