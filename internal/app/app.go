package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/exchange"
	"github.com/thenoetrevino/roster/internal/metrics"
	courseservice "github.com/thenoetrevino/roster/internal/services/course"
	enrollmentservice "github.com/thenoetrevino/roster/internal/services/enrollment"
	instructorservice "github.com/thenoetrevino/roster/internal/services/instructor"
	studentservice "github.com/thenoetrevino/roster/internal/services/student"
)

// App holds all application services and provides dependency injection.
// It owns the database handle: whoever creates an App must Close it.
type App struct {
	db   *sql.DB
	repo *database.Repository

	metrics     *metrics.Recorder
	metricsFile string
	logger      *slog.Logger

	// Service layer (business logic)
	StudentService    studentservice.Service
	InstructorService instructorservice.Service
	CourseService     courseservice.Service
	EnrollmentService enrollmentservice.Service
}

// New creates a new App with all services initialized over an open database.
// The App takes ownership of db.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.recorder == nil {
		cfg.recorder = metrics.New()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	repo := database.NewRepository(db)
	return &App{
		db:                db,
		repo:              repo,
		metrics:           cfg.recorder,
		metricsFile:       cfg.metricsFile,
		logger:            cfg.logger,
		StudentService:    studentservice.NewService(repo, cfg.recorder),
		InstructorService: instructorservice.NewService(repo, cfg.recorder),
		CourseService:     courseservice.NewService(repo, cfg.recorder),
		EnrollmentService: enrollmentservice.NewService(repo, cfg.recorder),
	}
}

// Open opens the database named by cfg and builds the App around it
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	if cfg.Metrics.Textfile != "" {
		opts = append([]Option{WithMetricsTextfile(cfg.Metrics.Textfile)}, opts...)
	}
	return New(db, opts...), nil
}

// Run opens the App, calls fn and closes the App whatever fn returns.
// A close failure is reported only when fn succeeded.
func Run(ctx context.Context, cfg *config.Config, fn func(*App) error, opts ...Option) (err error) {
	a, err := Open(ctx, cfg, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := a.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return fn(a)
}

// Repo returns the underlying repository for direct database access
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Metrics returns the recorder shared by the services
func (a *App) Metrics() *metrics.Recorder {
	return a.metrics
}

// Exchange returns an exporter/importer over the App's services
func (a *App) Exchange() *exchange.Exchanger {
	return exchange.New(exchange.Services{
		Students:    a.StudentService,
		Instructors: a.InstructorService,
		Courses:     a.CourseService,
		Enrollments: a.EnrollmentService,
	})
}

// Backup writes a consistent copy of the database to dest
func (a *App) Backup(ctx context.Context, dest string) (err error) {
	start := time.Now()
	defer func() { a.metrics.Observe("database", "backup", start, err) }()

	if err = a.repo.Backup(ctx, dest); err != nil {
		return err
	}
	a.logger.Info("database backed up", "dest", dest)
	return nil
}

// Close releases the database and flushes the metrics textfile if configured.
// Calling Close more than once is safe.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}

	var errs []error
	if err := a.metrics.WriteTextfile(a.metricsFile); err != nil {
		errs = append(errs, fmt.Errorf("failed to write metrics textfile: %w", err))
	}
	if err := a.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close database: %w", err))
	}
	a.db = nil

	return errors.Join(errs...)
}
