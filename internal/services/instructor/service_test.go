package instructor

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/metrics"
	"github.com/thenoetrevino/roster/internal/models"
)

func setupTestService(t *testing.T) (Service, *metrics.Recorder) {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	recorder := metrics.New()
	return NewService(database.NewRepository(db), recorder), recorder
}

func ptr[T any](v T) *T { return &v }

// Every case runs against a store that already holds I1
func TestCreateInstructor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       CreateInstructorRequest
		wantErr   error
		wantField string
		outcome   string
	}{
		{
			name:    "trimmed and stored",
			req:     CreateInstructorRequest{InstructorID: " I2 ", Name: " Alan Turing ", Age: 41, Email: "alan@example.com"},
			outcome: "ok",
		},
		{
			name:    "oldest allowed age",
			req:     CreateInstructorRequest{InstructorID: "I3", Name: "Elder", Age: models.MaxAge},
			outcome: "ok",
		},
		{
			name:    "duplicate code",
			req:     CreateInstructorRequest{InstructorID: "I1", Name: "Impostor", Age: 50},
			wantErr: models.ErrDuplicateKey,
			outcome: "duplicate_key",
		},
		{
			name:      "code with space",
			req:       CreateInstructorRequest{InstructorID: "I 4", Name: "Spacey", Age: 50},
			wantErr:   models.ErrValidation,
			wantField: "instructor_id",
			outcome:   "validation",
		},
		{
			name:      "missing name",
			req:       CreateInstructorRequest{InstructorID: "I5", Age: 50},
			wantErr:   models.ErrValidation,
			wantField: "name",
			outcome:   "validation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, recorder := setupTestService(t)
			ctx := context.Background()

			if _, err := svc.CreateInstructor(ctx, CreateInstructorRequest{InstructorID: "I1", Name: "Grace Hopper", Age: 45}); err != nil {
				t.Fatalf("Failed to seed instructor: %v", err)
			}

			got, err := svc.CreateInstructor(ctx, tt.req)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				var verr *models.ValidationError
				if tt.wantField != "" && (!errors.As(err, &verr) || verr.Field != tt.wantField) {
					t.Errorf("Expected validation of %s, got %v", tt.wantField, err)
				}
			} else {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				stored, err := svc.GetInstructorByCode(ctx, got.InstructorID)
				if err != nil {
					t.Fatalf("Failed to reload instructor: %v", err)
				}
				if stored.ID != got.ID || stored.Name != got.Name || stored.Age != got.Age || stored.Email != got.Email {
					t.Errorf("Stored instructor %+v differs from returned %+v", stored, got)
				}
			}

			// the seeded I1 is recorded as ok too
			want := 1.0
			if tt.outcome == "ok" {
				want = 2
			}
			if n := testutil.ToFloat64(recorder.Count(models.EntityInstructor, "create", tt.outcome)); n != want {
				t.Errorf("Expected %v creates recorded as %s, got %v", want, tt.outcome, n)
			}
		})
	}

	t.Run("codes and names are trimmed", func(t *testing.T) {
		t.Parallel()
		svc, _ := setupTestService(t)
		got, err := svc.CreateInstructor(context.Background(), CreateInstructorRequest{InstructorID: " I9 ", Name: " Ada ", Age: 36})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if got.InstructorID != "I9" || got.Name != "Ada" {
			t.Errorf("Expected trimmed fields, got %q / %q", got.InstructorID, got.Name)
		}
	})
}

func TestLookupInstructor(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)
	ctx := context.Background()
	grace, err := svc.CreateInstructor(ctx, CreateInstructorRequest{InstructorID: "I1", Name: "Grace Hopper", Age: 45})
	if err != nil {
		t.Fatalf("Failed to seed instructor: %v", err)
	}

	lookups := map[string]func() (*models.Instructor, error){
		"by id":             func() (*models.Instructor, error) { return svc.GetInstructor(ctx, grace.ID) },
		"by padded code":    func() (*models.Instructor, error) { return svc.GetInstructorByCode(ctx, "  I1") },
		"unknown id":        func() (*models.Instructor, error) { return svc.GetInstructor(ctx, grace.ID+100) },
		"unknown code":      func() (*models.Instructor, error) { return svc.GetInstructorByCode(ctx, "I404") },
		"non-positive id":   func() (*models.Instructor, error) { return svc.GetInstructor(ctx, -3) },
		"code with a space": func() (*models.Instructor, error) { return svc.GetInstructorByCode(ctx, "I 1") },
	}
	want := map[string]error{
		"unknown id":        models.ErrNotFound,
		"unknown code":      models.ErrNotFound,
		"non-positive id":   models.ErrValidation,
		"code with a space": models.ErrValidation,
	}

	for name, lookup := range lookups {
		got, err := lookup()
		if wantErr := want[name]; wantErr != nil {
			if !errors.Is(err, wantErr) {
				t.Errorf("%s: expected %v, got %v", name, wantErr, err)
			}
			continue
		}
		if err != nil || got.ID != grace.ID {
			t.Errorf("%s: expected Grace, got %+v (err %v)", name, got, err)
		}
	}
}

func TestListInstructors_SortedBySeniority(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)
	ctx := context.Background()
	for _, req := range []CreateInstructorRequest{
		{InstructorID: "I1", Name: "Grace Hopper", Age: 45},
		{InstructorID: "I2", Name: "Alan Turing", Age: 41},
		{InstructorID: "I3", Name: "Barbara Liskov", Age: 62},
	} {
		if _, err := svc.CreateInstructor(ctx, req); err != nil {
			t.Fatalf("Failed to seed %s: %v", req.InstructorID, err)
		}
	}

	eldest, err := svc.ListInstructors(ctx, models.ListOptions{SortBy: "age", Desc: true})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	var order []string
	for _, in := range eldest {
		order = append(order, in.InstructorID)
	}
	if len(order) != 3 || order[0] != "I3" || order[1] != "I1" || order[2] != "I2" {
		t.Errorf("Expected I3, I1, I2 by age descending, got %v", order)
	}

	if _, err := svc.ListInstructors(ctx, models.ListOptions{SortBy: "salary"}); !errors.Is(err, models.ErrValidation) {
		t.Errorf("Expected unknown sort key to be rejected, got %v", err)
	}
}

func TestUpdateInstructor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     func(id int) UpdateInstructorRequest
		wantErr error
		want    models.Instructor
	}{
		{
			name: "rename keeps age and email",
			req:  func(id int) UpdateInstructorRequest { return UpdateInstructorRequest{ID: id, Name: ptr("Rear Admiral Hopper")} },
			want: models.Instructor{Name: "Rear Admiral Hopper", Age: 45, Email: "grace@example.com"},
		},
		{
			name: "clear email",
			req:  func(id int) UpdateInstructorRequest { return UpdateInstructorRequest{ID: id, Email: ptr("")} },
			want: models.Instructor{Name: "Grace Hopper", Age: 45},
		},
		{
			name:    "nothing to change",
			req:     func(id int) UpdateInstructorRequest { return UpdateInstructorRequest{ID: id} },
			wantErr: ErrNoChanges,
		},
		{
			name:    "unknown id",
			req:     func(id int) UpdateInstructorRequest { return UpdateInstructorRequest{ID: id + 1, Age: ptr(50)} },
			wantErr: models.ErrNotFound,
		},
		{
			name:    "bad email",
			req:     func(id int) UpdateInstructorRequest { return UpdateInstructorRequest{ID: id, Email: ptr("grace-at-navy")} },
			wantErr: models.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := setupTestService(t)
			ctx := context.Background()

			grace, err := svc.CreateInstructor(ctx, CreateInstructorRequest{
				InstructorID: "I1", Name: "Grace Hopper", Age: 45, Email: "grace@example.com",
			})
			if err != nil {
				t.Fatalf("Failed to seed instructor: %v", err)
			}

			_, err = svc.UpdateInstructor(ctx, tt.req(grace.ID))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}

			stored, err := svc.GetInstructor(ctx, grace.ID)
			if err != nil {
				t.Fatalf("Failed to reload instructor: %v", err)
			}
			want := tt.want
			if tt.wantErr != nil {
				want = models.Instructor{Name: grace.Name, Age: grace.Age, Email: grace.Email}
			}
			if stored.Name != want.Name || stored.Age != want.Age || stored.Email != want.Email {
				t.Errorf("Expected %s/%d/%q stored, got %s/%d/%q",
					want.Name, want.Age, want.Email, stored.Name, stored.Age, stored.Email)
			}
			if stored.InstructorID != "I1" {
				t.Errorf("Instructor code must not change, got %s", stored.InstructorID)
			}
		})
	}
}
