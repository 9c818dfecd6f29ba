package database

import (
	"context"

	"github.com/thenoetrevino/roster/internal/models"
)

// StudentRepository defines data access for students
type StudentRepository interface {
	CreateStudent(ctx context.Context, studentID, name string, age int, email string) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int) (*models.Student, error)
	GetStudentByCode(ctx context.Context, studentID string) (*models.Student, error)
	ListStudents(ctx context.Context, opts models.ListOptions) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, id int, name string, age int, email string) error
	CountStudents(ctx context.Context) (int, error)
}

// InstructorRepository defines data access for instructors
type InstructorRepository interface {
	CreateInstructor(ctx context.Context, instructorID, name string, age int, email string) (*models.Instructor, error)
	GetInstructorByID(ctx context.Context, id int) (*models.Instructor, error)
	GetInstructorByCode(ctx context.Context, instructorID string) (*models.Instructor, error)
	ListInstructors(ctx context.Context, opts models.ListOptions) ([]*models.Instructor, error)
	UpdateInstructor(ctx context.Context, id int, name string, age int, email string) error
	CountInstructors(ctx context.Context) (int, error)
}

// CourseRepository defines data access for courses
type CourseRepository interface {
	CreateCourse(ctx context.Context, courseID, name string, instructorID *string) (*models.Course, error)
	GetCourseByID(ctx context.Context, id int) (*models.Course, error)
	GetCourseByCode(ctx context.Context, courseID string) (*models.Course, error)
	ListCourses(ctx context.Context, opts models.ListOptions) ([]*models.CourseSummary, error)
	UpdateCourse(ctx context.Context, id int, name string, instructorID *string) error
	CountCourses(ctx context.Context) (int, error)
}

// EnrollmentRepository defines data access for enrollments
type EnrollmentRepository interface {
	Enroll(ctx context.Context, studentID, courseID string) (*models.Enrollment, error)
	ListEnrollments(ctx context.Context) ([]*models.Enrollment, error)
	GetCourseRoster(ctx context.Context, courseID string) ([]*models.RosterEntry, error)
	GetCoursesForStudent(ctx context.Context, studentID string) ([]*models.Course, error)
	CountEnrollments(ctx context.Context) (int, error)
}
