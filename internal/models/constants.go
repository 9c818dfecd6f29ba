package models

// ============================================================================
// ENTITY NAMES
// ============================================================================

// Entity names used in errors, logs and metric labels
const (
	EntityStudent    = "student"
	EntityInstructor = "instructor"
	EntityCourse     = "course"
	EntityEnrollment = "enrollment"
)

// ============================================================================
// FIELD LIMITS
// ============================================================================

const (
	MaxNameLength = 100
	MaxCodeLength = 32
	MinAge        = 0
	MaxAge        = 150
)
