package models

// ListOptions narrows and orders list results. The zero value lists
// everything in insertion order.
type ListOptions struct {
	// SortBy is a column key such as "name" or "age"; empty means insertion order
	SortBy string
	// Desc reverses the sort
	Desc bool
	// Search is a case-insensitive substring matched against name and code
	Search string
}
