package domain

// Staff is a member of the workforce that tasks can be assigned to.
// Tasks refer to staff by ID only.
type Staff struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// DefaultRoster returns the staff members seeded at startup. IDs are left
// zero and assigned by the staff store.
func DefaultRoster() []Staff {
	return []Staff{
		{Name: "John Doe", Email: "john@company.com", Role: "Sales"},
		{Name: "Jane Smith", Email: "jane@company.com", Role: "Operations"},
		{Name: "Bob Wilson", Email: "bob@company.com", Role: "Sales"},
	}
}
