package models

// Role defines what a team member is allowed to see on the dashboard
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// ValidRoles contains all valid role values
var ValidRoles = []Role{
	RoleAdmin,
	RoleEmployee,
}

// IsValidRole checks if a role string is a valid Role
func IsValidRole(s string) bool {
	for _, r := range ValidRoles {
		if string(r) == s {
			return true
		}
	}
	return false
}

// Member is a team member that tasks can be assigned to.
type Member struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role"`
}

// Project groups tasks for reporting. Tasks reference it by ID only.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
