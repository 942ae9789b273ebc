package model

// User roles.
const (
	RoleExecutive = "executive"
	RoleManager   = "manager"
	RoleAdmin     = "admin"
	RoleUser      = "user"
)

type User struct {
	ID         string  `json:"id"`
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Department *string `json:"department,omitempty"`
	AccountID  string  `json:"account_id"`
}
