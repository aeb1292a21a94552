package model

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleAffiliate Role = "affiliate"
)

type User struct {
	ID           string `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	Role         Role   `json:"role" db:"role"`
	IsActive     bool   `json:"is_active" db:"is_active"`
}

// Sanitized returns a copy safe to hand outside the auth layer.
// The stored digest must never leave the credential store.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
