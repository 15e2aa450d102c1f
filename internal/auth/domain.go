package auth

import (
	"time"

	"github.com/fintaskReza/opzer-dash/internal/shared"
)

// User represents an authenticated user account.
type User struct {
	ID           int64
	OrgID        int64
	Email        string
	Name         string
	Role         shared.Role
	PasswordHash string
	CreatedAt    time.Time
}

// Principal projects the user onto the request principal.
func (u User) Principal() shared.Principal {
	return shared.Principal{UserID: u.ID, OrgID: u.OrgID, Email: u.Email, Name: u.Name, Role: u.Role}
}
