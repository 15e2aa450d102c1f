package users

import (
	"time"

	"github.com/fintaskReza/opzer-dash/internal/shared"
)

// User represents a user account for management. The password hash never
// leaves the repository.
type User struct {
	ID        int64       `json:"id"`
	OrgID     int64       `json:"orgId"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      shared.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

// CreateInput is the payload for a new user.
type CreateInput struct {
	OrgID    int64       `json:"orgId" validate:"required,gt=0"`
	Email    string      `json:"email" validate:"required,email,max=254"`
	Password string      `json:"password" validate:"required,min=8,max=72"`
	Name     string      `json:"name" validate:"required,max=200"`
	Role     shared.Role `json:"role" validate:"omitempty,oneof=admin member"`
}

// UpdateInput is a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	Name     *string      `json:"name" validate:"omitempty,min=1,max=200"`
	Role     *shared.Role `json:"role" validate:"omitempty,oneof=admin member"`
	Password *string      `json:"password" validate:"omitempty,min=8,max=72"`
}

// NewUser is what the repository persists on create.
type NewUser struct {
	OrgID        int64
	Email        string
	PasswordHash string
	Name         string
	Role         shared.Role
}

// Patch is what the repository applies on update.
type Patch struct {
	Name         *string
	Role         *shared.Role
	PasswordHash *string
}
