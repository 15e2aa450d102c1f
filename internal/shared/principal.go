package shared

import (
	"net/http"
	"strconv"
)

// Role is the coarse permission level of a user.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// Principal is the authenticated caller attached to a request.
type Principal struct {
	UserID int64  `json:"id"`
	OrgID  int64  `json:"orgId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
}

// IsAdmin reports whether the caller may act across organizations.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// ResolveOrgID scopes a request to an organization. Members are pinned to
// their own org; admins may target another one with ?orgId=.
func ResolveOrgID(p Principal, r *http.Request) int64 {
	if !p.IsAdmin() {
		return p.OrgID
	}
	raw := r.URL.Query().Get("orgId")
	if raw == "" {
		return p.OrgID
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return p.OrgID
	}
	return id
}
