// Package orgs manages tenant organizations.
package orgs

import "time"

// Organization is a tenant. Every roster and entry row belongs to exactly one.
type Organization struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateInput carries the fields for a new organization.
type CreateInput struct {
	Name string `json:"name" validate:"required,max=200"`
	Slug string `json:"slug" validate:"required,max=64,slug"`
}
