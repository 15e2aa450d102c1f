// Package roster stores each organization's clients and team members, the
// reference data the profitability engine joins entries against.
package roster

import (
	"github.com/fintaskReza/opzer-dash/internal/profitability"
)

// ClientRecord is a stored client.
type ClientRecord struct {
	ID    int64 `json:"id"`
	OrgID int64 `json:"orgId"`
	profitability.Client
}

// TeamMemberRecord is a stored team member.
type TeamMemberRecord struct {
	ID    int64 `json:"id"`
	OrgID int64 `json:"orgId"`
	profitability.TeamMember
}

// CreateClientInput is the payload for a new client. ExternalName defaults
// to the canonical name.
type CreateClientInput struct {
	CanonicalName string               `json:"karbonName" validate:"required,max=200"`
	ExternalName  string               `json:"quickbooksName" validate:"max=200"`
	Status        profitability.Status `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// TeamMemberInput is used for both create and partial update. Nil fields
// take defaults on create and are left unchanged on update.
type TeamMemberInput struct {
	Name                  *string                 `json:"name" validate:"omitempty,min=1,max=200"`
	Role                  *string                 `json:"role" validate:"omitempty,max=120"`
	CostRate              *float64                `json:"costRate" validate:"omitempty,gte=0"`
	BillingRate           *float64                `json:"billingRate" validate:"omitempty,gte=0"`
	Status                *profitability.Status   `json:"status" validate:"omitempty,oneof=Active Inactive"`
	CapacityHoursPerMonth *int                    `json:"capacityHoursPerMonth" validate:"omitempty,gt=0,lte=744"`
	Location              *profitability.Location `json:"location" validate:"omitempty,oneof=Onshore Offshore"`
}

// Clients strips storage ids for the engine.
func Clients(records []ClientRecord) []profitability.Client {
	out := make([]profitability.Client, len(records))
	for i, r := range records {
		out[i] = r.Client
	}
	return out
}

// TeamMembers strips storage ids for the engine.
func TeamMembers(records []TeamMemberRecord) []profitability.TeamMember {
	out := make([]profitability.TeamMember, len(records))
	for i, r := range records {
		out[i] = r.TeamMember
	}
	return out
}
