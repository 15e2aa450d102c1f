// Package profitability computes client, service and team metrics from flat
// time, revenue and budget record sets.
//
// All functions are pure: they never mutate their inputs, never perform I/O
// and never return errors. Ratios with a zero denominator are defined as 0.
//
// Revenue is recorded per client only. Service and team member revenue is an
// allocation: each client's revenue is split across that client's time entries
// in proportion to hours logged. Treat those figures as estimates.
package profitability

// Status marks whether a roster entry participates in reporting.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Location buckets team members for onshore/offshore hour splits.
type Location string

const (
	LocationOnshore  Location = "Onshore"
	LocationOffshore Location = "Offshore"
)

const (
	// UncategorizedService is used for time entries without a service tag.
	UncategorizedService = "Uncategorized"
	// DefaultCapacityHoursPerMonth applies when a roster entry omits capacity.
	DefaultCapacityHoursPerMonth = 140
)

// TimeEntry is one block of hours logged against a client.
type TimeEntry struct {
	ClientName  string  `json:"clientName"`
	TeamMember  string  `json:"teamMember"`
	HoursLogged float64 `json:"hoursLogged"`
	Date        string  `json:"date"`
	ServiceTag  string  `json:"serviceTag"`
	Billable    bool    `json:"billable"`
}

// Service returns the entry's service tag, defaulting blank tags.
func (t TimeEntry) Service() string {
	if t.ServiceTag == "" {
		return UncategorizedService
	}
	return t.ServiceTag
}

// RevenueEntry is one cash collection attributed to a client.
type RevenueEntry struct {
	ClientName string  `json:"clientName"`
	Amount     float64 `json:"amount"`
	Date       string  `json:"date"`
}

// BudgetEntry holds the revenue budget for a client.
type BudgetEntry struct {
	ClientName string  `json:"clientName"`
	Budget     float64 `json:"budget"`
}

// Client is a roster entry. CanonicalName is the time-tracking identity and
// ExternalName the billing-system identity.
type Client struct {
	CanonicalName string `json:"karbonName"`
	ExternalName  string `json:"quickbooksName"`
	Status        Status `json:"status"`
}

// TeamMember is a staffing roster entry.
type TeamMember struct {
	Name                  string   `json:"name"`
	Role                  string   `json:"role"`
	CostRate              float64  `json:"costRate"`
	BillingRate           float64  `json:"billingRate"`
	Status                Status   `json:"status"`
	CapacityHoursPerMonth int      `json:"capacityHoursPerMonth"`
	Location              Location `json:"location"`
}

// Filters narrows the records participating in an aggregation. Dates are
// zero-padded YYYY-MM-DD strings and both bounds are inclusive.
type Filters struct {
	DateFrom        string   `json:"dateFrom"`
	DateTo          string   `json:"dateTo"`
	SelectedClients []string `json:"selectedClients"`
	ActiveOnly      bool     `json:"activeOnly"`
}

// Dataset is a read-only snapshot of one organization's records.
type Dataset struct {
	Clients     []Client
	TeamMembers []TeamMember
	TimeEntries []TimeEntry
	Revenue     []RevenueEntry
	Budgets     []BudgetEntry
}

// ClientProfitabilityRow summarises one client for the filtered period.
type ClientProfitabilityRow struct {
	ClientName          string   `json:"clientName"`
	Revenue             float64  `json:"revenue"`
	Hours               float64  `json:"hours"`
	Costs               float64  `json:"costs"`
	GrossProfit         float64  `json:"grossProfit"`
	GrossMargin         float64  `json:"grossMargin"`
	EffectiveHourlyRate float64  `json:"effectiveHourlyRate"`
	WIP                 float64  `json:"wip"`
	RealizationRate     float64  `json:"realizationRate"`
	Budget              *float64 `json:"budget,omitempty"`
	BudgetVariance      *float64 `json:"budgetVariance,omitempty"`
	OnshoreHours        float64  `json:"onshoreHours"`
	OffshoreHours       float64  `json:"offshoreHours"`
}

// ServiceProfitabilityRow summarises one service tag. Revenue is allocated,
// not measured.
type ServiceProfitabilityRow struct {
	ServiceName         string  `json:"serviceName"`
	Revenue             float64 `json:"revenue"`
	Hours               float64 `json:"hours"`
	Costs               float64 `json:"costs"`
	GrossProfit         float64 `json:"grossProfit"`
	GrossMargin         float64 `json:"grossMargin"`
	EffectiveHourlyRate float64 `json:"effectiveHourlyRate"`
	WIP                 float64 `json:"wip"`
	ClientCount         int     `json:"clientCount"`
}

// TeamMemberUtilizationRow summarises one active team member.
type TeamMemberUtilizationRow struct {
	MemberName        string  `json:"memberName"`
	Role              string  `json:"role"`
	ClientHours       float64 `json:"clientHours"`
	InternalHours     float64 `json:"internalHours"`
	TotalHours        float64 `json:"totalHours"`
	CapacityHours     float64 `json:"capacityHours"`
	UtilizationPct    float64 `json:"utilizationPct"`
	AttributedRevenue float64 `json:"attributedRevenue"`
	AvgHourlyRate     float64 `json:"avgHourlyRate"`
}
