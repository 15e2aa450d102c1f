// Package fixtures provides the demo firm dataset used by tests, the seed
// script and demo mode. Production reads never consult it.
package fixtures

import "github.com/fintaskReza/opzer-dash/internal/profitability"

const (
	// DemoOrgName is the organization created for the demo dataset.
	DemoOrgName = "Opzer Demo Firm"
	// DemoOrgSlug is the unique slug of the demo organization.
	DemoOrgSlug = "opzer-demo"
	// DemoAdminEmail is the login created alongside the demo organization.
	DemoAdminEmail = "admin@opzer.local"
	// DemoAdminName is the display name of the demo admin.
	DemoAdminName = "Demo Admin"
)

// Demo returns a fresh copy of the demo dataset with revenue already
// normalized onto canonical client names.
func Demo() profitability.Dataset {
	roster := copyClients()
	return profitability.Dataset{
		Clients:     roster,
		TeamMembers: append([]profitability.TeamMember(nil), teamMembers...),
		TimeEntries: append([]profitability.TimeEntry(nil), timeEntries...),
		Revenue:     profitability.NewNormalizer(roster).NormalizeRevenue(rawRevenue),
		Budgets:     append([]profitability.BudgetEntry(nil), budgets...),
	}
}

// RawRevenue returns the demo revenue with billing-system client names.
func RawRevenue() []profitability.RevenueEntry {
	return append([]profitability.RevenueEntry(nil), rawRevenue...)
}

// DemoPeriod is the default reporting window for the demo dataset.
func DemoPeriod() profitability.Filters {
	return profitability.Filters{DateFrom: "2025-01-01", DateTo: "2025-12-31", ActiveOnly: true}
}

func copyClients() []profitability.Client {
	return append([]profitability.Client(nil), clients...)
}
