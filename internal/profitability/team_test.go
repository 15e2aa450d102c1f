package profitability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintaskReza/opzer-dash/internal/fixtures"
	"github.com/fintaskReza/opzer-dash/internal/profitability"
)

func TestTeamUtilizationSingleMonthCapacity(t *testing.T) {
	data := profitability.Dataset{
		TeamMembers: []profitability.TeamMember{{Name: "M", Role: "CFO", Status: profitability.StatusActive, CapacityHoursPerMonth: 140}},
	}

	rows := profitability.ComputeTeamUtilization(june(), data)
	require.Len(t, rows, 1)
	assert.Equal(t, 140.0, rows[0].CapacityHours)
	assert.Zero(t, rows[0].UtilizationPct)
	assert.Zero(t, rows[0].AvgHourlyRate)
	assert.Zero(t, rows[0].InternalHours)
}

func TestTeamUtilizationAttribution(t *testing.T) {
	data := profitability.Dataset{
		Clients: []profitability.Client{
			{CanonicalName: "X", Status: profitability.StatusActive},
			{CanonicalName: "Y", Status: profitability.StatusInactive},
		},
		TeamMembers: []profitability.TeamMember{
			{Name: "A", Role: "Bookkeeper", Status: profitability.StatusActive, CapacityHoursPerMonth: 100},
			{Name: "B", Role: "CFO", Status: profitability.StatusActive, CapacityHoursPerMonth: 50},
			{Name: "Gone", Role: "CFO", Status: profitability.StatusInactive, CapacityHoursPerMonth: 140},
		},
		TimeEntries: []profitability.TimeEntry{
			{ClientName: "X", TeamMember: "A", HoursLogged: 30, Date: "2025-06-02"},
			{ClientName: "X", TeamMember: "B", HoursLogged: 10, Date: "2025-06-03"},
			{ClientName: "Y", TeamMember: "A", HoursLogged: 10, Date: "2025-07-20"},
			{ClientName: "X", TeamMember: "Gone", HoursLogged: 40, Date: "2025-09-01"},
		},
		Revenue: []profitability.RevenueEntry{
			{ClientName: "X", Amount: 4000, Date: "2025-06-30"},
			{ClientName: "Y", Amount: 1000, Date: "2025-07-31"},
		},
	}
	filters := profitability.Filters{DateFrom: "2025-06-01", DateTo: "2025-07-31", ActiveOnly: true}

	rows := profitability.ComputeTeamUtilization(filters, data)
	require.Len(t, rows, 2)

	// A: 40h of 200h capacity; B: 10h of 100h capacity.
	assert.Equal(t, "A", rows[0].MemberName)
	assert.Equal(t, 200.0, rows[0].CapacityHours)
	assert.InDelta(t, 0.2, rows[0].UtilizationPct, tolerance)
	assert.InDelta(t, 3000+1000, rows[0].AttributedRevenue, tolerance)
	assert.InDelta(t, 100, rows[0].AvgHourlyRate, tolerance)
	assert.Equal(t, 40.0, rows[0].TotalHours)

	assert.Equal(t, "B", rows[1].MemberName)
	assert.InDelta(t, 0.1, rows[1].UtilizationPct, tolerance)
	assert.InDelta(t, 1000, rows[1].AttributedRevenue, tolerance)
}

func TestTeamUtilizationIgnoresClientFilters(t *testing.T) {
	data := fixtures.Demo()
	base := fixtures.DemoPeriod()

	narrowed := base
	narrowed.ActiveOnly = false
	narrowed.SelectedClients = []string{"Gotcha!"}

	assert.Equal(t, profitability.ComputeTeamUtilization(base, data), profitability.ComputeTeamUtilization(narrowed, data))
}

func TestTeamUtilizationDemoExcludesInactive(t *testing.T) {
	rows := profitability.ComputeTeamUtilization(fixtures.DemoPeriod(), fixtures.Demo())
	require.Len(t, rows, 7)
	for _, r := range rows {
		assert.NotEqual(t, "Domenick Bartuccio", r.MemberName)
		assert.Equal(t, 140.0*12, r.CapacityHours)
	}
}

func TestCoarseMonthCountInflatesCapacity(t *testing.T) {
	data := profitability.Dataset{
		TeamMembers: []profitability.TeamMember{{Name: "M", Status: profitability.StatusActive, CapacityHoursPerMonth: 140}},
		TimeEntries: []profitability.TimeEntry{{ClientName: "X", TeamMember: "M", HoursLogged: 28, Date: "2025-07-01"}},
	}
	filters := profitability.Filters{DateFrom: "2025-06-15", DateTo: "2025-07-15"}

	rows := profitability.ComputeTeamUtilization(filters, data)
	require.Len(t, rows, 1)
	assert.Equal(t, 280.0, rows[0].CapacityHours)
	assert.InDelta(t, 0.1, rows[0].UtilizationPct, tolerance)
}
