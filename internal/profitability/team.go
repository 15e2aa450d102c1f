package profitability

import "sort"

// ComputeTeamUtilization reports hours, capacity and attributed revenue for
// every active roster member. Only the date bounds of f apply; client status
// and client selection are ignored. Rows are sorted by utilization descending.
func ComputeTeamUtilization(f Filters, data Dataset) []TeamMemberUtilizationRow {
	months := MonthsSpanned(f.DateFrom, f.DateTo)
	inPeriod := func(_, date string) bool {
		return InRange(date, f.DateFrom, f.DateTo)
	}
	alloc := newAllocation(data.TimeEntries, data.Revenue, inPeriod)

	hours := make(map[string]float64)
	attributed := make(map[string]float64)
	for _, t := range data.TimeEntries {
		if !InRange(t.Date, f.DateFrom, f.DateTo) {
			continue
		}
		hours[t.TeamMember] += t.HoursLogged
		attributed[t.TeamMember] += alloc.share(t)
	}

	rows := make([]TeamMemberUtilizationRow, 0, len(data.TeamMembers))
	seen := make(map[string]struct{}, len(data.TeamMembers))
	for _, m := range data.TeamMembers {
		if m.Status != StatusActive {
			continue
		}
		if _, dup := seen[m.Name]; dup {
			continue
		}
		seen[m.Name] = struct{}{}

		clientHours := hours[m.Name]
		internalHours := 0.0
		capacity := float64(m.CapacityHoursPerMonth * months)
		revenue := attributed[m.Name]
		rows = append(rows, TeamMemberUtilizationRow{
			MemberName:        m.Name,
			Role:              m.Role,
			ClientHours:       clientHours,
			InternalHours:     internalHours,
			TotalHours:        clientHours + internalHours,
			CapacityHours:     capacity,
			UtilizationPct:    ratio(clientHours, capacity),
			AttributedRevenue: revenue,
			AvgHourlyRate:     ratio(revenue, clientHours),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].UtilizationPct != rows[j].UtilizationPct {
			return rows[i].UtilizationPct > rows[j].UtilizationPct
		}
		return rows[i].MemberName < rows[j].MemberName
	})
	return rows
}
