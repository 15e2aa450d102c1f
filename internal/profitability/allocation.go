package profitability

import "math"

// allocation splits each client's revenue across its time entries in
// proportion to hours. Totals are computed once per aggregation call.
type allocation struct {
	hours   map[string]float64
	revenue map[string]float64
}

// newAllocation sums hours and revenue per client over the entries accepted
// by include.
func newAllocation(entries []TimeEntry, revenue []RevenueEntry, include func(client, date string) bool) allocation {
	a := allocation{
		hours:   make(map[string]float64),
		revenue: make(map[string]float64),
	}
	for _, t := range entries {
		if include(t.ClientName, t.Date) {
			a.hours[t.ClientName] += t.HoursLogged
		}
	}
	for _, r := range revenue {
		if include(r.ClientName, r.Date) {
			a.revenue[r.ClientName] += r.Amount
		}
	}
	return a
}

// share is the revenue attributed to one time entry.
func (a allocation) share(t TimeEntry) float64 {
	total := a.hours[t.ClientName]
	if total <= 0 {
		return 0
	}
	return (t.HoursLogged / total) * a.revenue[t.ClientName]
}

// ratio divides n by d, returning 0 unless d is positive and the result finite.
func ratio(n, d float64) float64 {
	if d <= 0 {
		return 0
	}
	v := n / d
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
