package profitability

import "sort"

type clientTotals struct {
	revenue  float64
	hours    float64
	costs    float64
	wip      float64
	onshore  float64
	offshore float64
}

// ComputeClientProfitability aggregates revenue, hours and cost per client
// and derives margin, effective hourly rate and realization. Rows are sorted
// by revenue descending, then by client name.
func ComputeClientProfitability(f Filters, data Dataset) []ClientProfitabilityRow {
	allowed := allowedClients(f, data.Clients)
	rates := NewRateBook(data.TeamMembers)

	totals := make(map[string]*clientTotals)
	bucket := func(name string) *clientTotals {
		t, ok := totals[name]
		if !ok {
			t = &clientTotals{}
			totals[name] = t
		}
		return t
	}

	for _, r := range data.Revenue {
		if !InRange(r.Date, f.DateFrom, f.DateTo) {
			continue
		}
		if _, ok := allowed[r.ClientName]; !ok {
			continue
		}
		bucket(r.ClientName).revenue += r.Amount
	}

	for _, t := range data.TimeEntries {
		if !InRange(t.Date, f.DateFrom, f.DateTo) {
			continue
		}
		if _, ok := allowed[t.ClientName]; !ok {
			continue
		}
		b := bucket(t.ClientName)
		b.hours += t.HoursLogged
		b.costs += t.HoursLogged * rates.CostRate(t.TeamMember)
		b.wip += t.HoursLogged * rates.BillingRate(t.TeamMember)
		if rates.Location(t.TeamMember) == LocationOffshore {
			b.offshore += t.HoursLogged
		} else {
			b.onshore += t.HoursLogged
		}
	}

	budgets := make(map[string]float64, len(data.Budgets))
	for _, b := range data.Budgets {
		budgets[b.ClientName] = b.Budget
	}

	selected := selectedSet(f.SelectedClients)
	rows := make([]ClientProfitabilityRow, 0, len(totals))
	for name, t := range totals {
		if selected != nil {
			if _, ok := selected[name]; !ok {
				continue
			}
		}
		row := ClientProfitabilityRow{
			ClientName:          name,
			Revenue:             t.revenue,
			Hours:               t.hours,
			Costs:               t.costs,
			GrossProfit:         t.revenue - t.costs,
			EffectiveHourlyRate: ratio(t.revenue, t.hours),
			WIP:                 t.wip,
			RealizationRate:     ratio(t.revenue, t.wip),
			OnshoreHours:        t.onshore,
			OffshoreHours:       t.offshore,
		}
		row.GrossMargin = ratio(row.GrossProfit, t.revenue)
		if budget, ok := budgets[name]; ok {
			variance := t.revenue - budget
			row.Budget = &budget
			row.BudgetVariance = &variance
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Revenue != rows[j].Revenue {
			return rows[i].Revenue > rows[j].Revenue
		}
		return rows[i].ClientName < rows[j].ClientName
	})
	return rows
}
