package profitability

import "sort"

type serviceTotals struct {
	revenue float64
	hours   float64
	costs   float64
	wip     float64
	clients map[string]struct{}
}

// ComputeServiceProfitability groups in-range time entries of allowed clients
// by service tag and apportions each client's revenue across its services by
// hours share. SelectedClients does not apply here.
func ComputeServiceProfitability(f Filters, data Dataset) []ServiceProfitabilityRow {
	allowed := allowedClients(f, data.Clients)
	rates := NewRateBook(data.TeamMembers)
	participates := func(client, date string) bool {
		if !InRange(date, f.DateFrom, f.DateTo) {
			return false
		}
		_, ok := allowed[client]
		return ok
	}
	alloc := newAllocation(data.TimeEntries, data.Revenue, participates)

	services := make(map[string]*serviceTotals)
	for _, t := range data.TimeEntries {
		if !participates(t.ClientName, t.Date) {
			continue
		}
		tag := t.Service()
		s, ok := services[tag]
		if !ok {
			s = &serviceTotals{clients: make(map[string]struct{})}
			services[tag] = s
		}
		s.hours += t.HoursLogged
		s.costs += t.HoursLogged * rates.CostRate(t.TeamMember)
		s.wip += t.HoursLogged * rates.BillingRate(t.TeamMember)
		s.revenue += alloc.share(t)
		s.clients[t.ClientName] = struct{}{}
	}

	rows := make([]ServiceProfitabilityRow, 0, len(services))
	for name, s := range services {
		grossProfit := s.revenue - s.costs
		rows = append(rows, ServiceProfitabilityRow{
			ServiceName:         name,
			Revenue:             s.revenue,
			Hours:               s.hours,
			Costs:               s.costs,
			GrossProfit:         grossProfit,
			GrossMargin:         ratio(grossProfit, s.revenue),
			EffectiveHourlyRate: ratio(s.revenue, s.hours),
			WIP:                 s.wip,
			ClientCount:         len(s.clients),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Revenue != rows[j].Revenue {
			return rows[i].Revenue > rows[j].Revenue
		}
		return rows[i].ServiceName < rows[j].ServiceName
	})
	return rows
}
