package profitability

// Summary holds the headline KPIs for a dashboard period.
type Summary struct {
	TotalRevenue           float64 `json:"totalRevenue"`
	TotalCosts             float64 `json:"totalCosts"`
	TotalGrossProfit       float64 `json:"totalGrossProfit"`
	GrossMargin            float64 `json:"grossMargin"`
	TotalHours             float64 `json:"totalHours"`
	AvgEffectiveHourlyRate float64 `json:"avgEffectiveHourlyRate"`
	AvgUtilization         float64 `json:"avgUtilization"`
	ClientCount            int     `json:"clientCount"`
	MemberCount            int     `json:"memberCount"`
}

// Summarize folds client and team rows into headline totals. Average
// utilization is the unweighted mean across members.
func Summarize(clients []ClientProfitabilityRow, team []TeamMemberUtilizationRow) Summary {
	var s Summary
	for _, c := range clients {
		s.TotalRevenue += c.Revenue
		s.TotalCosts += c.Costs
		s.TotalHours += c.Hours
	}
	s.TotalGrossProfit = s.TotalRevenue - s.TotalCosts
	s.GrossMargin = ratio(s.TotalGrossProfit, s.TotalRevenue)
	s.AvgEffectiveHourlyRate = ratio(s.TotalRevenue, s.TotalHours)

	var utilization float64
	for _, m := range team {
		utilization += m.UtilizationPct
	}
	s.AvgUtilization = ratio(utilization, float64(len(team)))
	s.ClientCount = len(clients)
	s.MemberCount = len(team)
	return s
}
