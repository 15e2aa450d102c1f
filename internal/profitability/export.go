package profitability

import (
	"strconv"
)

// ExportClientRows renders client rows as CSV records with a header.
func ExportClientRows(rows []ClientProfitabilityRow) [][]string {
	out := [][]string{{
		"Client", "Revenue", "Hours", "Costs", "Gross Profit", "Gross Margin",
		"Effective Hourly Rate", "WIP", "Realization Rate", "Budget", "Budget Variance",
		"Onshore Hours", "Offshore Hours",
	}}
	for _, r := range rows {
		out = append(out, []string{
			r.ClientName,
			money(r.Revenue),
			money(r.Hours),
			money(r.Costs),
			money(r.GrossProfit),
			pct(r.GrossMargin),
			money(r.EffectiveHourlyRate),
			money(r.WIP),
			pct(r.RealizationRate),
			optional(r.Budget),
			optional(r.BudgetVariance),
			money(r.OnshoreHours),
			money(r.OffshoreHours),
		})
	}
	return out
}

// ExportServiceRows renders service rows as CSV records with a header.
func ExportServiceRows(rows []ServiceProfitabilityRow) [][]string {
	out := [][]string{{
		"Service", "Revenue (allocated)", "Hours", "Costs", "Gross Profit", "Gross Margin",
		"Effective Hourly Rate", "WIP", "Clients",
	}}
	for _, r := range rows {
		out = append(out, []string{
			r.ServiceName,
			money(r.Revenue),
			money(r.Hours),
			money(r.Costs),
			money(r.GrossProfit),
			pct(r.GrossMargin),
			money(r.EffectiveHourlyRate),
			money(r.WIP),
			strconv.Itoa(r.ClientCount),
		})
	}
	return out
}

// ExportTeamRows renders utilization rows as CSV records with a header.
func ExportTeamRows(rows []TeamMemberUtilizationRow) [][]string {
	out := [][]string{{
		"Member", "Role", "Client Hours", "Internal Hours", "Total Hours", "Capacity Hours",
		"Utilization", "Attributed Revenue", "Avg Hourly Rate",
	}}
	for _, r := range rows {
		out = append(out, []string{
			r.MemberName,
			r.Role,
			money(r.ClientHours),
			money(r.InternalHours),
			money(r.TotalHours),
			money(r.CapacityHours),
			pct(r.UtilizationPct),
			money(r.AttributedRevenue),
			money(r.AvgHourlyRate),
		})
	}
	return out
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// pct keeps ratios as fractions with four decimals.
func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func optional(v *float64) string {
	if v == nil {
		return ""
	}
	return money(*v)
}
