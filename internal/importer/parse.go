package importer

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/fintaskReza/opzer-dash/internal/entries"
	"github.com/fintaskReza/opzer-dash/internal/profitability"
)

var (
	clientKeys  = []string{"clientName", "Client Name", "client_name"}
	memberKeys  = []string{"teamMember", "Team Member", "team_member"}
	hoursKeys   = []string{"hours", "Time Tracked (hrs)", "hrs"}
	timeDates   = []string{"date", "Date"}
	serviceKeys = []string{"serviceTag", "Service", "service_tag"}
	billKeys    = []string{"billable", "Billable"}
	amountKeys  = []string{"amount", "Amount"}
	revDates    = []string{"date", "month", "Date"}
)

// ParseTimeEntries converts canonical or aliased rows into time entry inputs.
// Unparsable hours become 0. An absent service column yields Uncategorized.
func ParseTimeEntries(rows []map[string]string) []entries.TimeEntryInput {
	out := make([]entries.TimeEntryInput, len(rows))
	for i, r := range rows {
		service, ok := lookup(r, serviceKeys)
		if !ok {
			service = profitability.UncategorizedService
		}
		in := entries.TimeEntryInput{
			ClientName:  field(r, clientKeys),
			TeamMember:  field(r, memberKeys),
			HoursLogged: number(field(r, hoursKeys)),
			Date:        NormalizeDate(field(r, timeDates)),
			ServiceTag:  strings.TrimSpace(service),
		}
		if raw, ok := lookup(r, billKeys); ok {
			if b, err := strconv.ParseBool(strings.TrimSpace(raw)); err == nil {
				in.Billable = &b
			}
		}
		out[i] = in
	}
	return out
}

// ParseRevenueEntries converts canonical or aliased rows into revenue inputs.
// Unparsable amounts become 0.
func ParseRevenueEntries(rows []map[string]string) []entries.RevenueEntryInput {
	out := make([]entries.RevenueEntryInput, len(rows))
	for i, r := range rows {
		out[i] = entries.RevenueEntryInput{
			ClientName: field(r, clientKeys),
			Amount:     number(field(r, amountKeys)),
			Date:       NormalizeDate(field(r, revDates)),
		}
	}
	return out
}

var dateLayouts = []string{"2006-01-02", "1/2/2006", "01/02/2006", "2006/01/02", "Jan 2, 2006", "2 Jan 2006"}

// NormalizeDate rewrites common date spellings as YYYY-MM-DD. A bare month
// (YYYY-MM) maps to its first day. Anything else is returned trimmed and
// unchanged so validation can report it.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if t, err := time.Parse("2006-01", s); err == nil {
		return t.Format("2006-01-02")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// lookup returns the first key present in r, even when its value is blank.
func lookup(r map[string]string, keys []string) (string, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok {
			return v, true
		}
	}
	return "", false
}

func field(r map[string]string, keys []string) string {
	v, _ := lookup(r, keys)
	return strings.TrimSpace(v)
}

var numberCleaner = strings.NewReplacer("$", "", ",", "", " ", "")

func number(raw string) float64 {
	v, err := strconv.ParseFloat(numberCleaner.Replace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
