package dashboard

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/fintaskReza/opzer-dash/internal/platform/httpx"
	"github.com/fintaskReza/opzer-dash/internal/profitability"
)

// Default reporting window when the query omits one.
const (
	DefaultFrom = "2025-01-01"
	DefaultTo   = "2025-12-31"
)

// Report names one dashboard view.
type Report string

const (
	ReportClients  Report = "client-profitability"
	ReportServices Report = "service-profitability"
	ReportTeam     Report = "team-utilization"
	ReportSummary  Report = "summary"
)

// ParseReport validates a report path segment.
func ParseReport(raw string) (Report, error) {
	switch r := Report(raw); r {
	case ReportClients, ReportServices, ReportTeam, ReportSummary:
		return r, nil
	}
	return "", fmt.Errorf("%w: unknown report %q", httpx.ErrNotFound, raw)
}

// DefaultFilters is the window used when nothing is requested.
func DefaultFilters() profitability.Filters {
	return profitability.Filters{DateFrom: DefaultFrom, DateTo: DefaultTo, ActiveOnly: true}
}

// ParseFilters reads from, to, clients and activeOnly from a query string.
// Only the literal "false" disables activeOnly.
func ParseFilters(q url.Values) profitability.Filters {
	f := DefaultFilters()
	if v := strings.TrimSpace(q.Get("from")); v != "" {
		f.DateFrom = v
	}
	if v := strings.TrimSpace(q.Get("to")); v != "" {
		f.DateTo = v
	}
	if raw := q.Get("clients"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				f.SelectedClients = append(f.SelectedClients, name)
			}
		}
	}
	f.ActiveOnly = q.Get("activeOnly") != "false"
	return f
}

// cacheKey identifies one cached result. Client order does not matter.
func cacheKey(orgID int64, report Report, f profitability.Filters) string {
	clients := slices.Clone(f.SelectedClients)
	slices.Sort(clients)
	clients = slices.Compact(clients)

	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%t|%s", f.DateFrom, f.DateTo, f.ActiveOnly, strings.Join(clients, "\x1f"))))
	return fmt.Sprintf("%s%s:%s", orgPrefix(orgID), report, hex.EncodeToString(sum[:8]))
}

func orgPrefix(orgID int64) string {
	return fmt.Sprintf("org:%d:", orgID)
}

func periodLabel(f profitability.Filters) string {
	return f.DateFrom + " to " + f.DateTo
}
