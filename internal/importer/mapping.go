// Package importer turns uploaded CSV files into time and revenue entries.
package importer

import (
	"fmt"
	"strings"

	"github.com/fintaskReza/opzer-dash/internal/platform/httpx"
)

// Skip marks a canonical field the caller left unmapped.
const Skip = "__none__"

// Kind selects which entry type a file holds.
type Kind string

const (
	KindTime    Kind = "time"
	KindRevenue Kind = "revenue"
)

// ParseKind validates the import kind path segment.
func ParseKind(raw string) (Kind, error) {
	switch k := Kind(raw); k {
	case KindTime, KindRevenue:
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown import type %q", httpx.ErrNotFound, raw)
}

// Mapping maps a canonical field name to the CSV header holding it.
type Mapping map[string]string

// Fields lists the canonical field names accepted for kind.
func Fields(kind Kind) []string {
	if kind == KindRevenue {
		return []string{"clientName", "amount", "date", "month"}
	}
	return []string{"clientName", "teamMember", "date", "hours", "serviceTag", "billable"}
}

var fieldAliases = map[string][]string{
	"clientName": {"client", "clientname", "company", "account", "customer"},
	"teamMember": {"teammember", "staff", "employee", "consultant", "name", "person", "staffmember"},
	"date":       {"date", "entrydate", "invoicedate", "period", "workdate"},
	"hours":      {"hours", "hrs", "time", "duration", "hoursworked", "timetrackedhrs"},
	"serviceTag": {"service", "servicetag", "servicetype", "serviceline", "category", "type"},
	"billable":   {"billable", "isbillable"},
	"amount":     {"amount", "revenue", "invoiceamount", "value", "total"},
	"month":      {"month", "period", "invoicemonth", "date"},
}

// DetectMapping guesses a mapping from headers. Unmatched fields map to Skip.
func DetectMapping(headers []string, kind Kind) Mapping {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normaliseHeader(h)
	}
	out := make(Mapping)
	for _, field := range Fields(kind) {
		out[field] = Skip
		aliases := fieldAliases[field]
		for i, h := range normalized {
			if contains(aliases, h) {
				out[field] = headers[i]
				break
			}
		}
	}
	return out
}

// ApplyColumnMapping re-keys rows from CSV headers to canonical fields.
// Fields mapped to Skip or to an empty header are dropped; a mapped header
// missing from a row yields an empty value.
func ApplyColumnMapping(rows []map[string]string, mapping Mapping) []map[string]string {
	out := make([]map[string]string, len(rows))
	for i, row := range rows {
		mapped := make(map[string]string, len(mapping))
		for field, header := range mapping {
			if header == "" || header == Skip {
				continue
			}
			mapped[field] = row[header]
		}
		out[i] = mapped
	}
	return out
}

func normaliseHeader(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '\t', '_', '-', '(', ')':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
