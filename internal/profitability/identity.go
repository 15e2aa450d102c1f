package profitability

import "strings"

// Normalizer maps billing-system client names onto canonical client names.
type Normalizer struct {
	canonical  map[string]string
	collisions []string
}

// NewNormalizer indexes the roster by external name. When several roster
// entries share an external name the first one registered wins.
func NewNormalizer(roster []Client) *Normalizer {
	n := &Normalizer{canonical: make(map[string]string, len(roster))}
	flagged := make(map[string]struct{})
	for _, c := range roster {
		key := normalizeKey(c.ExternalName)
		if key == "" {
			continue
		}
		if existing, ok := n.canonical[key]; ok {
			if _, seen := flagged[key]; !seen && existing != c.CanonicalName {
				flagged[key] = struct{}{}
				n.collisions = append(n.collisions, strings.TrimSpace(c.ExternalName))
			}
			continue
		}
		n.canonical[key] = c.CanonicalName
	}
	return n
}

// Normalize returns the canonical name for an external name, or the input
// unchanged when the roster has no match.
func (n *Normalizer) Normalize(name string) string {
	if n == nil {
		return name
	}
	if canonical, ok := n.canonical[normalizeKey(name)]; ok {
		return canonical
	}
	return name
}

// NormalizeRevenue returns a copy of entries with client names resolved.
func (n *Normalizer) NormalizeRevenue(entries []RevenueEntry) []RevenueEntry {
	out := make([]RevenueEntry, len(entries))
	for i, e := range entries {
		e.ClientName = n.Normalize(e.ClientName)
		out[i] = e
	}
	return out
}

// Collisions lists external names shared by more than one canonical client,
// in roster order. Revenue for these names resolves to the first client only.
func (n *Normalizer) Collisions() []string {
	if n == nil {
		return nil
	}
	return append([]string(nil), n.collisions...)
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
