package profitability

// RateBook resolves team member rates by exact name. Unknown names resolve
// to zero rates and the onshore location.
type RateBook struct {
	members map[string]TeamMember
}

// NewRateBook indexes the roster once. The first entry for a name wins.
func NewRateBook(roster []TeamMember) RateBook {
	members := make(map[string]TeamMember, len(roster))
	for _, m := range roster {
		if _, ok := members[m.Name]; ok {
			continue
		}
		members[m.Name] = m
	}
	return RateBook{members: members}
}

// CostRate returns the hourly cost of a member.
func (b RateBook) CostRate(name string) float64 {
	return b.members[name].CostRate
}

// BillingRate returns the hourly standard billing rate of a member.
func (b RateBook) BillingRate(name string) float64 {
	return b.members[name].BillingRate
}

// Location returns where a member works.
func (b RateBook) Location(name string) Location {
	if m, ok := b.members[name]; ok && m.Location == LocationOffshore {
		return LocationOffshore
	}
	return LocationOnshore
}
