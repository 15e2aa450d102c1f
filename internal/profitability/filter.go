package profitability

import "strconv"

// InRange reports whether from <= date <= to using byte-wise string order.
// Callers must supply zero-padded YYYY-MM-DD dates.
func InRange(date, from, to string) bool {
	return from <= date && date <= to
}

// MonthsSpanned counts the calendar months touched by [from, to], floored at
// one. Partial months count as whole months.
func MonthsSpanned(from, to string) int {
	yFrom, mFrom, okFrom := yearMonth(from)
	yTo, mTo, okTo := yearMonth(to)
	if !okFrom || !okTo {
		return 1
	}
	months := (yTo-yFrom)*12 + (mTo - mFrom) + 1
	if months < 1 {
		return 1
	}
	return months
}

func yearMonth(date string) (int, int, bool) {
	if len(date) < 7 || date[4] != '-' {
		return 0, 0, false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(date[5:7])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}

// allowedClients returns the canonical names eligible under f.ActiveOnly.
func allowedClients(f Filters, roster []Client) map[string]struct{} {
	allowed := make(map[string]struct{}, len(roster))
	for _, c := range roster {
		if f.ActiveOnly && c.Status != StatusActive {
			continue
		}
		allowed[c.CanonicalName] = struct{}{}
	}
	return allowed
}

func selectedSet(names []string) map[string]struct{} {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
