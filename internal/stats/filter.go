package stats

import (
	"sort"
	"strings"
)

// Filter narrows stat rows by conjunctive criteria: every active criterion
// must hold for a row to pass.
type Filter struct {
	// MinPA keeps batters with at least this many plate appearances.
	MinPA float64
	// MinIP keeps pitchers with at least this many innings pitched.
	MinIP float64
	// Teams keeps rows whose team code is in the set. Empty means all teams.
	Teams []string
}

// IsEmpty reports whether the filter has no active criteria.
func (f *Filter) IsEmpty() bool {
	return f.MinPA == 0 && f.MinIP == 0 && len(f.Teams) == 0
}

// Matches reports whether a row passes every active criterion.
func (f *Filter) Matches(row Row) bool {
	if f.MinPA > 0 && row.Stat(FieldPA) < f.MinPA {
		return false
	}
	if f.MinIP > 0 && row.Stat(FieldIP) < f.MinIP {
		return false
	}
	if len(f.Teams) > 0 {
		matched := false
		for _, t := range f.Teams {
			if strings.EqualFold(strings.TrimSpace(t), strings.TrimSpace(row.Team)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// Apply returns the rows matching the filter. An empty filter returns the
// input unchanged.
func (f *Filter) Apply(rows []Row) []Row {
	if f.IsEmpty() {
		return rows
	}
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if f.Matches(row) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// ascendingFields are the stats where a lower value is better, so the
// default sort direction flips to ascending.
var ascendingFields = map[string]bool{
	FieldERA:  true,
	FieldWHIP: true,
}

// SortBy orders rows by one stat field in place: descending by default,
// ascending for earned-run average and WHIP. Ties keep their input order.
func SortBy(rows []Row, field string) {
	ascending := ascendingFields[field]
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Stat(field), rows[j].Stat(field)
		if ascending {
			return a < b
		}
		return a > b
	})
}
