package stats

import (
	"sort"
	"testing"
)

func batterRow(name, team string, pa, avg float64) Row {
	return Row{Name: name, Team: team, Stats: map[string]float64{FieldPA: pa, FieldAVG: avg}}
}

func pitcherRow(name, team string, ip, era, whip float64) Row {
	return Row{Name: name, Team: team, Stats: map[string]float64{FieldIP: ip, FieldERA: era, FieldWHIP: whip}}
}

func TestFilterMatches(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		row    Row
		want   bool
	}{
		{
			name:   "empty filter passes everything",
			filter: Filter{},
			row:    batterRow("林立", "AJL", 10, 0.321),
			want:   true,
		},
		{
			name:   "min pa below threshold",
			filter: Filter{MinPA: 100},
			row:    batterRow("代打", "ACN", 62, 0.400),
			want:   false,
		},
		{
			name:   "min pa at threshold",
			filter: Filter{MinPA: 100},
			row:    batterRow("先發", "ACN", 100, 0.280),
			want:   true,
		},
		{
			name:   "min ip below threshold",
			filter: Filter{MinIP: 20},
			row:    pitcherRow("後援", "ADD", 12.1, 1.80, 0.95),
			want:   false,
		},
		{
			name:   "team set excludes other teams",
			filter: Filter{Teams: []string{"AKP", "AAA"}},
			row:    batterRow("林立", "AJL", 455, 0.321),
			want:   false,
		},
		{
			name:   "team set is case insensitive",
			filter: Filter{Teams: []string{"akp"}},
			row:    batterRow("王柏融", "AKP", 402, 0.334),
			want:   true,
		},
		{
			name:   "criteria combine conjunctively",
			filter: Filter{MinPA: 300, Teams: []string{"AKP"}},
			row:    batterRow("吳念庭", "AKP", 250, 0.301),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(tt.row); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterApplyKeepsOrder(t *testing.T) {
	rows := []Row{
		batterRow("一", "ACN", 400, 0.300),
		batterRow("二", "AJL", 50, 0.250),
		batterRow("三", "ACN", 350, 0.280),
	}
	filter := Filter{MinPA: 100}

	kept := filter.Apply(rows)
	if len(kept) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(kept))
	}
	if kept[0].Name != "一" || kept[1].Name != "三" {
		t.Errorf("filtered rows out of order: %s, %s", kept[0].Name, kept[1].Name)
	}
}

func TestSortByDescendingByDefault(t *testing.T) {
	rows := []Row{
		batterRow("低", "ACN", 100, 0.250),
		batterRow("高", "AJL", 100, 0.340),
		batterRow("中", "ADD", 100, 0.300),
	}

	SortBy(rows, FieldAVG)

	if !sort.SliceIsSorted(rows, func(i, j int) bool {
		return rows[i].Stat(FieldAVG) > rows[j].Stat(FieldAVG)
	}) {
		t.Errorf("expected descending order by avg, got %v", rows)
	}
	if rows[0].Name != "高" {
		t.Errorf("expected the leader first, got %s", rows[0].Name)
	}
}

func TestSortByAscendingForRateAgainstStats(t *testing.T) {
	for _, field := range []string{FieldERA, FieldWHIP} {
		rows := []Row{
			pitcherRow("中", "ACN", 100, 3.20, 1.20),
			pitcherRow("佳", "AJL", 100, 2.10, 0.98),
			pitcherRow("差", "ADD", 100, 5.40, 1.65),
		}

		SortBy(rows, field)

		if !sort.SliceIsSorted(rows, func(i, j int) bool {
			return rows[i].Stat(field) < rows[j].Stat(field)
		}) {
			t.Errorf("expected ascending order by %s, got %v", field, rows)
		}
		if rows[0].Name != "佳" {
			t.Errorf("sorting by %s: expected the best pitcher first, got %s", field, rows[0].Name)
		}
	}
}

func TestSortByIsStableOnTies(t *testing.T) {
	rows := []Row{
		batterRow("甲", "ACN", 100, 0.300),
		batterRow("乙", "AJL", 100, 0.300),
		batterRow("丙", "ADD", 100, 0.300),
	}

	SortBy(rows, FieldAVG)

	if rows[0].Name != "甲" || rows[1].Name != "乙" || rows[2].Name != "丙" {
		t.Errorf("tied rows reordered: %v", rows)
	}
}
