package extract

import (
	"strings"
	"testing"

	"github.com/youjiac/baseball/internal/team"
)

func TestStandings(t *testing.T) {
	html := loadFixture(t, "standings.html")

	standings, err := Standings(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Standings failed: %v", err)
	}

	// The unknown-team row is dropped.
	if len(standings) != 3 {
		t.Fatalf("expected 3 standings, got %d", len(standings))
	}

	brothers, ok := standings[team.CodeBrothers]
	if !ok {
		t.Fatal("expected standings entry for ACN")
	}
	if brothers.Rank != 1 || brothers.Wins != 67 || brothers.Losses != 51 {
		t.Errorf("unexpected ACN standing: %+v", brothers)
	}
	if brothers.WinRatio != 0.568 {
		t.Errorf("expected win ratio 0.568, got %v", brothers.WinRatio)
	}

	// Missing rank sub-element defaults to 0; short rows are still parsed.
	hawks, ok := standings[team.CodeHawks]
	if !ok {
		t.Fatal("expected standings entry for AKP")
	}
	if hawks.Rank != 0 {
		t.Errorf("expected default rank 0, got %d", hawks.Rank)
	}
	if hawks.Wins != 58 || hawks.Losses != 61 {
		t.Errorf("unexpected AKP record: %+v", hawks)
	}
}

func TestStandingsEmptyDocument(t *testing.T) {
	standings, err := Standings(strings.NewReader("<html><body></body></html>"))
	if err != nil {
		t.Fatalf("Standings failed: %v", err)
	}
	if len(standings) != 0 {
		t.Errorf("expected no standings, got %d", len(standings))
	}
}

func TestVenueSplits(t *testing.T) {
	html := loadFixture(t, "venue_splits.html")

	splits, err := VenueSplits(strings.NewReader(html))
	if err != nil {
		t.Fatalf("VenueSplits failed: %v", err)
	}

	// The one-record row cannot be split into home and away, so it is dropped.
	if len(splits) != 2 {
		t.Fatalf("expected 2 splits, got %d", len(splits))
	}

	monkeys, ok := splits[team.CodeMonkeys]
	if !ok {
		t.Fatal("expected venue split for AJL")
	}
	if monkeys.Home.Wins != 35 || monkeys.Home.Losses != 24 {
		t.Errorf("unexpected home record: %+v", monkeys.Home)
	}
	if monkeys.Away.Wins != 27 || monkeys.Away.Losses != 31 {
		t.Errorf("unexpected away record: %+v", monkeys.Away)
	}

	wantHome := 35.0 / 59.0
	if diff := monkeys.Home.WinRatio - wantHome; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected home ratio %v, got %v", wantHome, monkeys.Home.WinRatio)
	}
}

func TestRecentGames(t *testing.T) {
	html := loadFixture(t, "schedule.html")

	games, err := RecentGames(strings.NewReader(html))
	if err != nil {
		t.Fatalf("RecentGames failed: %v", err)
	}

	// The unplayed game (empty score) is skipped.
	if len(games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(games))
	}

	first := games[0]
	if first.Date != "2024-09-10" || first.HomeTeam != "中信兄弟" || first.AwayTeam != "統一7-ELEVEn獅" || first.Score != "3:5" {
		t.Errorf("unexpected first game: %+v", first)
	}
}
