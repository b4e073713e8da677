package extract

import (
	"os"
	"strings"
	"testing"

	"github.com/youjiac/baseball/internal/team"
)

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("../../testdata/fixtures/" + name)
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	return string(data)
}

func TestTeamPage(t *testing.T) {
	html := loadFixture(t, "team_page.html")

	rec, err := TeamPage(strings.NewReader(html), team.CodeHawks)
	if err != nil {
		t.Fatalf("TeamPage failed: %v", err)
	}

	if rec.TeamID != team.CodeHawks {
		t.Errorf("expected team ID %q, got %q", team.CodeHawks, rec.TeamID)
	}
	if rec.Name != "台鋼雄鷹" {
		t.Errorf("expected name 台鋼雄鷹, got %q", rec.Name)
	}
	if rec.HeadCoach != "洪一中" {
		t.Errorf("expected head coach 洪一中, got %q", rec.HeadCoach)
	}
	if rec.HomeVenue != "澄清湖棒球場" {
		t.Errorf("expected home venue 澄清湖棒球場, got %q", rec.HomeVenue)
	}
	if rec.EstablishedYear != "2023" {
		t.Errorf("expected established year 2023, got %q", rec.EstablishedYear)
	}
	if rec.History == "" {
		t.Error("expected history text to be populated")
	}
}

func TestTeamPageRoster(t *testing.T) {
	html := loadFixture(t, "team_page.html")

	rec, err := TeamPage(strings.NewReader(html), team.CodeHawks)
	if err != nil {
		t.Fatalf("TeamPage failed: %v", err)
	}

	counts := map[string]int{
		team.CategoryCoaches:     2,
		team.CategoryPitchers:    2, // the all-empty item is dropped
		team.CategoryCatchers:    1,
		team.CategoryInfielders:  2,
		team.CategoryOutfielders: 1,
	}
	for category, want := range counts {
		if got := len(rec.Roster[category]); got != want {
			t.Errorf("expected %d %s, got %d", want, category, got)
		}
	}

	// Name inside a link is still extracted.
	pitchers := rec.Roster[team.CategoryPitchers]
	if pitchers[0].Name != "伍鐸" {
		t.Errorf("expected linked name 伍鐸, got %q", pitchers[0].Name)
	}

	// Missing number is tolerated, not fatal.
	if pitchers[1].Name != "後勁" || pitchers[1].JerseyNumber != "" {
		t.Errorf("expected 後勁 with empty number, got %+v", pitchers[1])
	}

	// No roster sequence ever contains an all-empty entry.
	for category, players := range rec.Roster {
		for _, p := range players {
			if p.IsEmpty() {
				t.Errorf("category %s contains an all-empty player entry", category)
			}
		}
	}
}

func TestTeamPagePhotoURL(t *testing.T) {
	html := loadFixture(t, "team_page.html")

	rec, err := TeamPage(strings.NewReader(html), team.CodeHawks)
	if err != nil {
		t.Fatalf("TeamPage failed: %v", err)
	}

	coaches := rec.Roster[team.CategoryCoaches]
	if coaches[0].PhotoURL != "https://img.example.com/coach1.jpg" {
		t.Errorf("expected quoted photo URL, got %q", coaches[0].PhotoURL)
	}

	outfielders := rec.Roster[team.CategoryOutfielders]
	if outfielders[0].PhotoURL != "https://img.example.com/of1.jpg" {
		t.Errorf("expected unquoted photo URL, got %q", outfielders[0].PhotoURL)
	}
}

func TestTeamPageMissingBrief(t *testing.T) {
	html := `<html><body><p>maintenance page</p></body></html>`

	rec, err := TeamPage(strings.NewReader(html), team.CodeBrothers)
	if err != nil {
		t.Fatalf("TeamPage failed: %v", err)
	}

	if rec.Name != "" || rec.HeadCoach != "" || rec.HomeVenue != "" {
		t.Errorf("expected empty metadata for missing brief block, got %+v", rec)
	}
	// Derived fields still come from the static table.
	if rec.EstablishedYear != "1990" {
		t.Errorf("expected established year 1990, got %q", rec.EstablishedYear)
	}
	for _, category := range team.Categories {
		if got := len(rec.Roster[category]); got != 0 {
			t.Errorf("expected empty %s roster, got %d entries", category, got)
		}
	}
}

func TestPhotoURLFromStyle(t *testing.T) {
	tests := []struct {
		style string
		want  string
	}{
		{"background-image:url('https://a.example.com/p.jpg')", "https://a.example.com/p.jpg"},
		{`background-image: url("https://a.example.com/p.jpg")`, "https://a.example.com/p.jpg"},
		{"background-image: url(https://a.example.com/p.jpg)", "https://a.example.com/p.jpg"},
		{"color: red", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := photoURLFromStyle(tt.style); got != tt.want {
			t.Errorf("photoURLFromStyle(%q) = %q, want %q", tt.style, got, tt.want)
		}
	}
}
