package extract

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/youjiac/baseball/internal/team"
)

// recordPattern matches dash-separated "W-T-L" records. Wins is the first
// segment and losses the third.
var recordPattern = regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*-\s*(\d+)`)

// ratioPattern matches win ratios like ".538" or "0.538".
var ratioPattern = regexp.MustCompile(`\d?\.\d{3}`)

// Standings parses a standings table into per-team records. Rows whose team
// name cannot be resolved to a known code are skipped; a missing rank
// sub-element defaults to 0. Column counts vary between seasons, so the
// record and ratio are located by shape rather than position.
func Standings(r io.Reader) (map[team.Code]team.Standing, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	standings := make(map[team.Code]team.Standing)

	doc.Find("div.RecordTable table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return // header row
		}

		code, ok := rowTeamCode(row)
		if !ok {
			return
		}

		standing := team.Standing{
			Rank: intOrZero(row.Find("div.rank").First().Text()),
		}

		if wins, losses, ok := firstRecord(cells); ok {
			standing.Wins = wins
			standing.Losses = losses
		}
		standing.WinRatio = firstRatio(cells)

		standings[code] = standing
	})

	return standings, nil
}

// VenueSplits parses a home/away split table. Each matching row carries two
// dash-separated records, home first then away; ratios are recomputed from
// wins and losses when the page omits them.
func VenueSplits(r io.Reader) (map[team.Code]team.VenueSplit, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	splits := make(map[team.Code]team.VenueSplit)

	doc.Find("div.RecordTable table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return
		}

		code, ok := rowTeamCode(row)
		if !ok {
			return
		}

		records := allRecords(cells)
		if len(records) < 2 {
			return
		}

		splits[code] = team.VenueSplit{
			Home: venueRecord(records[0]),
			Away: venueRecord(records[1]),
		}
	})

	return splits, nil
}

// RecentGames parses finished games from a schedule page in document order.
// Items missing a score are skipped: they are unplayed games.
func RecentGames(r io.Reader) ([]team.GameResult, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	games := make([]team.GameResult, 0)

	doc.Find("div.ScheduleGame").Each(func(_ int, item *goquery.Selection) {
		game := team.GameResult{
			Date:     strings.TrimSpace(item.Find("div.date").First().Text()),
			HomeTeam: strings.TrimSpace(item.Find("div.team.home").First().Text()),
			AwayTeam: strings.TrimSpace(item.Find("div.team.away").First().Text()),
			Score:    strings.TrimSpace(item.Find("div.score").First().Text()),
		}
		if game.Score == "" {
			return
		}
		if game.HomeTeam == "" && game.AwayTeam == "" {
			return
		}
		games = append(games, game)
	})

	return games, nil
}

// rowTeamCode resolves the team a table row belongs to from its name cell.
func rowTeamCode(row *goquery.Selection) (team.Code, bool) {
	name := strings.TrimSpace(row.Find("span.team-name").First().Text())
	if name == "" {
		name = strings.TrimSpace(row.Find("a").First().Text())
	}
	return team.ResolveName(name)
}

// firstRecord returns wins and losses from the first W-T-L cell in the row.
func firstRecord(cells *goquery.Selection) (wins, losses int, ok bool) {
	records := allRecords(cells)
	if len(records) == 0 {
		return 0, 0, false
	}
	return records[0][0], records[0][2], true
}

// allRecords collects every W-T-L triple in the row, in cell order.
func allRecords(cells *goquery.Selection) [][3]int {
	var records [][3]int
	cells.Each(func(_ int, cell *goquery.Selection) {
		m := recordPattern.FindStringSubmatch(strings.TrimSpace(cell.Text()))
		if m == nil {
			return
		}
		records = append(records, [3]int{intOrZero(m[1]), intOrZero(m[2]), intOrZero(m[3])})
	})
	return records
}

// firstRatio returns the first win-ratio-shaped value in the row, or 0.
func firstRatio(cells *goquery.Selection) float64 {
	var ratio float64
	cells.EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		m := ratioPattern.FindString(strings.TrimSpace(cell.Text()))
		if m == "" {
			return true
		}
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			ratio = v
			return false
		}
		return true
	})
	return ratio
}

// venueRecord builds a VenueRecord from a W-T-L triple, deriving the ratio
// from decided games.
func venueRecord(rec [3]int) team.VenueRecord {
	vr := team.VenueRecord{Wins: rec[0], Losses: rec[2]}
	if decided := vr.Wins + vr.Losses; decided > 0 {
		vr.WinRatio = float64(vr.Wins) / float64(decided)
	}
	return vr
}

// intOrZero parses an integer, defaulting to 0 for blank or malformed text.
func intOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
