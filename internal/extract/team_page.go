package extract

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/youjiac/baseball/internal/team"
)

// Roster category → named anchor on the team page.
var categoryAnchors = map[string]string{
	team.CategoryCoaches:     "coach",
	team.CategoryPitchers:    "pitcher",
	team.CategoryCatchers:    "catcher",
	team.CategoryInfielders:  "infielder",
	team.CategoryOutfielders: "outfielder",
}

// TeamPage parses one fetched team page into a TeamRecord. The team code is
// passed explicitly because derived fields (established year) are looked up
// from the static league tables, not scraped. The only error is a document
// that cannot be parsed at all; missing fragments yield empty fields.
func TeamPage(r io.Reader, code team.Code) (*team.TeamRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	rec := &team.TeamRecord{
		TeamID:          code,
		EstablishedYear: team.EstablishedYear(code),
		Roster:          make(team.Roster, len(categoryAnchors)),
	}

	parseBrief(doc, rec)

	for category, anchor := range categoryAnchors {
		rec.Roster[category] = parseCategory(doc, anchor)
	}

	return rec, nil
}

// parseBrief fills team metadata from the TeamBrief block. Labels are matched
// by text fragment rather than position because their ordering varies.
func parseBrief(doc *goquery.Document, rec *team.TeamRecord) {
	brief := doc.Find("div.TeamBrief").First()
	if brief.Length() == 0 {
		return
	}

	rec.Name = strings.TrimSpace(brief.Find("div.name").First().Text())
	rec.History = strings.TrimSpace(brief.Find("div.desc").First().Text())

	brief.Find("dd").Each(func(_ int, item *goquery.Selection) {
		label := strings.TrimSpace(item.Find("div.label").Text())
		desc := strings.TrimSpace(item.Find("div.desc").Text())
		if label == "" || desc == "" {
			return
		}
		switch {
		case strings.Contains(label, "主球場"):
			rec.HomeVenue = desc
		case strings.Contains(label, "總教練"):
			rec.HeadCoach = desc
		}
	})
}

// parseCategory extracts the player entries for one roster category. A
// missing anchor or list container yields an empty sequence.
func parseCategory(doc *goquery.Document, anchor string) []team.PlayerEntry {
	players := make([]team.PlayerEntry, 0)

	list := listAfterAnchor(doc, anchor)
	if list == nil {
		return players
	}

	list.Find("div.item").Each(func(_ int, item *goquery.Selection) {
		entry := parsePlayer(item)
		if !entry.IsEmpty() {
			players = append(players, entry)
		}
	})

	return players
}

// listAfterAnchor locates the player-list container following the named
// anchor. The anchor is sometimes wrapped in a heading, so the parent's
// following siblings are checked as well.
func listAfterAnchor(doc *goquery.Document, name string) *goquery.Selection {
	anchor := doc.Find(fmt.Sprintf("a[name=%s]", name)).First()
	if anchor.Length() == 0 {
		return nil
	}
	if list := anchor.NextAllFiltered("div.TeamPlayersList").First(); list.Length() > 0 {
		return list
	}
	if list := anchor.Parent().NextAllFiltered("div.TeamPlayersList").First(); list.Length() > 0 {
		return list
	}
	return nil
}

// parsePlayer extracts one roster entry. Name, number, position, and photo
// are each tolerated independently.
func parsePlayer(item *goquery.Selection) team.PlayerEntry {
	var entry team.PlayerEntry

	cont := item.Find("div.cont").First()
	if cont.Length() > 0 {
		nameDiv := cont.Find("div.name").First()
		if link := nameDiv.Find("a").First(); link.Length() > 0 {
			entry.Name = strings.TrimSpace(link.Text())
		} else {
			entry.Name = strings.TrimSpace(nameDiv.Text())
		}
		entry.JerseyNumber = strings.TrimSpace(cont.Find("div.number").First().Text())
		entry.Position = strings.TrimSpace(cont.Find("div.pos").First().Text())
	}

	if style, ok := item.Find("div.img span").First().Attr("style"); ok {
		entry.PhotoURL = photoURLFromStyle(style)
	}

	return entry
}

// bgURLPattern matches the URL inside an inline background-image style.
var bgURLPattern = regexp.MustCompile(`url\(\s*['"]?([^'")]+?)['"]?\s*\)`)

// photoURLFromStyle pulls the URL out of an inline background-image style.
func photoURLFromStyle(style string) string {
	if m := bgURLPattern.FindStringSubmatch(style); m != nil {
		return m[1]
	}
	return ""
}
