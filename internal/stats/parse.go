package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/youjiac/baseball/internal/logger"
)

// column declares where a stat field lives and how to interpret it.
type column struct {
	index   int
	field   string
	integer bool
}

// batterColumns maps table cells to batter stat fields.
var batterColumns = []column{
	{1, FieldAVG, false},
	{2, FieldGames, true},
	{3, FieldPA, true},
	{4, FieldAB, true},
	{5, FieldRuns, true},
	{6, FieldRBI, true},
	{7, FieldHits, true},
	{11, FieldHR, true},
	{14, FieldBB, true},
	{17, FieldSO, true},
	{21, FieldSB, true},
	{23, FieldOBP, false},
	{24, FieldSLG, false},
	{25, FieldOPS, false},
}

// pitcherColumns maps table cells to pitcher stat fields.
var pitcherColumns = []column{
	{1, FieldERA, false},
	{2, FieldGames, true},
	{3, FieldWins, true},
	{4, FieldLoss, true},
	{5, FieldSaves, true},
	{6, FieldHolds, true},
	{7, FieldIP, false},
	{8, FieldSO, true},
	{9, FieldBB, true},
	{10, FieldWHIP, false},
}

// parseTable extracts player rows from a statistics response fragment. Rows
// without a recognizable player-name element are skipped; a blank numeric
// cell defaults to 0; a malformed numeric cell drops only that row.
func parseTable(r io.Reader, position string) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	columns := batterColumns
	if position == PositionPitchers {
		columns = pitcherColumns
	}

	rows := make([]Row, 0)

	doc.Find("div.RecordTable table tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() == 0 {
			return // header row
		}

		player := cells.Eq(0).Find("div.player-w-logo").First()
		if player.Length() == 0 {
			return // summary or spacer row
		}
		name := strings.TrimSpace(player.Find("span.name").First().Text())
		teamName := strings.TrimSpace(player.Find("span.team_logo").First().Text())
		if name == "" {
			return
		}

		row := Row{
			Name:  name,
			Team:  teamName,
			Stats: make(map[string]float64, len(columns)),
		}

		for _, col := range columns {
			if col.index >= cells.Length() {
				row.Stats[col.field] = 0
				continue
			}
			text := strings.TrimSpace(cells.Eq(col.index).Text())
			if text == "" || text == "-" {
				row.Stats[col.field] = 0
				continue
			}
			value, err := strconv.ParseFloat(text, 64)
			if err != nil {
				logger.Debug("dropping stat row with malformed cell", logger.Fields{
					"player": name,
					"field":  col.field,
					"cell":   text,
				})
				return
			}
			if col.integer {
				value = float64(int64(value))
			}
			row.Stats[col.field] = value
		}

		rows = append(rows, row)
	})

	return rows, nil
}
