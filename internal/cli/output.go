package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/youjiac/baseball/internal/stats"
	"github.com/youjiac/baseball/internal/team"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// parseFormat validates the --format flag value.
func parseFormat(value string) (OutputFormat, error) {
	switch OutputFormat(value) {
	case FormatText, FormatJSON:
		return OutputFormat(value), nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", value)
	}
}

// writeJSON outputs any result as indented JSON
func writeJSON(w io.Writer, result any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeTeamsText outputs team records as human-readable text
func writeTeamsText(w io.Writer, records []*team.TeamRecord, verbose bool) {
	for i, record := range records {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%s)\n", record.Name, record.TeamID)
		fmt.Fprintf(w, "  成立年份: %s\n", record.EstablishedYear)
		if record.HomeVenue != "" {
			fmt.Fprintf(w, "  主場: %s\n", record.HomeVenue)
		}
		if record.HeadCoach != "" {
			fmt.Fprintf(w, "  總教練: %s\n", record.HeadCoach)
		}
		if record.Standing.Rank > 0 {
			fmt.Fprintf(w, "  戰績: 第%d名 %d勝%d敗 (勝率 %.3f)\n",
				record.Standing.Rank, record.Standing.Wins, record.Standing.Losses, record.Standing.WinRatio)
		}
		if !verbose {
			continue
		}
		fmt.Fprintf(w, "  主場戰績: %d勝%d敗, 客場戰績: %d勝%d敗\n",
			record.VenueSplit.Home.Wins, record.VenueSplit.Home.Losses,
			record.VenueSplit.Away.Wins, record.VenueSplit.Away.Losses)
		for _, category := range team.Categories {
			players := record.Roster[category]
			if len(players) == 0 {
				continue
			}
			fmt.Fprintf(w, "  %s (%d):\n", category, len(players))
			for _, player := range players {
				fmt.Fprintf(w, "    %-4s %s", player.JerseyNumber, player.Name)
				if player.Position != "" {
					fmt.Fprintf(w, " (%s)", player.Position)
				}
				fmt.Fprintln(w)
			}
		}
	}
}

// batterDisplay and pitcherDisplay pick the stat columns shown in text
// output, in order.
var (
	batterDisplay  = []string{stats.FieldAVG, stats.FieldPA, stats.FieldHR, stats.FieldRBI, stats.FieldOPS}
	pitcherDisplay = []string{stats.FieldERA, stats.FieldIP, stats.FieldWins, stats.FieldLoss, stats.FieldWHIP}
)

// writeStatsText outputs stat rows as an aligned table
func writeStatsText(w io.Writer, rows []stats.Row, position string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No rows matched.")
		return
	}

	display := batterDisplay
	if position == stats.PositionPitchers {
		display = pitcherDisplay
	}

	header := fmt.Sprintf("%-3s %-12s %-5s", "#", "球員", "球隊")
	for _, field := range display {
		header += fmt.Sprintf(" %8s", field)
	}
	fmt.Fprintln(w, header)

	for i, row := range rows {
		line := fmt.Sprintf("%-3d %-12s %-5s", i+1, row.Name, row.Team)
		for _, field := range display {
			line += fmt.Sprintf(" %8.3f", row.Stat(field))
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "\nTotal: %d players\n", len(rows))
}
