package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/youjiac/baseball/internal/team"
)

// KnowledgeBase supplies the normalized dataset both answerers read from.
type KnowledgeBase interface {
	Snapshot(ctx context.Context) (*team.Snapshot, error)
}

// SnapshotFunc adapts a plain function to the KnowledgeBase interface.
type SnapshotFunc func(ctx context.Context) (*team.Snapshot, error)

// Snapshot calls f.
func (f SnapshotFunc) Snapshot(ctx context.Context) (*team.Snapshot, error) {
	return f(ctx)
}

// chatCategories are the roster groups included in the chat context, with
// their display titles.
var chatCategories = []struct {
	key   string
	title string
}{
	{team.CategoryPitchers, "投手"},
	{team.CategoryCatchers, "捕手"},
	{team.CategoryInfielders, "內野手"},
	{team.CategoryOutfielders, "外野手"},
}

// FormatSnapshot serializes the dataset into the plain-text context string
// handed to the chat backend. Teams appear in the fixed league order.
func FormatSnapshot(snap *team.Snapshot) string {
	if snap == nil {
		return ""
	}

	blocks := make([]string, 0, len(team.AllCodes))
	for _, code := range team.AllCodes {
		record, ok := snap.Teams[code]
		if ok {
			blocks = append(blocks, formatTeam(record))
		}
	}
	return strings.Join(blocks, "\n\n===\n\n")
}

func formatTeam(record *team.TeamRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "【%s】\n", orUnknown(record.Name, "未知球隊"))
	fmt.Fprintf(&b, "主場: %s\n", orUnknown(record.HomeVenue, "未知"))
	fmt.Fprintf(&b, "總教練: %s\n", orUnknown(record.HeadCoach, "未知"))
	b.WriteString("\n球員名單:")

	for _, category := range chatCategories {
		players := record.Roster[category.key]
		if len(players) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n\n%s:", category.title)
		for _, player := range players {
			fmt.Fprintf(&b, "\n- %s (背號: %s, 位置: %s)",
				orUnknown(player.Name, "未知"),
				orUnknown(player.JerseyNumber, "未知"),
				orUnknown(player.Position, "未知"))
		}
	}
	return b.String()
}

func orUnknown(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
