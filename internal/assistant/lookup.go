package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/youjiac/baseball/internal/logger"
	"github.com/youjiac/baseball/internal/team"
)

// Canned replies. Absence of a match is a normal outcome, so these are
// returned as answers instead of errors.
const (
	greetingReply    = "你好！我是CPBL教練助手，我有中華職棒所有球隊的最新資料。您想了解什麼呢？"
	notReadyReply    = "目前沒有可用的球隊資料，請稍後再試。"
	askSpecificReply = "請提供更具體的問題，例如球隊名稱或球員姓名。"
)

var greetings = []string{"你好", "哈囉", "嗨", "hi", "hello"}

// identityCues mark questions asking who a single player is rather than
// asking for a filtered roster.
var identityCues = []string{
	"是誰", "誰是", "位置", "守備", "背號", "幾號", "號碼",
	"who", "where", "position", "number",
}

// positionKeywords map question keywords to the synonyms looked for in a
// roster entry's free-text position field. Coach titles carry tier prefixes
// on the site, so matching is by fragment.
var positionKeywords = []struct {
	keyword  string
	synonyms []string
}{
	{"投手", []string{"投手"}},
	{"捕手", []string{"捕手"}},
	{"內野", []string{"內野", "一壘", "二壘", "三壘", "游擊"}},
	{"外野", []string{"外野"}},
	{"教練", []string{"教練"}},
}

// Lookup is the rule-based assistant. It extracts team, player, and
// position entities from free text and answers from the dataset alone.
type Lookup struct {
	kb KnowledgeBase
}

// NewLookup creates a rule-based assistant over a knowledge base.
func NewLookup(kb KnowledgeBase) *Lookup {
	return &Lookup{kb: kb}
}

// Answer responds to one free-text question. It never fails: unreadable
// input or an unavailable dataset produce a canned reply.
func (l *Lookup) Answer(ctx context.Context, question string) string {
	question = strings.TrimSpace(question)
	if question == "" {
		return askSpecificReply
	}

	lowered := strings.ToLower(question)
	for _, greeting := range greetings {
		if strings.Contains(lowered, greeting) {
			return greetingReply
		}
	}

	snap, err := l.kb.Snapshot(ctx)
	if err != nil || snap == nil || len(snap.Teams) == 0 {
		if err != nil {
			logger.Warn("lookup dataset unavailable", logger.Fields{"error": err.Error()})
		}
		return notReadyReply
	}

	// Entity precedence: exact player name, then team alias, then partial
	// player name. Longest match wins within each tier.
	if players := matchPlayers(snap, question, false); len(players) > 0 {
		return l.answerPlayers(question, players)
	}
	if code, ok := team.ResolveName(question); ok {
		return l.answerTeam(question, snap.Teams[code])
	}
	if players := matchPlayers(snap, question, true); len(players) > 0 {
		return l.answerPlayers(question, players)
	}
	return askSpecificReply
}

// playerMatch pairs a roster entry with the team it belongs to.
type playerMatch struct {
	team  *team.TeamRecord
	entry team.PlayerEntry
}

// matchPlayers finds roster entries whose name appears in the question.
// With partial set, the surname is dropped before matching, covering the
// common usage of addressing players by given name. Only the longest
// matched name length survives.
func matchPlayers(snap *team.Snapshot, question string, partial bool) []playerMatch {
	var (
		matches []playerMatch
		best    int
	)
	for _, code := range team.AllCodes {
		record, ok := snap.Teams[code]
		if !ok {
			continue
		}
		for _, category := range team.Categories {
			for _, entry := range record.Roster[category] {
				needle := entry.Name
				if partial {
					runes := []rune(needle)
					if len(runes) < 3 {
						continue
					}
					needle = string(runes[1:])
				}
				if needle == "" || !strings.Contains(question, needle) {
					continue
				}
				switch n := len([]rune(needle)); {
				case n > best:
					best = n
					matches = []playerMatch{{team: record, entry: entry}}
				case n == best:
					matches = append(matches, playerMatch{team: record, entry: entry})
				}
			}
		}
	}
	return matches
}

// answerPlayers renders matched players. Exactly one match plus an
// identity cue yields a single direct fact string.
func (l *Lookup) answerPlayers(question string, players []playerMatch) string {
	if len(players) == 1 && hasIdentityCue(question) {
		return playerFact(players[0])
	}

	lines := make([]string, 0, len(players))
	for _, p := range players {
		lines = append(lines, "- "+playerFact(p))
	}
	return "找到以下球員：\n" + strings.Join(lines, "\n")
}

func playerFact(p playerMatch) string {
	return fmt.Sprintf("%s效力於%s，位置 %s，背號 %s。",
		orUnknown(p.entry.Name, "未知"),
		orUnknown(p.team.Name, "未知球隊"),
		orUnknown(p.entry.Position, "未知"),
		orUnknown(p.entry.JerseyNumber, "未知"))
}

func hasIdentityCue(question string) bool {
	lowered := strings.ToLower(question)
	for _, cue := range identityCues {
		if strings.Contains(lowered, cue) {
			return true
		}
	}
	return false
}

// answerTeam renders a team summary, narrowed to one roster group when the
// question names a position.
func (l *Lookup) answerTeam(question string, record *team.TeamRecord) string {
	if record == nil {
		return notReadyReply
	}

	for _, pk := range positionKeywords {
		if !strings.Contains(question, pk.keyword) {
			continue
		}
		players := filterByPosition(record, pk.synonyms)
		if len(players) == 0 {
			return fmt.Sprintf("%s目前沒有符合「%s」的球員資料。", record.Name, pk.keyword)
		}
		lines := make([]string, 0, len(players))
		for _, entry := range players {
			lines = append(lines, fmt.Sprintf("- %s (背號: %s, 位置: %s)",
				orUnknown(entry.Name, "未知"),
				orUnknown(entry.JerseyNumber, "未知"),
				orUnknown(entry.Position, "未知")))
		}
		return fmt.Sprintf("%s的%s名單：\n%s", record.Name, pk.keyword, strings.Join(lines, "\n"))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "【%s】\n", orUnknown(record.Name, "未知球隊"))
	fmt.Fprintf(&b, "主場: %s\n", orUnknown(record.HomeVenue, "未知"))
	fmt.Fprintf(&b, "總教練: %s", orUnknown(record.HeadCoach, "未知"))
	if record.Standing.Rank > 0 {
		fmt.Fprintf(&b, "\n戰績: 第%d名 %d勝%d敗 (勝率 %.3f)",
			record.Standing.Rank, record.Standing.Wins, record.Standing.Losses, record.Standing.WinRatio)
	}
	return b.String()
}

// filterByPosition keeps roster entries whose position text contains any
// of the synonyms.
func filterByPosition(record *team.TeamRecord, synonyms []string) []team.PlayerEntry {
	var players []team.PlayerEntry
	for _, category := range team.Categories {
		for _, entry := range record.Roster[category] {
			for _, syn := range synonyms {
				if strings.Contains(entry.Position, syn) {
					players = append(players, entry)
					break
				}
			}
		}
	}
	return players
}
