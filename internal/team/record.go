package team

import (
	"strconv"
	"strings"
	"time"
)

// Roster category keys. The five categories are fixed by the team pages.
const (
	CategoryCoaches     = "coaches"
	CategoryPitchers    = "pitchers"
	CategoryCatchers    = "catchers"
	CategoryInfielders  = "infielders"
	CategoryOutfielders = "outfielders"
)

// Categories lists the roster categories in display order.
var Categories = []string{
	CategoryCoaches,
	CategoryPitchers,
	CategoryCatchers,
	CategoryInfielders,
	CategoryOutfielders,
}

// PlayerEntry is one roster line. JerseyNumber is free text: the site uses
// non-numeric and blank numbers for some coaches.
type PlayerEntry struct {
	Name         string `json:"name"`
	JerseyNumber string `json:"number"`
	Position     string `json:"position"`
	PhotoURL     string `json:"photo_url,omitempty"`
}

// IsEmpty reports whether every field of the entry is blank. Such entries
// are never stored in a roster.
func (p PlayerEntry) IsEmpty() bool {
	return p.Name == "" && p.JerseyNumber == "" && p.Position == "" && p.PhotoURL == ""
}

// Roster maps a category to its ordered player entries.
type Roster map[string][]PlayerEntry

// Standing is a team's league position and season record.
type Standing struct {
	Rank     int     `json:"rank"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	WinRatio float64 `json:"win_ratio"`
}

// VenueRecord is a wins/losses/ratio triple for one venue side.
type VenueRecord struct {
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	WinRatio float64 `json:"win_ratio"`
}

// VenueSplit separates a team's record by home and away games.
type VenueSplit struct {
	Home VenueRecord `json:"home"`
	Away VenueRecord `json:"away"`
}

// GameResult is one finished game.
type GameResult struct {
	Date     string `json:"date"`
	HomeTeam string `json:"home"`
	AwayTeam string `json:"away"`
	Score    string `json:"score"`
}

// TeamRecord is the full normalized record for one franchise.
type TeamRecord struct {
	TeamID          Code         `json:"team_id"`
	Name            string       `json:"name"`
	History         string       `json:"history,omitempty"`
	HomeVenue       string       `json:"home_venue"`
	HeadCoach       string       `json:"head_coach"`
	EstablishedYear string       `json:"established_year"`
	Roster          Roster       `json:"roster"`
	Standing        Standing     `json:"standing"`
	VenueSplit      VenueSplit   `json:"venue_split"`
	RecentTrend     []GameResult `json:"recent_trend"` // newest first, capped at MaxRecentGames
}

// MaxRecentGames caps the recent-trend and head-to-head sequences.
const MaxRecentGames = 10

// Snapshot is the persisted dataset for all teams plus head-to-head history.
type Snapshot struct {
	Teams      map[Code]*TeamRecord    `json:"teams"`
	HeadToHead map[string][]GameResult `json:"head_to_head"`
	CapturedAt time.Time               `json:"captured_at"`
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Teams:      make(map[Code]*TeamRecord),
		HeadToHead: make(map[string][]GameResult),
	}
}

// PairKey builds the unordered head-to-head key for two team codes, so that
// (A,B) and (B,A) address the same entry.
func PairKey(a, b Code) string {
	if string(a) < string(b) {
		return string(a) + "_" + string(b)
	}
	return string(b) + "_" + string(a)
}

// AddHeadToHead records a game under the unordered pair key for its two
// teams, newest first, keeping at most MaxRecentGames entries. Games whose
// teams cannot be resolved to known codes are dropped.
func (s *Snapshot) AddHeadToHead(g GameResult) {
	home, okHome := ResolveName(g.HomeTeam)
	away, okAway := ResolveName(g.AwayTeam)
	if !okHome || !okAway || home == away {
		return
	}
	key := PairKey(home, away)
	games := append([]GameResult{g}, s.HeadToHead[key]...)
	if len(games) > MaxRecentGames {
		games = games[:MaxRecentGames]
	}
	s.HeadToHead[key] = games
}

// WonBy reports whether the named team won the game. ok is false when the
// team did not play, the score does not parse, or the game tied.
func (g GameResult) WonBy(code Code) (won, ok bool) {
	parts := strings.SplitN(g.Score, ":", 2)
	if len(parts) != 2 {
		return false, false
	}
	homeRuns, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return false, false
	}
	awayRuns, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return false, false
	}
	if homeRuns == awayRuns {
		return false, false
	}

	home, _ := ResolveName(g.HomeTeam)
	away, _ := ResolveName(g.AwayTeam)
	switch code {
	case home:
		return homeRuns > awayRuns, true
	case away:
		return awayRuns > homeRuns, true
	}
	return false, false
}

// ApplyDerived recomputes the static derived fields on every team record
// from the league tables. Persisted copies of these fields are not trusted.
func (s *Snapshot) ApplyDerived() {
	for code, rec := range s.Teams {
		if rec == nil {
			continue
		}
		rec.EstablishedYear = EstablishedYear(code)
		if rec.Name == "" {
			rec.Name = CanonicalName(code)
		}
	}
}
