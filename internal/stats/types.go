package stats

import (
	"fmt"
	"time"
)

// Position category values accepted by the remote endpoint.
const (
	PositionBatters  = "01"
	PositionPitchers = "02"
)

// Record type values: regular season, championship series, challenge
// series, and preseason.
const (
	RecordRegular      = "A"
	RecordChampionship = "C"
	RecordChallenge    = "E"
	RecordPreseason    = "G"
)

// Active-player filter values.
const (
	ActiveAll     = "01"
	ActiveCurrent = "02"
)

// DefenceAll disables the defensive-position filter.
const DefenceAll = "99"

// Query is the immutable parameter tuple identifying one statistics page.
type Query struct {
	Year        string
	Position    string
	RecordType  string
	Active      string
	DefenceType string
}

// DefaultQuery returns the batter query for a season with no extra filters.
func DefaultQuery(year string) Query {
	return Query{
		Year:        year,
		Position:    PositionBatters,
		RecordType:  RecordRegular,
		Active:      ActiveAll,
		DefenceType: DefenceAll,
	}
}

// key builds the cache key for the exact query tuple.
func (q Query) key() string {
	return fmt.Sprintf("%s|%s|%s|%s|%s", q.Year, q.Position, q.RecordType, q.Active, q.DefenceType)
}

// Row is one player's stat line. Stats holds named numeric fields; count
// fields carry integral values.
type Row struct {
	Name  string             `json:"name"`
	Team  string             `json:"team"`
	Stats map[string]float64 `json:"stats"`
}

// Stat returns a named field, defaulting to 0 when absent.
func (r Row) Stat(field string) float64 {
	return r.Stats[field]
}

// ErrorKind is the closed enumeration of failure classes surfaced to
// callers. Raw transport or parser errors never leak into messages.
type ErrorKind string

const (
	// ErrKindNetwork covers unreachable endpoints, timeouts, and non-2xx
	// responses.
	ErrKindNetwork ErrorKind = "network"
	// ErrKindParse covers reachable but malformed responses.
	ErrKindParse ErrorKind = "parse"
)

// Result is the outcome of one statistics query. Exactly one of Data (on
// success) or ErrorKind+Error (on failure) is meaningful; callers must check
// Success before reading Data.
type Result struct {
	Success   bool      `json:"success"`
	Data      []Row     `json:"data,omitempty"`
	ErrorKind ErrorKind `json:"error_kind,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Batter stat field names.
const (
	FieldAVG   = "avg"
	FieldGames = "games"
	FieldPA    = "pa"
	FieldAB    = "ab"
	FieldRuns  = "runs"
	FieldRBI   = "rbi"
	FieldHits  = "hits"
	FieldHR    = "hr"
	FieldBB    = "bb"
	FieldSO    = "so"
	FieldSB    = "sb"
	FieldOBP   = "obp"
	FieldSLG   = "slg"
	FieldOPS   = "ops"
)

// Pitcher stat field names. FieldSO and FieldBB are shared with batters.
const (
	FieldERA   = "era"
	FieldWins  = "w"
	FieldLoss  = "l"
	FieldSaves = "sv"
	FieldHolds = "hld"
	FieldIP    = "ip"
	FieldWHIP  = "whip"
)
