package team

import "strings"

// Code identifies one of the six CPBL franchises.
type Code string

const (
	CodeBrothers Code = "ACN" // 中信兄弟
	CodeLions    Code = "ADD" // 統一7-ELEVEn獅
	CodeMonkeys  Code = "AJL" // 樂天桃猿
	CodeGuardian Code = "AEO" // 富邦悍將
	CodeDragons  Code = "AAA" // 味全龍
	CodeHawks    Code = "AKP" // 台鋼雄鷹
)

// AllCodes lists every known team code in the fixed fetch order.
// The order is deterministic so refresh cycles and tests are reproducible.
var AllCodes = []Code{
	CodeBrothers,
	CodeLions,
	CodeMonkeys,
	CodeGuardian,
	CodeDragons,
	CodeHawks,
}

// UnknownYear is returned by EstablishedYear for codes outside the league.
const UnknownYear = "N/A"

// establishedYears maps team codes to founding years. These values are a
// static league fact and are never taken from scraped content.
var establishedYears = map[Code]string{
	CodeBrothers: "1990",
	CodeLions:    "1990",
	CodeMonkeys:  "2003",
	CodeGuardian: "1993",
	CodeDragons:  "1990",
	CodeHawks:    "2023",
}

// canonicalNames maps team codes to the current official team names.
var canonicalNames = map[Code]string{
	CodeBrothers: "中信兄弟",
	CodeLions:    "統一7-ELEVEn獅",
	CodeMonkeys:  "樂天桃猿",
	CodeGuardian: "富邦悍將",
	CodeDragons:  "味全龍",
	CodeHawks:    "台鋼雄鷹",
}

// aliases maps name fragments seen on the site (and in user questions) to
// team codes. Checked by substring, longest alias first.
var aliases = map[string]Code{
	"中信兄弟":        CodeBrothers,
	"兄弟":          CodeBrothers,
	"統一7-ELEVEn獅": CodeLions,
	"統一獅":         CodeLions,
	"統一":          CodeLions,
	"樂天桃猿":        CodeMonkeys,
	"樂天":          CodeMonkeys,
	"桃猿":          CodeMonkeys,
	"富邦悍將":        CodeGuardian,
	"富邦":          CodeGuardian,
	"悍將":          CodeGuardian,
	"味全龍":         CodeDragons,
	"味全":          CodeDragons,
	"台鋼雄鷹":        CodeHawks,
	"台鋼":          CodeHawks,
	"雄鷹":          CodeHawks,
}

// IsValid reports whether c is one of the six known team codes.
func IsValid(c Code) bool {
	_, ok := establishedYears[c]
	return ok
}

// EstablishedYear returns the founding year for a team code, or UnknownYear
// for codes outside the league. The lookup is pure and ignores scraped data.
func EstablishedYear(c Code) string {
	if year, ok := establishedYears[c]; ok {
		return year
	}
	return UnknownYear
}

// CanonicalName returns the official team name for a code, or "" if unknown.
func CanonicalName(c Code) string {
	return canonicalNames[c]
}

// ResolveName maps a scraped or user-supplied team name to a team code by
// substring match against the alias table, longest alias first. Returns
// ("", false) when nothing matches; callers skip such names.
func ResolveName(name string) (Code, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	var (
		best    Code
		bestLen int
		found   bool
	)
	for alias, code := range aliases {
		if strings.Contains(name, alias) && len(alias) > bestLen {
			best = code
			bestLen = len(alias)
			found = true
		}
	}
	return best, found
}
