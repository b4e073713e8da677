package team

import "testing"

func TestEstablishedYear(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeBrothers, "1990"},
		{CodeLions, "1990"},
		{CodeMonkeys, "2003"},
		{CodeGuardian, "1993"},
		{CodeDragons, "1990"},
		{CodeHawks, "2023"},
		{Code("XYZ"), UnknownYear},
		{Code(""), UnknownYear},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := EstablishedYear(tt.code); got != tt.want {
				t.Errorf("EstablishedYear(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestEstablishedYearTotalOverAllCodes(t *testing.T) {
	for _, code := range AllCodes {
		if year := EstablishedYear(code); year == "" || year == UnknownYear {
			t.Errorf("EstablishedYear(%q) = %q, want a defined year", code, year)
		}
	}
}

func TestResolveName(t *testing.T) {
	tests := []struct {
		name  string
		want  Code
		found bool
	}{
		{"中信兄弟", CodeBrothers, true},
		{"統一7-ELEVEn獅", CodeLions, true},
		{"樂天桃猿", CodeMonkeys, true},
		{"台鋼雄鷹", CodeHawks, true},
		{"富邦", CodeGuardian, true},
		{"味全龍隊", CodeDragons, true},
		{"不存在的球隊", "", false},
		{"", "", false},
		{"   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ResolveName(tt.name)
			if found != tt.found || got != tt.want {
				t.Errorf("ResolveName(%q) = (%q, %v), want (%q, %v)", tt.name, got, found, tt.want, tt.found)
			}
		})
	}
}

func TestResolveNameLongestAliasWins(t *testing.T) {
	// "統一7-ELEVEn獅" contains both the full name and the short "統一" alias;
	// the longer alias must decide.
	got, found := ResolveName("歡迎統一7-ELEVEn獅主場")
	if !found || got != CodeLions {
		t.Fatalf("ResolveName = (%q, %v), want (%q, true)", got, found, CodeLions)
	}
}

func TestPairKeyOrderIndependent(t *testing.T) {
	tests := []struct {
		a, b Code
		want string
	}{
		{CodeBrothers, CodeLions, "ACN_ADD"},
		{CodeLions, CodeBrothers, "ACN_ADD"},
		{CodeHawks, CodeDragons, "AAA_AKP"},
		{CodeDragons, CodeHawks, "AAA_AKP"},
	}

	for _, tt := range tests {
		if got := PairKey(tt.a, tt.b); got != tt.want {
			t.Errorf("PairKey(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAddHeadToHead(t *testing.T) {
	s := NewSnapshot()

	s.AddHeadToHead(GameResult{Date: "2024-09-01", HomeTeam: "中信兄弟", AwayTeam: "統一獅", Score: "5:3"})
	s.AddHeadToHead(GameResult{Date: "2024-09-02", HomeTeam: "統一獅", AwayTeam: "中信兄弟", Score: "2:4"})

	games, ok := s.HeadToHead["ACN_ADD"]
	if !ok {
		t.Fatal("expected pair key ACN_ADD to exist")
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}
	if games[0].Date != "2024-09-02" {
		t.Errorf("expected newest game first, got date %s", games[0].Date)
	}
}

func TestAddHeadToHeadCapsAtMax(t *testing.T) {
	s := NewSnapshot()
	for i := 0; i < MaxRecentGames+5; i++ {
		s.AddHeadToHead(GameResult{Date: "2024-09-01", HomeTeam: "樂天桃猿", AwayTeam: "富邦悍將", Score: "1:0"})
	}
	if got := len(s.HeadToHead[PairKey(CodeMonkeys, CodeGuardian)]); got != MaxRecentGames {
		t.Errorf("expected %d games after cap, got %d", MaxRecentGames, got)
	}
}

func TestAddHeadToHeadDropsUnknownTeams(t *testing.T) {
	s := NewSnapshot()
	s.AddHeadToHead(GameResult{Date: "2024-09-01", HomeTeam: "火星隊", AwayTeam: "中信兄弟", Score: "1:0"})
	if len(s.HeadToHead) != 0 {
		t.Errorf("expected no head-to-head entries for unknown team, got %d", len(s.HeadToHead))
	}
}

func TestPlayerEntryIsEmpty(t *testing.T) {
	if !(PlayerEntry{}).IsEmpty() {
		t.Error("zero PlayerEntry should be empty")
	}
	if (PlayerEntry{Name: "王柏融"}).IsEmpty() {
		t.Error("entry with a name should not be empty")
	}
	if (PlayerEntry{JerseyNumber: "9"}).IsEmpty() {
		t.Error("entry with a number should not be empty")
	}
}

func TestApplyDerived(t *testing.T) {
	s := NewSnapshot()
	s.Teams[CodeHawks] = &TeamRecord{TeamID: CodeHawks, EstablishedYear: "9999"}
	s.Teams[CodeDragons] = &TeamRecord{TeamID: CodeDragons, Name: "味全龍"}

	s.ApplyDerived()

	if got := s.Teams[CodeHawks].EstablishedYear; got != "2023" {
		t.Errorf("expected persisted year to be overwritten with 2023, got %q", got)
	}
	if got := s.Teams[CodeHawks].Name; got != "台鋼雄鷹" {
		t.Errorf("expected missing name to be filled in, got %q", got)
	}
}
