package team

import "testing"

func TestGameResultWonBy(t *testing.T) {
	game := GameResult{
		Date:     "09/14",
		HomeTeam: "中信兄弟",
		AwayTeam: "台鋼雄鷹",
		Score:    "3:5",
	}

	tests := []struct {
		name string
		code Code
		won  bool
		ok   bool
	}{
		{"away team won", CodeHawks, true, true},
		{"home team lost", CodeBrothers, false, true},
		{"team did not play", CodeLions, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			won, ok := game.WonBy(tt.code)
			if won != tt.won || ok != tt.ok {
				t.Errorf("WonBy(%s) = (%v, %v), want (%v, %v)", tt.code, won, ok, tt.won, tt.ok)
			}
		})
	}
}

func TestGameResultWonByUnparsable(t *testing.T) {
	tests := []struct {
		name  string
		score string
	}{
		{"empty score", ""},
		{"tie", "4:4"},
		{"garbage", "rain out"},
		{"half score", "5:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := GameResult{HomeTeam: "中信兄弟", AwayTeam: "台鋼雄鷹", Score: tt.score}
			if _, ok := game.WonBy(CodeBrothers); ok {
				t.Errorf("WonBy with score %q reported ok", tt.score)
			}
		})
	}
}
