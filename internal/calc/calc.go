package calc

// BattingAverage returns hits divided by at-bats, or 0 with no at-bats.
func BattingAverage(hits, atBats float64) float64 {
	if atBats == 0 {
		return 0
	}
	return hits / atBats
}

// ERA returns earned runs scaled to nine innings, or 0 with no innings.
func ERA(earnedRuns, innings float64) float64 {
	if innings == 0 {
		return 0
	}
	return earnedRuns * 9 / innings
}

// OPS returns on-base percentage plus slugging.
func OPS(obp, slg float64) float64 {
	return obp + slg
}

// WHIP returns walks plus hits per inning pitched, or 0 with no innings.
func WHIP(walks, hits, innings float64) float64 {
	if innings == 0 {
		return 0
	}
	return (walks + hits) / innings
}

// Prediction weights. The raw win rate, the recency-weighted rate, and the
// streak momentum combine into one estimate.
const (
	baseWeight     = 0.3
	trendWeight    = 0.4
	momentumWeight = 0.3

	predictionFloor   = 0.1
	predictionCeiling = 0.9
)

// PredictPerformance estimates the next-game win probability from recent
// outcomes, ordered oldest first with true meaning a win. With no history
// it returns 0.5. The estimate is clamped to [0.1, 0.9] so a short perfect
// or winless run never reads as a certainty.
func PredictPerformance(results []bool) float64 {
	if len(results) == 0 {
		return 0.5
	}

	wins := 0.0
	for _, won := range results {
		if won {
			wins++
		}
	}
	baseRate := wins / float64(len(results))

	// Recency weights ramp linearly from 0.5 for the oldest game to 1.0
	// for the newest.
	var weightedWins, weightSum float64
	for i, won := range results {
		w := 0.5
		if len(results) > 1 {
			w = 0.5 + 0.5*float64(i)/float64(len(results)-1)
		}
		weightSum += w
		if won {
			weightedWins += w
		}
	}
	trendRate := weightedWins / weightSum

	prediction := baseRate*baseWeight + trendRate*trendWeight + momentum(results)*momentumWeight

	if prediction < predictionFloor {
		return predictionFloor
	}
	if prediction > predictionCeiling {
		return predictionCeiling
	}
	return prediction
}

// momentum scores the current streak around a neutral 0.5. A streak
// covering the whole window moves the score by at most 0.2, positive for
// wins and negative for losses.
func momentum(results []bool) float64 {
	if len(results) == 0 {
		return 0.5
	}

	last := results[len(results)-1]
	streak := 0
	for i := len(results) - 1; i >= 0; i-- {
		if results[i] != last {
			break
		}
		streak++
	}

	factor := float64(streak) / float64(len(results)) * 0.2
	if !last {
		factor = -factor
	}
	return 0.5 + factor
}
