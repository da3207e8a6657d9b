package sentiment

import "math"

// trendWindow is how many recent observations form each comparison window.
const trendWindow = 7

// trendThreshold is the minimum window-mean difference that counts as a
// direction change.
const trendThreshold = 0.1

// AnalyzeMoodTrend classifies the direction of a sentiment time series.
//
// The most recent trendWindow points are compared against the preceding
// trendWindow (fewer if unavailable). AverageScore, EmotionalProfile, and
// Volatility are computed over the entire supplied series, not just the
// comparison windows. Fewer than two points yields a stable, all-zero
// result.
func AnalyzeMoodTrend(history []TimePoint) MoodTrend {
	if len(history) < 2 {
		return MoodTrend{Trend: TrendStable}
	}

	scores := make([]float64, len(history))
	for i, point := range history {
		scores[i] = point.Sentiment.Score
	}

	recentStart := len(scores) - trendWindow
	if recentStart < 0 {
		recentStart = 0
	}
	olderStart := len(scores) - 2*trendWindow
	if olderStart < 0 {
		olderStart = 0
	}

	recent := scores[recentStart:]
	older := scores[olderStart:recentStart]

	recentMean := mean(recent)
	olderMean := recentMean
	if len(older) > 0 {
		olderMean = mean(older)
	}

	trend := TrendStable
	switch diff := recentMean - olderMean; {
	case diff > trendThreshold:
		trend = TrendImproving
	case diff < -trendThreshold:
		trend = TrendDeclining
	}

	average := mean(scores)

	var profile Emotions
	for _, point := range history {
		profile.Anxiety += point.Sentiment.Emotions.Anxiety
		profile.Depression += point.Sentiment.Emotions.Depression
		profile.Happiness += point.Sentiment.Emotions.Happiness
		profile.Anger += point.Sentiment.Emotions.Anger
		profile.Fear += point.Sentiment.Emotions.Fear
	}
	n := float64(len(history))
	profile.Anxiety /= n
	profile.Depression /= n
	profile.Happiness /= n
	profile.Anger /= n
	profile.Fear /= n

	var variance float64
	for _, score := range scores {
		variance += (score - average) * (score - average)
	}
	variance /= float64(len(scores))

	return MoodTrend{
		Trend:            trend,
		AverageScore:     average,
		EmotionalProfile: profile,
		Volatility:       math.Sqrt(variance),
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
