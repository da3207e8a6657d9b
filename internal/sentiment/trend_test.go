package sentiment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func historyFromScores(scores ...float64) []TimePoint {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	history := make([]TimePoint, len(scores))
	for i, score := range scores {
		history[i] = TimePoint{
			Sentiment: Result{Score: score},
			Timestamp: base.Add(time.Duration(i) * 24 * time.Hour),
		}
	}
	return history
}

func TestAnalyzeMoodTrendTooFewPoints(t *testing.T) {
	for _, history := range [][]TimePoint{nil, historyFromScores(0.5)} {
		trend := AnalyzeMoodTrend(history)
		assert.Equal(t, TrendStable, trend.Trend)
		assert.Zero(t, trend.AverageScore)
		assert.Zero(t, trend.Volatility)
		assert.Equal(t, Emotions{}, trend.EmotionalProfile)
	}
}

func TestAnalyzeMoodTrendImproving(t *testing.T) {
	history := historyFromScores(0, 0, 0, 0, 0, 0, 0, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5)

	trend := AnalyzeMoodTrend(history)
	assert.Equal(t, TrendImproving, trend.Trend)
	assert.InDelta(t, 0.25, trend.AverageScore, 1e-9)
	assert.InDelta(t, 0.25, trend.Volatility, 1e-9)
}

func TestAnalyzeMoodTrendDeclining(t *testing.T) {
	history := historyFromScores(0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0, 0, 0, 0, 0, 0, 0)

	trend := AnalyzeMoodTrend(history)
	assert.Equal(t, TrendDeclining, trend.Trend)
}

func TestAnalyzeMoodTrendStableWithinThreshold(t *testing.T) {
	// Window means differ by exactly 0.1, which is not strictly greater
	// than the threshold.
	history := historyFromScores(0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.2, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3)

	trend := AnalyzeMoodTrend(history)
	assert.Equal(t, TrendStable, trend.Trend)
}

func TestAnalyzeMoodTrendShortSeriesComparesAgainstItself(t *testing.T) {
	// Two points both land in the recent window; with no older window the
	// older mean defaults to the recent mean, so the trend is stable even
	// though the scores swing.
	trend := AnalyzeMoodTrend(historyFromScores(1, -1))
	assert.Equal(t, TrendStable, trend.Trend)
	assert.Zero(t, trend.AverageScore)
	assert.InDelta(t, 1.0, trend.Volatility, 1e-9)
}

func TestAnalyzeMoodTrendEmotionalProfile(t *testing.T) {
	history := []TimePoint{
		{Sentiment: Result{Score: 0.2, Emotions: Emotions{Anxiety: 0.4, Happiness: 0.2}}},
		{Sentiment: Result{Score: 0.4, Emotions: Emotions{Anxiety: 0.2, Happiness: 0.4}}},
	}

	trend := AnalyzeMoodTrend(history)
	assert.InDelta(t, 0.3, trend.EmotionalProfile.Anxiety, 1e-9)
	assert.InDelta(t, 0.3, trend.EmotionalProfile.Happiness, 1e-9)
	assert.Zero(t, trend.EmotionalProfile.Anger)
}

func TestAnalyzeMoodTrendPartialOlderWindow(t *testing.T) {
	// Ten points: recent window is the last 7, older window is only the
	// first 3.
	history := historyFromScores(-0.5, -0.5, -0.5, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3, 0.3)

	trend := AnalyzeMoodTrend(history)
	assert.Equal(t, TrendImproving, trend.Trend)
}
