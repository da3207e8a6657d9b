package orchestrator

import (
	"context"
	"strings"
	"time"

	"github.com/solaceworks/solaced/internal/contexttracker"
	"github.com/solaceworks/solaced/internal/sentiment"
)

// MoodEntry is one self-reported mood check-in.
type MoodEntry struct {
	Mood      string    `json:"mood"`
	Timestamp time.Time `json:"timestamp"`
}

// ProgressInsights summarizes a user's trajectory across mood check-ins
// and conversation history.
type ProgressInsights struct {
	OverallTrend    sentiment.Trend `json:"overall_trend"`
	KeyInsights     []string        `json:"key_insights"`
	Recommendations []string        `json:"recommendations"`
	MoodPatterns    []string        `json:"mood_patterns"`
}

// moodScores maps self-reported mood labels (with and without their
// emoji prefixes) onto a 1-5 scale. Unknown labels read as 3 (okay).
var moodScores = map[string]float64{
	"😊 Great":      5,
	"Great":        5,
	"😌 Good":       4,
	"Good":         4,
	"😐 Okay":       3,
	"Okay":         3,
	"😔 Low":        2,
	"Low":          2,
	"😢 Struggling": 1,
	"Struggling":   1,
}

// Conversation-insight keyword tables, checked against the last few
// user messages.
var (
	breakthroughWords = []string{"realize", "understand", "clarity", "makes sense"}
	copingWords       = []string{"breathing", "meditation", "exercise", "journal"}
)

// insightMessageWindow is how many trailing user messages the
// conversation-insight checks consider.
const insightMessageWindow = 5

// moodPatternMinimum is the series length below which mood-pattern
// detection stays silent.
const moodPatternMinimum = 7

// moodVariabilityThreshold is the distinct-mood count above which the
// series reads as variable.
const moodVariabilityThreshold = 3

// GetProgressInsights derives a progress report: the mood trend over the
// check-in series, conversational insight strings, simple mood patterns,
// a model-generated summary, and trend-keyed recommendations.
func (e *Engine) GetProgressInsights(ctx context.Context, userID string, moodHistory []MoodEntry, history []contexttracker.Message) ProgressInsights {
	trend := moodTrend(moodHistory)
	insights := conversationInsights(history)
	patterns := moodPatterns(moodHistory)

	query := "Analyze mental health progress based on mood trend: " + string(trend.Trend) +
		" and conversation themes: " + strings.Join(insights, ", ")
	response := e.QueryKnowledge(ctx, query, userID, nil)

	return ProgressInsights{
		OverallTrend:    trend.Trend,
		KeyInsights:     append([]string{response.Answer}, insights...),
		Recommendations: progressRecommendations(trend.Trend),
		MoodPatterns:    patterns,
	}
}

// moodTrend converts the check-in series to sentiment time points and
// classifies it. The 1-5 mood scale is centered and rescaled to the
// sentiment score range [-1, 1].
func moodTrend(moodHistory []MoodEntry) sentiment.MoodTrend {
	points := make([]sentiment.TimePoint, len(moodHistory))
	for i, entry := range moodHistory {
		score, ok := moodScores[entry.Mood]
		if !ok {
			score = 3
		}
		points[i] = sentiment.TimePoint{
			Sentiment: sentiment.Result{Score: (score - 3) / 2},
			Timestamp: entry.Timestamp,
		}
	}
	return sentiment.AnalyzeMoodTrend(points)
}

// conversationInsights flags breakthrough and coping-strategy language
// in the user's recent messages.
func conversationInsights(history []contexttracker.Message) []string {
	texts := []string{}
	for _, msg := range history {
		if msg.Sender == contexttracker.SenderUser {
			texts = append(texts, msg.Text)
		}
	}
	if len(texts) > insightMessageWindow {
		texts = texts[len(texts)-insightMessageWindow:]
	}
	recent := strings.ToLower(strings.Join(texts, " "))

	insights := []string{}
	if containsAny(recent, breakthroughWords) {
		insights = append(insights, "User showing increased self-awareness and insight")
	}
	if containsAny(recent, copingWords) {
		insights = append(insights, "User actively engaging with coping strategies")
	}
	return insights
}

// moodPatterns detects degenerate mood distributions: one mood the whole
// series, or many distinct moods.
func moodPatterns(moodHistory []MoodEntry) []string {
	patterns := []string{}
	if len(moodHistory) < moodPatternMinimum {
		return patterns
	}

	distinct := map[string]struct{}{}
	for _, entry := range moodHistory {
		distinct[entry.Mood] = struct{}{}
	}

	if len(distinct) == 1 {
		patterns = append(patterns, "consistent_mood")
	} else if len(distinct) > moodVariabilityThreshold {
		patterns = append(patterns, "mood_variability")
	}
	return patterns
}

// progressRecommendations selects the template recommendation pair for a
// trend label.
func progressRecommendations(trend sentiment.Trend) []string {
	switch trend {
	case sentiment.TrendImproving:
		return []string{
			"Continue current positive strategies",
			"Set new wellness goals",
		}
	case sentiment.TrendDeclining:
		return []string{
			"Consider additional support resources",
			"Review and adjust coping strategies",
		}
	default:
		return []string{
			"Maintain current wellness routine",
			"Explore new growth opportunities",
		}
	}
}
