package orchestrator

import (
	"context"
	"strings"

	"github.com/solaceworks/solaced/internal/contexttracker"
	"github.com/solaceworks/solaced/internal/sentiment"
)

// JournalAnalysis is the result of analyzing one journal entry.
type JournalAnalysis struct {
	Insight         string           `json:"insight"`
	Sentiment       sentiment.Result `json:"sentiment"`
	Themes          []string         `json:"themes"`
	Patterns        []string         `json:"patterns"`
	Recommendations []string         `json:"recommendations"`
}

// Journaling pattern keyword tables. Absolutist language is a recognized
// marker of rigid thinking, hence its own pattern.
var (
	morningWords  = []string{"morning", "wake", "start of day"}
	eveningWords  = []string{"evening", "night", "end of day"}
	absoluteWords = []string{"always", "never"}
)

// AnalyzeJournalEntry runs the retrieval pipeline over a journal entry
// instead of a question, with no conversation history, and adds locally
// computed themes, writing patterns, and recommendations.
func (e *Engine) AnalyzeJournalEntry(ctx context.Context, entry, userID string, previousEntries []string) JournalAnalysis {
	result := e.analyzer.Analyze(entry)
	themes := contexttracker.ExtractThemes([]string{entry})
	patterns := detectJournalPatterns(append([]string{entry}, previousEntries...))

	query := "Analyze this journal entry for therapeutic insights: " + entry
	response := e.QueryKnowledge(ctx, query, userID, nil)

	return JournalAnalysis{
		Insight:         response.Answer,
		Sentiment:       result,
		Themes:          themes,
		Patterns:        patterns,
		Recommendations: journalRecommendations(themes, result),
	}
}

// detectJournalPatterns flags time-of-day framing and absolutist
// language across the supplied entries.
func detectJournalPatterns(entries []string) []string {
	text := strings.ToLower(strings.Join(entries, " "))

	patterns := []string{}
	if containsAny(text, morningWords) {
		patterns = append(patterns, "morning_reflections")
	}
	if containsAny(text, eveningWords) {
		patterns = append(patterns, "evening_processing")
	}
	if containsAny(text, absoluteWords) {
		patterns = append(patterns, "absolute_thinking")
	}
	return patterns
}

// journalRecommendations selects template recommendations from the
// entry's sentiment and themes.
func journalRecommendations(themes []string, result sentiment.Result) []string {
	recommendations := []string{}

	if result.Score < -0.5 {
		recommendations = append(recommendations,
			"Consider practicing self-compassion exercises",
			"Reach out to your support system",
		)
	}
	if containsString(themes, "anxiety") {
		recommendations = append(recommendations, "Try the 5-4-3-2-1 grounding technique")
	}
	if containsString(themes, "stress") {
		recommendations = append(recommendations, "Practice deep breathing exercises")
	}
	return recommendations
}

func containsAny(text string, words []string) bool {
	for _, word := range words {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
