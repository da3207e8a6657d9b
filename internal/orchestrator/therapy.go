package orchestrator

import (
	"context"
	"strings"

	"github.com/solaceworks/solaced/internal/contexttracker"
	"github.com/solaceworks/solaced/internal/sentiment"
)

// moodQueries maps a self-reported mood onto the retrieval query used to
// find matching resources. Unknown moods fall back to the neutral query.
var moodQueries = map[string]string{
	"anxious":  "anxiety management techniques and coping strategies",
	"sad":      "depression support and mood improvement activities",
	"stressed": "stress reduction and relaxation techniques",
	"angry":    "anger management and emotional regulation",
	"happy":    "maintaining positive mental health and wellness",
	"neutral":  "general mental health maintenance and self-care",
}

// recommendationSnippet is how much resource content a recommendation
// string quotes.
const recommendationSnippet = 150

// GetMoodBasedRecommendations returns up to three resource summaries
// matched to the reported mood, formatted as "Title: leading content...".
func (e *Engine) GetMoodBasedRecommendations(mood string) []string {
	query, ok := moodQueries[strings.ToLower(mood)]
	if !ok {
		query = moodQueries["neutral"]
	}

	resources := e.SearchResources(query, "")
	if len(resources) > 3 {
		resources = resources[:3]
	}

	recommendations := make([]string, 0, len(resources))
	for _, resource := range resources {
		recommendations = append(recommendations,
			resource.Metadata.Title+": "+truncate(resource.Content, recommendationSnippet))
	}
	return recommendations
}

// SourceRef is a compact reference to a knowledge document used in a
// response.
type SourceRef struct {
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Relevance float64 `json:"relevance"`
}

// SessionContext is the conversational context block attached to an
// enriched response.
type SessionContext struct {
	Themes          []string `json:"themes"`
	MoodTrend       string   `json:"mood_trend"`
	SessionProgress string   `json:"session_progress"`
}

// TherapyResponse is the enriched response: the grounded answer plus
// sentiment, source references, recommendations, and session context.
type TherapyResponse struct {
	Response        string           `json:"response"`
	Sentiment       sentiment.Result `json:"sentiment"`
	Sources         []SourceRef      `json:"sources"`
	Recommendations []string         `json:"recommendations"`
	Context         SessionContext   `json:"context"`
}

// Mood-direction word lists for the short-horizon trend read.
var (
	trendPositiveWords = []string{"better", "good", "improving", "positive", "happy"}
	trendNegativeWords = []string{"worse", "bad", "terrible", "difficult", "struggling"}
)

// GenerateTherapyResponse runs the full enriched pipeline: sentiment on
// the prompt, a grounded knowledge query, contextual recommendations,
// and a session-context read.
func (e *Engine) GenerateTherapyResponse(ctx context.Context, prompt, userID string, history []contexttracker.Message, currentMood string) TherapyResponse {
	result := e.analyzer.Analyze(prompt)
	response := e.QueryKnowledge(ctx, prompt, userID, history)

	sources := make([]SourceRef, 0, len(response.Sources))
	for _, doc := range response.Sources {
		sources = append(sources, SourceRef{
			Title:     doc.Metadata.Title,
			Category:  doc.Metadata.Category,
			Relevance: response.Confidence,
		})
	}

	userMessages := []string{}
	for _, msg := range history {
		if msg.Sender == contexttracker.SenderUser {
			userMessages = append(userMessages, msg.Text)
		}
	}

	return TherapyResponse{
		Response:        response.Answer,
		Sentiment:       result,
		Sources:         sources,
		Recommendations: e.therapyRecommendations(userMessages, currentMood),
		Context: SessionContext{
			Themes:          contexttracker.ExtractThemes(userMessages),
			MoodTrend:       determineMoodTrend(userMessages, result),
			SessionProgress: assessSessionProgress(len(history)),
		},
	}
}

// therapyRecommendations picks up to three recommendations: coping
// resources for the top detected themes, then mood-matched resources.
func (e *Engine) therapyRecommendations(userMessages []string, currentMood string) []string {
	recommendations := []string{}

	themes := contexttracker.ExtractThemes(userMessages)
	if len(themes) > 2 {
		themes = themes[:2]
	}
	for _, theme := range themes {
		resources := e.SearchResources(theme, "Coping Strategies")
		if len(resources) > 0 {
			recommendations = append(recommendations, resources[0].Metadata.Title)
		}
	}

	if currentMood != "" {
		moodRecs := e.GetMoodBasedRecommendations(currentMood)
		if len(moodRecs) > 0 {
			recommendations = append(recommendations, moodRecs[0])
		}
	}

	if len(recommendations) > 3 {
		recommendations = recommendations[:3]
	}
	return recommendations
}

// determineMoodTrend classifies the short-horizon mood direction from
// the current sentiment score, falling back to positive/negative word
// counts over the last three user messages.
func determineMoodTrend(userMessages []string, current sentiment.Result) string {
	if current.Score > 0.3 {
		return "improving"
	}
	if current.Score < -0.3 {
		return "declining"
	}

	recent := userMessages
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	text := strings.ToLower(strings.Join(recent, " "))

	positives := countContained(text, trendPositiveWords)
	negatives := countContained(text, trendNegativeWords)

	if positives > negatives {
		return "stable_positive"
	}
	if negatives > positives {
		return "stable_negative"
	}
	return "neutral"
}

// assessSessionProgress buckets the conversation depth by turn count.
func assessSessionProgress(messageCount int) string {
	switch {
	case messageCount < 4:
		return "early_stage"
	case messageCount < 10:
		return "building_rapport"
	case messageCount < 20:
		return "active_discussion"
	default:
		return "deep_exploration"
	}
}

// ConversationMoodTrend scores every user message in the history and
// classifies the resulting sentiment series.
func (e *Engine) ConversationMoodTrend(history []contexttracker.Message) sentiment.MoodTrend {
	points := []sentiment.TimePoint{}
	for _, msg := range history {
		if msg.Sender != contexttracker.SenderUser {
			continue
		}
		points = append(points, sentiment.TimePoint{
			Sentiment: e.analyzer.Analyze(msg.Text),
			Timestamp: msg.Timestamp,
		})
	}
	return sentiment.AnalyzeMoodTrend(points)
}

func countContained(text string, words []string) int {
	count := 0
	for _, word := range words {
		if strings.Contains(text, word) {
			count++
		}
	}
	return count
}
