package orchestrator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solaceworks/solaced/internal/sentiment"
)

func TestGetMoodBasedRecommendations(t *testing.T) {
	engine := newTestEngine(t, &fakeClient{})

	recs := engine.GetMoodBasedRecommendations("anxious")
	require.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), 3)
	for _, rec := range recs {
		title, rest, found := strings.Cut(rec, ": ")
		require.True(t, found, "recommendation %q lacks a title prefix", rec)
		assert.NotEmpty(t, title)
		assert.NotEmpty(t, rest)
	}

	// Case-insensitive mood lookup.
	assert.Equal(t, recs, engine.GetMoodBasedRecommendations("Anxious"))

	// Unknown moods fall back to the neutral query.
	assert.Equal(t,
		engine.GetMoodBasedRecommendations("neutral"),
		engine.GetMoodBasedRecommendations("perplexed"))
}

func TestGenerateTherapyResponse(t *testing.T) {
	client := &fakeClient{responses: []string{"supportive answer"}}
	engine := newTestEngine(t, client)

	conversation := history(
		"I've been anxious about work",
		"the pressure is constant and I worry a lot",
	)
	resp := engine.GenerateTherapyResponse(context.Background(),
		"How do I handle this anxiety?", "user-1", conversation, "anxious")

	assert.Equal(t, "supportive answer", resp.Response)
	assert.NotEmpty(t, resp.Sources)
	for _, source := range resp.Sources {
		assert.NotEmpty(t, source.Title)
		assert.GreaterOrEqual(t, source.Relevance, 0.3)
	}

	assert.Contains(t, resp.Context.Themes, "anxiety")
	assert.Equal(t, "early_stage", resp.Context.SessionProgress)
	assert.NotEmpty(t, resp.Recommendations)
	assert.LessOrEqual(t, len(resp.Recommendations), 3)
}

func TestDetermineMoodTrend(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		score    float64
		want     string
	}{
		{
			name:  "strong positive sentiment",
			score: 0.5,
			want:  "improving",
		},
		{
			name:  "strong negative sentiment",
			score: -0.5,
			want:  "declining",
		},
		{
			name:     "positive words dominate",
			messages: []string{"things are good and getting better"},
			want:     "stable_positive",
		},
		{
			name:     "negative words dominate",
			messages: []string{"it's been a difficult, terrible stretch"},
			want:     "stable_negative",
		},
		{
			name:     "balanced",
			messages: []string{"some days good, some days bad"},
			want:     "neutral",
		},
		{
			name:     "only the last three messages count",
			messages: []string{"terrible awful worse", "fine", "fine", "good and better"},
			want:     "stable_positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := determineMoodTrend(tt.messages, sentiment.Result{Score: tt.score})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssessSessionProgress(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "early_stage"},
		{3, "early_stage"},
		{4, "building_rapport"},
		{9, "building_rapport"},
		{10, "active_discussion"},
		{19, "active_discussion"},
		{20, "deep_exploration"},
		{50, "deep_exploration"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, assessSessionProgress(tt.count), "count %d", tt.count)
	}
}

func TestConversationMoodTrend(t *testing.T) {
	engine := newTestEngine(t, &fakeClient{})

	texts := make([]string, 0, 14)
	for i := 0; i < 7; i++ {
		texts = append(texts, "I feel sad and hopeless")
	}
	for i := 0; i < 7; i++ {
		texts = append(texts, "I feel happy and calm")
	}

	trend := engine.ConversationMoodTrend(history(texts...))
	assert.Equal(t, sentiment.TrendImproving, trend.Trend)
	assert.Greater(t, trend.Volatility, 0.0)
}
