package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solaceworks/solaced/internal/contexttracker"
	"github.com/solaceworks/solaced/internal/embedding"
	"github.com/solaceworks/solaced/internal/kvstore"
	"github.com/solaceworks/solaced/internal/logging"
	"github.com/solaceworks/solaced/internal/orchestrator"
	"github.com/solaceworks/solaced/internal/sentiment"
	"github.com/solaceworks/solaced/internal/vectorstore"
)

// staticClient answers every completion with the same text.
type staticClient struct {
	answer string
}

func (s staticClient) Complete(context.Context, string) (string, error) {
	return s.answer, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	logger := logging.NewTestLogger().Logger
	tracker := contexttracker.NewTracker(kvstore.NewMemoryStore(), logger)
	index := vectorstore.NewIndex(embedding.New())
	index.SeedKnowledgeBase()
	engine := orchestrator.NewEngine(tracker, index, sentiment.NewAnalyzer(),
		staticClient{answer: "supportive answer"}, logger)

	srv, err := NewServer(engine, tracker, logger, nil)
	require.NoError(t, err)
	return srv
}

func do(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(newTestServer(t), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsExposed(t *testing.T) {
	rec := do(newTestServer(t), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestQuery(t *testing.T) {
	srv := newTestServer(t)

	body := `{
		"question": "I feel anxious and can't breathe",
		"user_id": "user-1",
		"history": [
			{"text": "I've been anxious lately", "sender": "user"},
			{"text": "I worry about everything", "sender": "user"}
		]
	}`
	rec := do(srv, http.MethodPost, "/api/v1/query", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp orchestrator.QueryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "supportive answer", resp.Answer)
	assert.NotEmpty(t, resp.Sources)
	assert.GreaterOrEqual(t, resp.Confidence, 0.3)
}

func TestQueryValidation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing question", `{"user_id": "user-1"}`},
		{"missing user id", `{"question": "hello"}`},
		{"malformed json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(srv, http.MethodPost, "/api/v1/query", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSentiment(t *testing.T) {
	srv := newTestServer(t)

	rec := do(srv, http.MethodPost, "/api/v1/sentiment", `{"text": "I am extremely happy today"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result sentiment.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, sentiment.LabelPositive, result.Label)
	assert.Greater(t, result.Score, 0.0)

	rec = do(srv, http.MethodPost, "/api/v1/sentiment", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJournal(t *testing.T) {
	srv := newTestServer(t)

	body := `{
		"entry": "Every morning I wake up anxious and worried about everything",
		"user_id": "user-1"
	}`
	rec := do(srv, http.MethodPost, "/api/v1/journal", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var analysis orchestrator.JournalAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Equal(t, "supportive answer", analysis.Insight)
	assert.Contains(t, analysis.Themes, "anxiety")
	assert.Contains(t, analysis.Patterns, "morning_reflections")
}

func TestMoodRecommendations(t *testing.T) {
	srv := newTestServer(t)

	rec := do(srv, http.MethodPost, "/api/v1/recommendations/mood", `{"mood": "anxious"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MoodRecommendationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Recommendations)
	assert.LessOrEqual(t, len(resp.Recommendations), 3)

	rec = do(srv, http.MethodPost, "/api/v1/recommendations/mood", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProgressInsights(t *testing.T) {
	srv := newTestServer(t)

	body := `{
		"user_id": "user-1",
		"mood_history": [
			{"mood": "Low"}, {"mood": "Low"}, {"mood": "Low"}, {"mood": "Low"},
			{"mood": "Low"}, {"mood": "Low"}, {"mood": "Low"},
			{"mood": "Great"}, {"mood": "Great"}, {"mood": "Great"}, {"mood": "Great"},
			{"mood": "Great"}, {"mood": "Great"}, {"mood": "Great"}
		],
		"history": [{"text": "the breathing exercises help", "sender": "user"}]
	}`
	rec := do(srv, http.MethodPost, "/api/v1/insights/progress", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var insights orchestrator.ProgressInsights
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &insights))
	assert.Equal(t, sentiment.TrendImproving, insights.OverallTrend)
	assert.NotEmpty(t, insights.KeyInsights)
}

func TestTherapy(t *testing.T) {
	srv := newTestServer(t)

	body := `{
		"message": "How do I handle this anxiety?",
		"user_id": "user-1",
		"current_mood": "anxious",
		"history": [
			{"text": "I've been anxious about work", "sender": "user"},
			{"text": "I worry constantly", "sender": "user"}
		]
	}`
	rec := do(srv, http.MethodPost, "/api/v1/therapy", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp orchestrator.TherapyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "supportive answer", resp.Response)
	assert.Equal(t, "early_stage", resp.Context.SessionProgress)
}

func TestSearchResources(t *testing.T) {
	srv := newTestServer(t)

	rec := do(srv, http.MethodGet, "/api/v1/resources/search?query=anxiety", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResourcesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Resources)

	rec = do(srv, http.MethodGet, "/api/v1/resources/search?query=anxiety&category=Coping+Strategies", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	for _, doc := range resp.Resources {
		assert.Equal(t, "Coping Strategies", doc.Metadata.Category)
	}

	rec = do(srv, http.MethodGet, "/api/v1/resources/search", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddDocument(t *testing.T) {
	srv := newTestServer(t)

	body := `{
		"content": "progressive muscle relaxation involves tensing and releasing",
		"metadata": {"title": "PMR", "category": "Coping Strategies", "tags": ["relaxation"]}
	}`
	rec := do(srv, http.MethodPost, "/api/v1/documents", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp AddDocumentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)

	rec = do(srv, http.MethodPost, "/api/v1/documents", `{"metadata": {"title": "empty"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContextLifecycle(t *testing.T) {
	srv := newTestServer(t)

	// Unknown user is a 404.
	rec := do(srv, http.MethodGet, "/api/v1/context/user-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Update, then read back.
	body := `{
		"user_id": "user-1",
		"history": [
			{"text": "I'm anxious and I worry a lot", "sender": "user"}
		]
	}`
	rec = do(srv, http.MethodPost, "/api/v1/context/update", body)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(srv, http.MethodGet, "/api/v1/context/user-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var uc contexttracker.UserContext
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &uc))
	assert.Contains(t, uc.Themes, "anxiety")

	// Preferences merge.
	rec = do(srv, http.MethodPut, "/api/v1/context/user-1/preferences", `{"response_style": "concise"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Session count, goals, notes.
	rec = do(srv, http.MethodPost, "/api/v1/context/user-1/session", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(srv, http.MethodPost, "/api/v1/context/user-1/goals", `{"goal": "sleep by 11pm"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(srv, http.MethodPost, "/api/v1/context/user-1/notes", `{"note": "slept better this week"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(srv, http.MethodGet, "/api/v1/context/user-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &uc))
	assert.Equal(t, "concise", uc.Preferences.ResponseStyle)
	assert.Equal(t, 1, uc.SessionCount)

	rec = do(srv, http.MethodGet, "/api/v1/context/user-1/memory", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var memory contexttracker.ConversationMemory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &memory))
	assert.Equal(t, []string{"sleep by 11pm"}, memory.LongTerm.Goals)
	assert.Equal(t, []string{"slept better this week"}, memory.LongTerm.ProgressNotes)

	// Summary.
	rec = do(srv, http.MethodGet, "/api/v1/context/user-1/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var summary SummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Contains(t, summary.Summary, "anxiety")

	// Users listing.
	rec = do(srv, http.MethodGet, "/api/v1/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var users ListUsersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Equal(t, []string{"user-1"}, users.Users)

	// Clear removes everything.
	rec = do(srv, http.MethodDelete, "/api/v1/context/user-1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(srv, http.MethodGet, "/api/v1/context/user-1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewServerValidation(t *testing.T) {
	logger := logging.NewTestLogger().Logger
	tracker := contexttracker.NewTracker(kvstore.NewMemoryStore(), logger)

	_, err := NewServer(nil, tracker, logger, nil)
	assert.Error(t, err)

	engine := orchestrator.NewEngine(tracker, vectorstore.NewIndex(embedding.New()),
		sentiment.NewAnalyzer(), staticClient{}, logger)
	_, err = NewServer(engine, nil, logger, nil)
	assert.Error(t, err)
	_, err = NewServer(engine, tracker, nil, nil)
	assert.Error(t, err)
}
