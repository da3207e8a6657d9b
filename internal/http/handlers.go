package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/solaceworks/solaced/internal/contexttracker"
	"github.com/solaceworks/solaced/internal/orchestrator"
	"github.com/solaceworks/solaced/internal/vectorstore"
)

// QueryRequest is the request body for POST /api/v1/query.
type QueryRequest struct {
	Question string                   `json:"question"`
	UserID   string                   `json:"user_id"`
	History  []contexttracker.Message `json:"history"`
}

// handleQuery answers a question grounded on the knowledge base.
func (s *Server) handleQuery(c echo.Context) error {
	var req QueryRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid query request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Question == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "question field is required")
	}
	if req.UserID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id field is required")
	}

	resp := s.engine.QueryKnowledge(c.Request().Context(), req.Question, req.UserID, req.History)
	return c.JSON(http.StatusOK, resp)
}

// TherapyRequest is the request body for POST /api/v1/therapy.
type TherapyRequest struct {
	Message     string                   `json:"message"`
	UserID      string                   `json:"user_id"`
	History     []contexttracker.Message `json:"history"`
	CurrentMood string                   `json:"current_mood"`
}

// handleTherapy returns the enriched response: answer plus sentiment,
// sources, recommendations, and session context.
func (s *Server) handleTherapy(c echo.Context) error {
	var req TherapyRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid therapy request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message field is required")
	}
	if req.UserID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id field is required")
	}

	resp := s.engine.GenerateTherapyResponse(c.Request().Context(), req.Message, req.UserID, req.History, req.CurrentMood)
	return c.JSON(http.StatusOK, resp)
}

// SentimentRequest is the request body for POST /api/v1/sentiment.
type SentimentRequest struct {
	Text string `json:"text"`
}

// handleSentiment scores a single text.
func (s *Server) handleSentiment(c echo.Context) error {
	var req SentimentRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid sentiment request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text field is required")
	}

	return c.JSON(http.StatusOK, s.engine.AnalyzeSentiment(req.Text))
}

// JournalRequest is the request body for POST /api/v1/journal.
type JournalRequest struct {
	Entry           string   `json:"entry"`
	UserID          string   `json:"user_id"`
	PreviousEntries []string `json:"previous_entries"`
}

// handleJournal analyzes a journal entry.
func (s *Server) handleJournal(c echo.Context) error {
	var req JournalRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid journal request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Entry == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "entry field is required")
	}
	if req.UserID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id field is required")
	}

	analysis := s.engine.AnalyzeJournalEntry(c.Request().Context(), req.Entry, req.UserID, req.PreviousEntries)
	return c.JSON(http.StatusOK, analysis)
}

// MoodRecommendationsRequest is the request body for
// POST /api/v1/recommendations/mood.
type MoodRecommendationsRequest struct {
	Mood string `json:"mood"`
}

// MoodRecommendationsResponse is the response body for
// POST /api/v1/recommendations/mood.
type MoodRecommendationsResponse struct {
	Recommendations []string `json:"recommendations"`
}

// handleMoodRecommendations returns resource summaries for a mood.
func (s *Server) handleMoodRecommendations(c echo.Context) error {
	var req MoodRecommendationsRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid mood recommendations request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Mood == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "mood field is required")
	}

	return c.JSON(http.StatusOK, MoodRecommendationsResponse{
		Recommendations: s.engine.GetMoodBasedRecommendations(req.Mood),
	})
}

// ProgressInsightsRequest is the request body for
// POST /api/v1/insights/progress.
type ProgressInsightsRequest struct {
	UserID      string                   `json:"user_id"`
	MoodHistory []orchestrator.MoodEntry `json:"mood_history"`
	History     []contexttracker.Message `json:"history"`
}

// handleProgressInsights summarizes the user's trajectory.
func (s *Server) handleProgressInsights(c echo.Context) error {
	var req ProgressInsightsRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid progress insights request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.UserID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id field is required")
	}

	insights := s.engine.GetProgressInsights(c.Request().Context(), req.UserID, req.MoodHistory, req.History)
	return c.JSON(http.StatusOK, insights)
}

// SearchResourcesResponse is the response body for
// GET /api/v1/resources/search.
type SearchResourcesResponse struct {
	Resources []vectorstore.Document `json:"resources"`
}

// handleSearchResources searches the knowledge base, optionally filtered
// by category.
func (s *Server) handleSearchResources(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter is required")
	}

	return c.JSON(http.StatusOK, SearchResourcesResponse{
		Resources: s.engine.SearchResources(query, c.QueryParam("category")),
	})
}

// AddDocumentRequest is the request body for POST /api/v1/documents.
type AddDocumentRequest struct {
	ID       string               `json:"id"`
	Content  string               `json:"content"`
	Metadata vectorstore.Metadata `json:"metadata"`
}

// AddDocumentResponse is the response body for POST /api/v1/documents.
type AddDocumentResponse struct {
	ID string `json:"id"`
}

// handleAddDocument indexes a document, generating an ID when absent.
func (s *Server) handleAddDocument(c echo.Context) error {
	var req AddDocumentRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid add document request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content field is required")
	}

	id := s.engine.AddDocument(vectorstore.Document{
		ID:       req.ID,
		Content:  req.Content,
		Metadata: req.Metadata,
	})
	return c.JSON(http.StatusCreated, AddDocumentResponse{ID: id})
}

// ListUsersResponse is the response body for GET /api/v1/users.
type ListUsersResponse struct {
	Users []string `json:"users"`
}

// handleListUsers lists tracked user IDs.
func (s *Server) handleListUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, ListUsersResponse{Users: s.tracker.Users()})
}

// UpdateContextRequest is the request body for POST /api/v1/context/update.
type UpdateContextRequest struct {
	UserID  string                   `json:"user_id"`
	History []contexttracker.Message `json:"history"`
}

// handleUpdateContext recomputes a user's context from history.
func (s *Server) handleUpdateContext(c echo.Context) error {
	var req UpdateContextRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid update context request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.UserID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id field is required")
	}

	s.tracker.UpdateContext(c.Request().Context(), req.UserID, req.History)
	return c.NoContent(http.StatusNoContent)
}

// handleGetContext returns a user's context, 404 when never tracked.
func (s *Server) handleGetContext(c echo.Context) error {
	uc := s.tracker.GetContext(c.Param("userID"))
	if uc == nil {
		return echo.NewHTTPError(http.StatusNotFound, "user context not found")
	}
	return c.JSON(http.StatusOK, uc)
}

// handleGetMemory returns a user's conversation memory, 404 when never
// tracked.
func (s *Server) handleGetMemory(c echo.Context) error {
	memory := s.tracker.GetConversationMemory(c.Param("userID"))
	if memory == nil {
		return echo.NewHTTPError(http.StatusNotFound, "conversation memory not found")
	}
	return c.JSON(http.StatusOK, memory)
}

// SummaryResponse is the response body for
// GET /api/v1/context/:userID/summary.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// handleGetSummary returns the one-paragraph context summary.
func (s *Server) handleGetSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, SummaryResponse{
		Summary: s.tracker.ContextSummary(c.Param("userID")),
	})
}

// handleClearUserData deletes all state for a user.
func (s *Server) handleClearUserData(c echo.Context) error {
	s.tracker.ClearUserData(c.Request().Context(), c.Param("userID"))
	return c.NoContent(http.StatusNoContent)
}

// UpdatePreferencesRequest is the request body for
// PUT /api/v1/context/:userID/preferences. Omitted fields are left
// untouched.
type UpdatePreferencesRequest struct {
	ResponseStyle *string  `json:"response_style"`
	FocusAreas    []string `json:"focus_areas"`
}

// handleUpdatePreferences merges a partial preferences update.
func (s *Server) handleUpdatePreferences(c echo.Context) error {
	var req UpdatePreferencesRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid preferences request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	s.tracker.UpdateUserPreferences(c.Request().Context(), c.Param("userID"), contexttracker.PreferencesUpdate{
		ResponseStyle: req.ResponseStyle,
		FocusAreas:    req.FocusAreas,
	})
	return c.NoContent(http.StatusNoContent)
}

// handleIncrementSession bumps the user's session counter.
func (s *Server) handleIncrementSession(c echo.Context) error {
	s.tracker.IncrementSessionCount(c.Request().Context(), c.Param("userID"))
	return c.NoContent(http.StatusNoContent)
}

// GoalRequest is the request body for POST /api/v1/context/:userID/goals.
type GoalRequest struct {
	Goal string `json:"goal"`
}

// handleAddGoal appends a goal to long-term memory.
func (s *Server) handleAddGoal(c echo.Context) error {
	var req GoalRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid goal request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Goal == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "goal field is required")
	}

	s.tracker.AddGoal(c.Request().Context(), c.Param("userID"), req.Goal)
	return c.NoContent(http.StatusNoContent)
}

// ProgressNoteRequest is the request body for
// POST /api/v1/context/:userID/notes.
type ProgressNoteRequest struct {
	Note string `json:"note"`
}

// handleAddProgressNote appends a progress note.
func (s *Server) handleAddProgressNote(c echo.Context) error {
	var req ProgressNoteRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid progress note request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Note == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "note field is required")
	}

	s.tracker.AddProgressNote(c.Request().Context(), c.Param("userID"), req.Note)
	return c.NoContent(http.StatusNoContent)
}
