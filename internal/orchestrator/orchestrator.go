// Package orchestrator composes the retrieval pipeline: it updates the
// user's conversational context, retrieves relevant knowledge from the
// vector index, builds a grounded prompt, and calls the completion
// backend. The completion call is the only network boundary in the
// engine; everything else is synchronous in-memory compute.
package orchestrator

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/solaceworks/solaced/internal/contexttracker"
	"github.com/solaceworks/solaced/internal/llm"
	"github.com/solaceworks/solaced/internal/sentiment"
	"github.com/solaceworks/solaced/internal/vectorstore"
)

// Retrieval depths. Knowledge queries ground the prompt on a small top-k;
// resource searches cast a wider net for post-filtering.
const (
	knowledgeTopK = 3
	resourceTopK  = 5
)

// historyWindow is how many trailing conversation turns are quoted in
// the prompt.
const historyWindow = 6

// apologyResponse is returned when both the grounded prompt and the
// minimal fallback prompt fail. It is the only completion-path output
// that does not come from the model.
const apologyResponse = "I'm sorry, I'm having trouble responding right now. Please try again in a moment."

// QueryResponse is the result of a knowledge query.
type QueryResponse struct {
	Answer     string                 `json:"answer"`
	Sources    []vectorstore.Document `json:"sources"`
	Confidence float64                `json:"confidence"`
}

// Engine is the retrieval orchestrator. All fields are set at
// construction and never reassigned, so the engine is safe for
// concurrent use to the extent its components are.
type Engine struct {
	tracker  *contexttracker.Tracker
	index    *vectorstore.Index
	analyzer *sentiment.Analyzer
	client   llm.Client
	logger   *zap.Logger
}

// NewEngine creates an orchestrator over the given components.
func NewEngine(tracker *contexttracker.Tracker, index *vectorstore.Index, analyzer *sentiment.Analyzer, client llm.Client, logger *zap.Logger) *Engine {
	return &Engine{
		tracker:  tracker,
		index:    index,
		analyzer: analyzer,
		client:   client,
		logger:   logger,
	}
}

// QueryKnowledge answers a user question grounded on retrieved knowledge
// and the user's conversational context. Retrieval misses are not
// errors: with no relevant documents the prompt simply carries an empty
// knowledge block and confidence drops to its floor.
func (e *Engine) QueryKnowledge(ctx context.Context, question, userID string, history []contexttracker.Message) QueryResponse {
	knowledgeQueriesTotal.Inc()

	e.tracker.UpdateContext(ctx, userID, history)

	docs := e.index.SimilaritySearch(question, knowledgeTopK)
	prompt := buildKnowledgePrompt(question, docs, history, e.tracker.GetContext(userID))

	return QueryResponse{
		Answer:     e.complete(ctx, prompt, question),
		Sources:    docs,
		Confidence: retrievalConfidence(docs, question),
	}
}

// SearchResources runs a wide similarity search, optionally post-filtered
// by exact category match. An empty category means no filter.
func (e *Engine) SearchResources(query, category string) []vectorstore.Document {
	docs := e.index.SimilaritySearch(query, resourceTopK)
	if category == "" {
		return docs
	}

	filtered := []vectorstore.Document{}
	for _, doc := range docs {
		if doc.Metadata.Category == category {
			filtered = append(filtered, doc)
		}
	}
	return filtered
}

// AddDocument indexes a document, assigning an ID when the caller did
// not provide one. Returns the stored document ID.
func (e *Engine) AddDocument(doc vectorstore.Document) string {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	e.index.AddDocument(doc)
	return doc.ID
}

// AnalyzeSentiment scores a single text.
func (e *Engine) AnalyzeSentiment(text string) sentiment.Result {
	return e.analyzer.Analyze(text)
}

// complete calls the completion backend with the grounded prompt,
// degrading to a minimal ungrounded prompt and finally to a fixed
// apology. Raw backend errors never escape this method.
func (e *Engine) complete(ctx context.Context, prompt, question string) string {
	started := time.Now()

	answer, err := e.client.Complete(ctx, prompt)
	if err == nil {
		llmCallsTotal.WithLabelValues(outcomeSuccess).Inc()
		llmCallDuration.Observe(time.Since(started).Seconds())
		return answer
	}
	e.logger.Warn("grounded completion failed, using fallback prompt", zap.Error(err))

	answer, err = e.client.Complete(ctx, buildFallbackPrompt(question))
	if err == nil {
		llmCallsTotal.WithLabelValues(outcomeFallback).Inc()
		llmCallDuration.Observe(time.Since(started).Seconds())
		return answer
	}
	e.logger.Error("fallback completion failed", zap.Error(err))

	llmCallsTotal.WithLabelValues(outcomeApology).Inc()
	return apologyResponse
}

// retrievalConfidence estimates document relevance from three weighted
// substring signals, averaged over the retrieved set and clamped into
// [0.4, 0.9]. No documents means a fixed 0.3. The weights are behavioral
// contracts: tests are written against these exact constants.
func retrievalConfidence(docs []vectorstore.Document, query string) float64 {
	if len(docs) == 0 {
		return 0.3
	}

	lowered := strings.ToLower(query)

	total := 0.0
	for _, doc := range docs {
		relevance := 0.0
		if strings.Contains(strings.ToLower(doc.Metadata.Title), lowered) {
			relevance += 0.3
		}
		if strings.Contains(strings.ToLower(doc.Content), lowered) {
			relevance += 0.4
		}
		for _, tag := range doc.Metadata.Tags {
			if strings.Contains(lowered, strings.ToLower(tag)) {
				relevance += 0.3
				break
			}
		}
		total += relevance
	}

	avg := total / float64(len(docs))
	if avg < 0.4 {
		return 0.4
	}
	if avg > 0.9 {
		return 0.9
	}
	return avg
}

// truncate returns at most n runes of s, appending an ellipsis marker
// when the text was cut.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
