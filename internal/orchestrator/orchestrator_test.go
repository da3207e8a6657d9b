package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solaceworks/solaced/internal/contexttracker"
	"github.com/solaceworks/solaced/internal/embedding"
	"github.com/solaceworks/solaced/internal/kvstore"
	"github.com/solaceworks/solaced/internal/logging"
	"github.com/solaceworks/solaced/internal/sentiment"
	"github.com/solaceworks/solaced/internal/vectorstore"
)

// fakeClient replays scripted completions and records the prompts it
// received.
type fakeClient struct {
	responses []string
	errs      []error
	prompts   []string
}

func (f *fakeClient) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	call := len(f.prompts) - 1

	if call < len(f.errs) && f.errs[call] != nil {
		return "", f.errs[call]
	}
	if call < len(f.responses) {
		return f.responses[call], nil
	}
	if len(f.responses) > 0 {
		return f.responses[len(f.responses)-1], nil
	}
	return "scripted answer", nil
}

func newTestEngine(t *testing.T, client *fakeClient) *Engine {
	t.Helper()

	logger := logging.NewTestLogger().Logger
	tracker := contexttracker.NewTracker(kvstore.NewMemoryStore(), logger)
	index := vectorstore.NewIndex(embedding.New())
	index.SeedKnowledgeBase()

	return NewEngine(tracker, index, sentiment.NewAnalyzer(), client, logger)
}

func history(texts ...string) []contexttracker.Message {
	msgs := make([]contexttracker.Message, len(texts))
	for i, text := range texts {
		msgs[i] = contexttracker.Message{Text: text, Sender: contexttracker.SenderUser}
	}
	return msgs
}

func TestQueryKnowledge(t *testing.T) {
	client := &fakeClient{responses: []string{"grounded answer"}}
	engine := newTestEngine(t, client)

	resp := engine.QueryKnowledge(context.Background(), "I feel anxious and can't breathe", "user-1",
		history("I've been anxious lately", "I worry about everything"))

	assert.Equal(t, "grounded answer", resp.Answer)
	assert.NotEmpty(t, resp.Sources)
	assert.LessOrEqual(t, len(resp.Sources), knowledgeTopK)
	assert.GreaterOrEqual(t, resp.Confidence, 0.3)
	assert.LessOrEqual(t, resp.Confidence, 0.9)

	// Prompt carries the retrieved knowledge, history, and question.
	require.Len(t, client.prompts, 1)
	prompt := client.prompts[0]
	assert.Contains(t, prompt, "KNOWLEDGE BASE CONTEXT:")
	assert.Contains(t, prompt, "user: I worry about everything")
	assert.Contains(t, prompt, "USER QUESTION: I feel anxious and can't breathe")

	// The query also updated the user's context.
	uc := engine.tracker.GetContext("user-1")
	require.NotNil(t, uc)
	assert.Contains(t, uc.Themes, "anxiety")
}

func TestQueryKnowledgeFallbackPrompt(t *testing.T) {
	client := &fakeClient{
		responses: []string{"", "fallback answer"},
		errs:      []error{errors.New("model unavailable"), nil},
	}
	engine := newTestEngine(t, client)

	resp := engine.QueryKnowledge(context.Background(), "how do I cope", "user-1", nil)

	assert.Equal(t, "fallback answer", resp.Answer)
	require.Len(t, client.prompts, 2)
	assert.Contains(t, client.prompts[1], `As an AI therapist, respond empathetically to: "how do I cope"`)
}

func TestQueryKnowledgeApologyAfterDoubleFailure(t *testing.T) {
	down := errors.New("model unavailable")
	client := &fakeClient{errs: []error{down, down}}
	engine := newTestEngine(t, client)

	resp := engine.QueryKnowledge(context.Background(), "how do I cope", "user-1", nil)

	assert.Equal(t, apologyResponse, resp.Answer)
	assert.Len(t, client.prompts, 2)
}

func TestRetrievalConfidence(t *testing.T) {
	doc := func(title, content string, tags ...string) vectorstore.Document {
		return vectorstore.Document{
			ID:      "d",
			Content: content,
			Metadata: vectorstore.Metadata{Title: title, Tags: tags},
		}
	}

	tests := []struct {
		name  string
		docs  []vectorstore.Document
		query string
		want  float64
	}{
		{
			name:  "no documents",
			docs:  nil,
			query: "anxiety",
			want:  0.3,
		},
		{
			name:  "no signal clamps to floor",
			docs:  []vectorstore.Document{doc("Sleep Hygiene", "sleep content")},
			query: "anxiety",
			want:  0.4,
		},
		{
			name:  "title and content match",
			docs:  []vectorstore.Document{doc("About anxiety", "anxiety is common")},
			query: "anxiety",
			want:  0.7,
		},
		{
			name:  "all three signals clamp to ceiling",
			docs:  []vectorstore.Document{doc("About anxiety", "anxiety is common", "anxiety")},
			query: "anxiety",
			want:  0.9,
		},
		{
			name: "mean over documents",
			docs: []vectorstore.Document{
				doc("About anxiety", "anxiety is common", "anxiety"), // 1.0
				doc("Sleep Hygiene", "sleep content"),                // 0.0
			},
			query: "anxiety",
			want:  0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, retrievalConfidence(tt.docs, tt.query), 1e-9)
		})
	}
}

func TestSearchResourcesCategoryFilter(t *testing.T) {
	engine := newTestEngine(t, &fakeClient{})

	all := engine.SearchResources("anxiety coping techniques", "")
	assert.NotEmpty(t, all)
	assert.LessOrEqual(t, len(all), resourceTopK)

	coping := engine.SearchResources("anxiety coping techniques", "Coping Strategies")
	for _, doc := range coping {
		assert.Equal(t, "Coping Strategies", doc.Metadata.Category)
	}

	assert.Empty(t, engine.SearchResources("anxiety", "No Such Category"))
}

func TestAddDocumentAssignsID(t *testing.T) {
	engine := newTestEngine(t, &fakeClient{})
	before := engine.index.Count()

	id := engine.AddDocument(vectorstore.Document{
		Content:  "progressive muscle relaxation",
		Metadata: vectorstore.Metadata{Title: "PMR", Category: "Coping Strategies"},
	})

	assert.NotEmpty(t, id)
	assert.Equal(t, before+1, engine.index.Count())

	// Caller-provided IDs are kept.
	kept := engine.AddDocument(vectorstore.Document{ID: "custom", Content: "text"})
	assert.Equal(t, "custom", kept)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 150))
	assert.Equal(t, "aaaa...", truncate("aaaaaaaaaa", 4))
}
