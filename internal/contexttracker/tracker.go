// Package contexttracker maintains per-user conversational context:
// detected themes, recent topics, mood patterns, and a two-tier
// short-term/long-term memory. State is recomputed from the full
// conversation history on every update and persisted to the key-value
// store as whole snapshots.
//
// Persistence is best-effort. A store failure is logged and swallowed:
// the in-memory state remains authoritative and is re-derived from
// conversation history on the next update, so no retry is needed.
package contexttracker

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/solaceworks/solaced/internal/kvstore"
)

// Store keys. Each holds one serialized map keyed by user ID.
const (
	contextsKey = "solace:user_contexts"
	memoriesKey = "solace:conversation_memories"
)

// recentTopicWindow and moodPatternWindow bound how far back the looser
// detectors look.
const (
	recentTopicWindow = 5
	moodPatternWindow = 10
)

// Tracker tracks context and memory for every user.
//
// Writes to a given user are serialized by the tracker mutex; reads
// return snapshots so callers never observe in-place mutation.
type Tracker struct {
	mu       sync.Mutex
	store    kvstore.Store
	logger   *zap.Logger
	contexts map[string]*UserContext
	memories map[string]*ConversationMemory
}

// NewTracker creates a tracker backed by the given store and loads any
// previously persisted state. Load failures are logged and ignored.
func NewTracker(store kvstore.Store, logger *zap.Logger) *Tracker {
	t := &Tracker{
		store:    store,
		logger:   logger,
		contexts: make(map[string]*UserContext),
		memories: make(map[string]*ConversationMemory),
	}
	t.load(context.Background())
	return t
}

// UpdateContext recomputes the user's context from the full conversation
// history and persists the result. It is idempotent per call: feeding
// the same history twice yields the same state.
func (t *Tracker) UpdateContext(ctx context.Context, userID string, history []Message) {
	t.mu.Lock()
	defer t.mu.Unlock()

	contextUpdatesTotal.Inc()

	uc, ok := t.contexts[userID]
	if !ok {
		uc = newUserContext(userID)
		t.contexts[userID] = uc
	}

	uc.TotalMessages = len(history)
	uc.LastInteraction = time.Now()

	userMessages := userTexts(history)
	uc.Themes = ExtractThemes(userMessages)
	uc.RecentTopics = extractRecentTopics(lastN(userMessages, recentTopicWindow))
	uc.MoodPatterns = analyzeMoodPatterns(lastN(userMessages, moodPatternWindow))
	uc.ConversationSummary = summarize(lastN(userMessages, recentTopicWindow))

	t.updateMemory(userID, history, userMessages)

	t.persist(ctx)
}

// updateMemory refreshes short-term memory from the history tail and
// folds new insights into the capped long-term lists.
func (t *Tracker) updateMemory(userID string, history []Message, userMessages []string) {
	memory, ok := t.memories[userID]
	if !ok {
		memory = newConversationMemory()
		t.memories[userID] = memory
	}

	tail := history
	if len(tail) > maxShortTermMemory {
		tail = tail[len(tail)-maxShortTermMemory:]
	}
	shortTerm := make([]Message, len(tail))
	for i, msg := range tail {
		if msg.Timestamp.IsZero() {
			msg.Timestamp = time.Now()
		}
		shortTerm[i] = msg
	}
	memory.ShortTerm = shortTerm

	insights := append(memory.LongTerm.KeyInsights, extractInsights(userMessages)...)
	if len(insights) > maxLongTermInsights {
		insights = insights[len(insights)-maxLongTermInsights:]
	}
	memory.LongTerm.KeyInsights = insights

	shortTermUserTexts := userTexts(memory.ShortTerm)
	memory.LongTerm.RecurringThemes = findRecurringThemes(shortTermUserTexts)
}

// GetContext returns a snapshot of the user's context, or nil if the
// user has never been tracked.
func (t *Tracker) GetContext(userID string) *UserContext {
	t.mu.Lock()
	defer t.mu.Unlock()

	uc, ok := t.contexts[userID]
	if !ok {
		return nil
	}
	snapshot := *uc
	return &snapshot
}

// GetConversationMemory returns a snapshot of the user's memory, or nil
// if the user has never been tracked.
func (t *Tracker) GetConversationMemory(userID string) *ConversationMemory {
	t.mu.Lock()
	defer t.mu.Unlock()

	memory, ok := t.memories[userID]
	if !ok {
		return nil
	}
	snapshot := *memory
	return &snapshot
}

// UpdateUserPreferences merges the non-nil fields of update into the
// user's preferences. Unknown users are ignored.
func (t *Tracker) UpdateUserPreferences(ctx context.Context, userID string, update PreferencesUpdate) {
	t.mu.Lock()
	defer t.mu.Unlock()

	uc, ok := t.contexts[userID]
	if !ok {
		return
	}
	if update.ResponseStyle != nil {
		uc.Preferences.ResponseStyle = *update.ResponseStyle
	}
	if update.FocusAreas != nil {
		uc.Preferences.FocusAreas = update.FocusAreas
	}
	t.persist(ctx)
}

// IncrementSessionCount bumps the user's session counter. Unknown users
// are ignored.
func (t *Tracker) IncrementSessionCount(ctx context.Context, userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	uc, ok := t.contexts[userID]
	if !ok {
		return
	}
	uc.SessionCount++
	t.persist(ctx)
}

// AddGoal appends a goal to the user's long-term memory. Unknown users
// are ignored.
func (t *Tracker) AddGoal(ctx context.Context, userID, goal string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	memory, ok := t.memories[userID]
	if !ok {
		return
	}
	memory.LongTerm.Goals = append(memory.LongTerm.Goals, goal)
	t.persist(ctx)
}

// AddProgressNote appends a progress note, keeping only the most recent
// maxProgressNotes. Unknown users are ignored.
func (t *Tracker) AddProgressNote(ctx context.Context, userID, note string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	memory, ok := t.memories[userID]
	if !ok {
		return
	}
	notes := append(memory.LongTerm.ProgressNotes, note)
	if len(notes) > maxProgressNotes {
		notes = notes[len(notes)-maxProgressNotes:]
	}
	memory.LongTerm.ProgressNotes = notes
	t.persist(ctx)
}

// ClearUserData removes both the context and memory for one user. This
// is the only deletion the tracker supports: whole-record clear.
func (t *Tracker) ClearUserData(ctx context.Context, userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.contexts, userID)
	delete(t.memories, userID)
	t.persist(ctx)
}

// Users returns the IDs of every tracked user, sorted.
func (t *Tracker) Users() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	users := make([]string, 0, len(t.contexts))
	for userID := range t.contexts {
		users = append(users, userID)
	}
	sort.Strings(users)
	return users
}

// ContextSummary renders a one-paragraph description of a user's state
// for inclusion in prompts and debugging output.
func (t *Tracker) ContextSummary(userID string) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	uc, haveContext := t.contexts[userID]
	memory, haveMemory := t.memories[userID]
	if !haveContext || !haveMemory {
		return "No context available"
	}

	return "User has had " + strconv.Itoa(uc.SessionCount) + " sessions with " + strconv.Itoa(uc.TotalMessages) +
		" total messages. Current themes: " + joinOr(uc.Themes, "None identified") +
		". Recent topics: " + joinOr(uc.RecentTopics, "None") +
		". Mood patterns: " + joinOr(uc.MoodPatterns, "Stable") +
		". Active goals: " + strconv.Itoa(len(memory.LongTerm.Goals))
}

// load hydrates in-memory state from the store. Missing keys are normal
// on first start; anything else is logged and skipped.
func (t *Tracker) load(ctx context.Context) {
	if data, err := t.store.Get(ctx, contextsKey); err == nil {
		if err := json.Unmarshal(data, &t.contexts); err != nil {
			persistenceFailuresTotal.WithLabelValues("load").Inc()
			t.logger.Warn("failed to decode user contexts, starting fresh", zap.Error(err))
			t.contexts = make(map[string]*UserContext)
		}
	} else if err != kvstore.ErrKeyNotFound {
		persistenceFailuresTotal.WithLabelValues("load").Inc()
		t.logger.Warn("failed to load user contexts", zap.Error(err))
	}

	if data, err := t.store.Get(ctx, memoriesKey); err == nil {
		if err := json.Unmarshal(data, &t.memories); err != nil {
			persistenceFailuresTotal.WithLabelValues("load").Inc()
			t.logger.Warn("failed to decode conversation memories, starting fresh", zap.Error(err))
			t.memories = make(map[string]*ConversationMemory)
		}
	} else if err != kvstore.ErrKeyNotFound {
		persistenceFailuresTotal.WithLabelValues("load").Inc()
		t.logger.Warn("failed to load conversation memories", zap.Error(err))
	}
}

// persist writes both maps as whole snapshots. Failures are logged and
// swallowed: state is re-derived from conversation history on the next
// update. Callers must hold the tracker mutex.
func (t *Tracker) persist(ctx context.Context) {
	contexts, err := json.Marshal(t.contexts)
	if err == nil {
		err = t.store.Set(ctx, contextsKey, contexts)
	}
	if err != nil {
		persistenceFailuresTotal.WithLabelValues("save").Inc()
		t.logger.Warn("failed to persist user contexts", zap.Error(err))
	}

	memories, err := json.Marshal(t.memories)
	if err == nil {
		err = t.store.Set(ctx, memoriesKey, memories)
	}
	if err != nil {
		persistenceFailuresTotal.WithLabelValues("save").Inc()
		t.logger.Warn("failed to persist conversation memories", zap.Error(err))
	}
}

func userTexts(history []Message) []string {
	texts := []string{}
	for _, msg := range history {
		if msg.Sender == SenderUser {
			texts = append(texts, msg.Text)
		}
	}
	return texts
}

func lastN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
