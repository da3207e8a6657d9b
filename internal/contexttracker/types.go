package contexttracker

import "time"

// SenderUser marks conversation turns authored by the user. Theme, topic,
// and insight extraction only ever look at user-authored text.
const SenderUser = "user"

// Memory caps. Oldest entries are dropped first when a cap is exceeded.
const (
	maxShortTermMemory  = 20
	maxLongTermInsights = 10
	maxProgressNotes    = 5
)

// Message is one conversation turn.
type Message struct {
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Preferences holds per-user response preferences.
type Preferences struct {
	ResponseStyle string   `json:"responseStyle"`
	FocusAreas    []string `json:"focusAreas"`
}

// PreferencesUpdate is a partial preferences change. Nil fields are left
// untouched by the merge.
type PreferencesUpdate struct {
	ResponseStyle *string
	FocusAreas    []string
}

// UserContext is the per-user conversational profile. It is created
// lazily on first update, recomputed on every turn, and persisted as a
// whole snapshot.
type UserContext struct {
	UserID              string      `json:"userId"`
	SessionCount        int         `json:"sessionCount"`
	TotalMessages       int         `json:"totalMessages"`
	MoodPatterns        []string    `json:"moodPatterns"`
	Themes              []string    `json:"themes"`
	LastInteraction     time.Time   `json:"lastInteraction"`
	Preferences         Preferences `json:"preferences"`
	ConversationSummary string      `json:"conversationSummary"`
	RecentTopics        []string    `json:"recentTopics"`
}

// LongTermMemory holds distilled insights that survive across sessions.
type LongTermMemory struct {
	KeyInsights     []string `json:"keyInsights"`
	RecurringThemes []string `json:"recurringThemes"`
	ProgressNotes   []string `json:"progressNotes"`
	Goals           []string `json:"goals"`
}

// ConversationMemory is the two-tier memory for one user: a bounded
// recent-turn buffer plus capped long-term insights. It shares the
// UserContext persistence lifecycle.
type ConversationMemory struct {
	ShortTerm []Message      `json:"shortTerm"`
	LongTerm  LongTermMemory `json:"longTerm"`
}

func newUserContext(userID string) *UserContext {
	return &UserContext{
		UserID:          userID,
		LastInteraction: time.Now(),
		Preferences: Preferences{
			ResponseStyle: "balanced",
			FocusAreas:    []string{},
		},
		MoodPatterns: []string{},
		Themes:       []string{},
		RecentTopics: []string{},
	}
}

func newConversationMemory() *ConversationMemory {
	return &ConversationMemory{
		ShortTerm: []Message{},
		LongTerm: LongTermMemory{
			KeyInsights:     []string{},
			RecurringThemes: []string{},
			ProgressNotes:   []string{},
			Goals:           []string{},
		},
	}
}
