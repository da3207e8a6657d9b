package contexttracker

import "strings"

// keywordGroup is one enumerable detection rule: a label plus the
// keywords that vote for it. Keeping rules in tables (rather than inline
// conditionals) keeps them independently testable and extensible.
type keywordGroup struct {
	label    string
	keywords []string
}

// themeGroups detect long-running conversation themes. A theme is active
// when at least two of its keywords appear anywhere in the user text.
var themeGroups = []keywordGroup{
	{"anxiety", []string{"anxious", "worry", "worried", "nervous", "panic", "fear", "scared"}},
	{"depression", []string{"sad", "depressed", "down", "hopeless", "empty", "worthless"}},
	{"stress", []string{"stressed", "pressure", "overwhelmed", "burden", "exhausted"}},
	{"relationships", []string{"relationship", "partner", "family", "friends", "social", "lonely"}},
	{"work", []string{"work", "job", "career", "boss", "colleague", "workplace"}},
	{"sleep", []string{"sleep", "insomnia", "tired", "fatigue", "rest", "dreams"}},
	{"self-esteem", []string{"confidence", "self-worth", "insecure", "inadequate", "failure"}},
	{"trauma", []string{"trauma", "ptsd", "flashback", "trigger", "abuse", "assault"}},
	{"grief", []string{"grief", "loss", "death", "mourning", "bereavement"}},
}

// topicGroups detect what was concretely discussed recently. Looser than
// themes: a single keyword hit activates a topic.
var topicGroups = []keywordGroup{
	{"coping strategies", []string{"cope", "coping", "manage", "handle", "deal with"}},
	{"therapy techniques", []string{"breathing", "meditation", "mindfulness", "exercise"}},
	{"medication", []string{"medication", "pills", "prescription", "doctor", "psychiatrist"}},
	{"support system", []string{"support", "help", "friends", "family", "therapist"}},
	{"daily routine", []string{"routine", "schedule", "daily", "habits", "activities"}},
	{"goals", []string{"goal", "goals", "objective", "plan", "future", "improve"}},
}

// moodGroups detect self-reported mood direction. One hit per group is
// enough, and several patterns may co-occur.
var moodGroups = []keywordGroup{
	{"improving", []string{"better", "improving", "progress", "good", "positive"}},
	{"declining", []string{"worse", "declining", "bad", "terrible", "awful"}},
	{"stable", []string{"same", "stable", "consistent", "steady"}},
	{"fluctuating", []string{"up and down", "varies", "changes", "different", "mixed"}},
}

// themeThreshold is the keyword-hit count required to activate a theme.
const themeThreshold = 2

// ExtractThemes returns the active themes for the given user messages.
// All messages are concatenated; a theme needs at least two keyword hits
// across the combined text. Output preserves rule-table order.
func ExtractThemes(messages []string) []string {
	return matchGroups(messages, themeGroups, themeThreshold)
}

// extractRecentTopics returns topics with at least one keyword hit.
func extractRecentTopics(messages []string) []string {
	if len(messages) == 0 {
		return []string{}
	}
	return matchGroups(messages, topicGroups, 1)
}

// analyzeMoodPatterns returns the mood-direction patterns with at least
// one keyword hit in the supplied messages.
func analyzeMoodPatterns(messages []string) []string {
	return matchGroups(messages, moodGroups, 1)
}

func matchGroups(messages []string, groups []keywordGroup, threshold int) []string {
	text := strings.ToLower(strings.Join(messages, " "))

	labels := []string{}
	for _, group := range groups {
		hits := 0
		for _, keyword := range group.keywords {
			if strings.Contains(text, keyword) {
				hits++
			}
		}
		if hits >= threshold {
			labels = append(labels, group.label)
		}
	}
	return labels
}

// summarize assembles the templated conversation summary from the themes
// and topics of the most recent user messages.
func summarize(recentMessages []string) string {
	if len(recentMessages) == 0 {
		return "No conversation history"
	}

	themes := ExtractThemes(recentMessages)
	topics := extractRecentTopics(recentMessages)

	var b strings.Builder
	b.WriteString("Recent conversation focused on")

	if len(themes) > 0 {
		b.WriteString(" " + strings.Join(themes, ", "))
	}
	if len(topics) > 0 {
		if len(themes) > 0 {
			b.WriteString(", discussing ")
		} else {
			b.WriteString(" ")
		}
		b.WriteString(strings.Join(topics, ", "))
	}
	if len(themes) == 0 && len(topics) == 0 {
		b.WriteString(" general mental health support")
	}

	b.WriteString(".")
	return b.String()
}

// findRecurringThemes returns themes detected independently in at least
// two distinct messages. Per-message detection still applies the normal
// two-keyword threshold, so a single keyword echoed across turns does
// not count.
func findRecurringThemes(messages []string) []string {
	counts := map[string]int{}
	order := []string{}

	for _, message := range messages {
		for _, theme := range ExtractThemes([]string{message}) {
			if counts[theme] == 0 {
				order = append(order, theme)
			}
			counts[theme]++
		}
	}

	recurring := []string{}
	for _, theme := range order {
		if counts[theme] >= 2 {
			recurring = append(recurring, theme)
		}
	}
	return recurring
}
