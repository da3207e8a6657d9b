package contexttracker

import (
	"regexp"
	"strings"
)

// insightRule pairs an extraction pattern with the insight type it
// produces. Matches are recorded as "type: matched text".
type insightRule struct {
	kind    string
	pattern *regexp.Regexp
}

// insightRules extract candidate long-term insights from user text.
// The patterns are deliberately greedy: a realization statement captures
// the rest of the sentence the user wrote.
var insightRules = []insightRule{
	{"realization", regexp.MustCompile(`(?i)i (realize|realized|understand|learned) (that )?(.+)`)},
	{"pattern recognition", regexp.MustCompile(`(?i)i (feel|felt) (better|worse|different) when (.+)`)},
	{"coping strategy", regexp.MustCompile(`(?i)(.+) (helps|helped|works|worked) for me`)},
	{"goal setting", regexp.MustCompile(`(?i)my goal is to (.+)`)},
}

// maxMatchesPerRule caps how many insights one rule contributes per
// extraction pass.
const maxMatchesPerRule = 2

// extractInsights scans the combined user text with every insight rule.
func extractInsights(messages []string) []string {
	text := strings.Join(messages, " ")

	insights := []string{}
	for _, rule := range insightRules {
		matches := rule.pattern.FindAllString(text, -1)
		if len(matches) > maxMatchesPerRule {
			matches = matches[:maxMatchesPerRule]
		}
		for _, match := range matches {
			insights = append(insights, rule.kind+": "+strings.TrimSpace(match))
		}
	}
	return insights
}
