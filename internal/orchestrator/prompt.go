package orchestrator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/solaceworks/solaced/internal/contexttracker"
	"github.com/solaceworks/solaced/internal/vectorstore"
)

// buildKnowledgePrompt assembles the grounded prompt: retrieved
// knowledge, the trailing conversation window, a user-context block, the
// question, and fixed response instructions.
func buildKnowledgePrompt(question string, docs []vectorstore.Document, history []contexttracker.Message, uc *contexttracker.UserContext) string {
	blocks := make([]string, 0, len(docs))
	for _, doc := range docs {
		blocks = append(blocks, "Source: "+doc.Metadata.Title+"\nContent: "+doc.Content)
	}
	knowledge := strings.Join(blocks, "\n\n")

	tail := history
	if len(tail) > historyWindow {
		tail = tail[len(tail)-historyWindow:]
	}
	turns := make([]string, 0, len(tail))
	for _, msg := range tail {
		turns = append(turns, msg.Sender+": "+msg.Text)
	}
	conversation := strings.Join(turns, "\n")

	moodPatterns := "No data"
	themes := "No themes identified"
	sessions := 0
	if uc != nil {
		if len(uc.MoodPatterns) > 0 {
			moodPatterns = strings.Join(uc.MoodPatterns, ", ")
		}
		if len(uc.Themes) > 0 {
			themes = strings.Join(uc.Themes, ", ")
		}
		sessions = uc.SessionCount
	}

	return `You are an AI mental health therapy assistant with access to professional knowledge resources. Use the provided context to give accurate, empathetic, and evidence-based responses.

KNOWLEDGE BASE CONTEXT:
` + knowledge + `

CONVERSATION HISTORY:
` + conversation + `

USER CONTEXT:
- Recent mood patterns: ` + moodPatterns + `
- Common themes: ` + themes + `
- Session count: ` + strconv.Itoa(sessions) + `

USER QUESTION: ` + question + `

INSTRUCTIONS:
1. Use the knowledge base context to inform your response
2. Reference specific techniques, strategies, or information from the context when relevant
3. Maintain a warm, empathetic, and professional tone
4. If the knowledge base doesn't contain relevant information, draw on general therapeutic principles
5. Always prioritize user safety and recommend professional help for serious concerns
6. Keep responses concise but comprehensive (200-400 words)
7. When referencing sources, mention them naturally (e.g., "Research shows..." or "A helpful technique is...")

RESPONSE:`
}

// buildFallbackPrompt is the minimal ungrounded prompt used when the
// grounded completion fails.
func buildFallbackPrompt(question string) string {
	return fmt.Sprintf("As an AI therapist, respond empathetically to: %q", question)
}
