// Package sentiment scores text against fixed positive/negative lexicons
// with contextual modifiers, extracts per-category emotion intensities,
// and classifies mood trends over sentiment time series.
//
// This is lexicon-based scoring, not a trained model. The word lists,
// modifier multipliers, and thresholds are behavioral contracts preserved
// exactly; tests are written against the literal constants.
package sentiment

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

var punctuation = regexp.MustCompile(`[^\w\s]`)

// Analyzer performs lexicon-based sentiment and emotion analysis.
type Analyzer struct {
	emotionSets map[string]map[string]struct{}
}

// NewAnalyzer creates an Analyzer with the fixed lexicons.
func NewAnalyzer() *Analyzer {
	emotionSets := make(map[string]map[string]struct{}, len(emotionKeywords))
	for emotion, keywords := range emotionKeywords {
		emotionSets[emotion] = wordSet(keywords...)
	}
	return &Analyzer{emotionSets: emotionSets}
}

// Analyze scores a single text.
//
// The base score is the positive-token fraction minus the negative-token
// fraction, adjusted by contextual modifiers (negation, one intensifier
// or one diminisher, domain overrides) and clamped to [-1, 1].
func (a *Analyzer) Analyze(text string) Result {
	tokens := tokenize(text)

	var positiveCount, negativeCount int
	for _, token := range tokens {
		if _, ok := positiveWords[token]; ok {
			positiveCount++
		}
		if _, ok := negativeWords[token]; ok {
			negativeCount++
		}
	}

	var base float64
	if len(tokens) > 0 {
		base = float64(positiveCount)/float64(len(tokens)) - float64(negativeCount)/float64(len(tokens))
	}

	score := applyModifiers(text, base)
	label, confidence := labelAndConfidence(score)

	return Result{
		Score:      score,
		Label:      label,
		Confidence: confidence,
		Emotions:   a.analyzeEmotions(tokens),
	}
}

// Batch analyzes each text in order.
func (a *Analyzer) Batch(texts []string) []Result {
	results := make([]Result, len(texts))
	for i, text := range texts {
		results[i] = a.Analyze(text)
	}
	return results
}

// tokenize strips punctuation, lowercases, and splits on whitespace.
func tokenize(text string) []string {
	cleaned := punctuation.ReplaceAllString(strings.ToLower(text), " ")
	return strings.Fields(cleaned)
}

// applyModifiers adjusts the base score from the surrounding text.
// Priority order: negation, then at most one intensifier, then at most
// one diminisher, then domain overrides, then the final clamp.
func applyModifiers(text string, base float64) float64 {
	score := base
	lowered := strings.ToLower(text)

	for _, negation := range negationWords {
		if strings.Contains(lowered, negation) {
			score = -score * 0.8
			break
		}
	}

	intensified := false
	for _, m := range intensifiers {
		if strings.Contains(lowered, m.phrase) {
			score *= m.multiplier
			intensified = true
			break
		}
	}

	if !intensified {
		for _, m := range diminishers {
			if strings.Contains(lowered, m.phrase) {
				score *= m.multiplier
				break
			}
		}
	}

	if strings.Contains(lowered, "feeling better") || strings.Contains(lowered, "getting better") {
		score = math.Max(score, 0.3)
	}
	if strings.Contains(lowered, "getting worse") || strings.Contains(lowered, "feeling worse") {
		score = math.Min(score, -0.3)
	}

	return clamp(score, -1, 1)
}

// labelAndConfidence derives the label from the modified score. Scores
// inside (-0.1, 0.1) are neutral with confidence growing toward zero;
// otherwise the sign decides and confidence scales with magnitude,
// capped at 0.95 and floored at 0.1.
func labelAndConfidence(score float64) (Label, float64) {
	abs := math.Abs(score)

	var label Label
	var confidence float64

	switch {
	case abs < 0.1:
		label = LabelNeutral
		confidence = 1 - abs*5
	case score > 0:
		label = LabelPositive
		confidence = math.Min(0.95, abs*2)
	default:
		label = LabelNegative
		confidence = math.Min(0.95, abs*2)
	}

	return label, math.Max(0.1, confidence)
}

// analyzeEmotions computes per-category keyword densities. Each category
// counts token matches against its keyword set divided by total tokens;
// a text with no tokens scores zero everywhere.
func (a *Analyzer) analyzeEmotions(tokens []string) Emotions {
	if len(tokens) == 0 {
		return Emotions{}
	}

	counts := make(map[string]int, len(a.emotionSets))
	for emotion, set := range a.emotionSets {
		for _, token := range tokens {
			if _, ok := set[token]; ok {
				counts[emotion]++
			}
		}
	}

	total := float64(len(tokens))
	return Emotions{
		Anxiety:    float64(counts["anxiety"]) / total,
		Depression: float64(counts["depression"]) / total,
		Happiness:  float64(counts["happiness"]) / total,
		Anger:      float64(counts["anger"]) / total,
		Fear:       float64(counts["fear"]) / total,
	}
}

// Dominant returns the strongest emotion in a profile, or "neutral" when
// every intensity is zero.
func Dominant(emotions Emotions) DominantEmotion {
	dominant := DominantEmotion{Emotion: "neutral"}

	for _, candidate := range []struct {
		name      string
		intensity float64
	}{
		{"anxiety", emotions.Anxiety},
		{"depression", emotions.Depression},
		{"happiness", emotions.Happiness},
		{"anger", emotions.Anger},
		{"fear", emotions.Fear},
	} {
		if candidate.intensity > dominant.Intensity {
			dominant = DominantEmotion{Emotion: candidate.name, Intensity: candidate.intensity}
		}
	}

	return dominant
}

// emotionInsightThreshold is the minimum intensity worth surfacing.
const emotionInsightThreshold = 0.05

// Insights renders human-readable observations for every emotion above
// the reporting threshold.
func Insights(emotions Emotions) []string {
	insights := []string{}

	if emotions.Anxiety > emotionInsightThreshold {
		insights = append(insights, fmt.Sprintf("Anxiety levels detected (%.1f%%)", emotions.Anxiety*100))
	}
	if emotions.Depression > emotionInsightThreshold {
		insights = append(insights, fmt.Sprintf("Signs of depression detected (%.1f%%)", emotions.Depression*100))
	}
	if emotions.Happiness > emotionInsightThreshold {
		insights = append(insights, fmt.Sprintf("Positive emotions present (%.1f%%)", emotions.Happiness*100))
	}
	if emotions.Anger > emotionInsightThreshold {
		insights = append(insights, fmt.Sprintf("Anger indicators found (%.1f%%)", emotions.Anger*100))
	}
	if emotions.Fear > emotionInsightThreshold {
		insights = append(insights, fmt.Sprintf("Fear-related content detected (%.1f%%)", emotions.Fear*100))
	}

	return insights
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
