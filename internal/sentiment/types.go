package sentiment

import "time"

// Label classifies the overall polarity of a text.
type Label string

const (
	// LabelPositive indicates overall positive sentiment.
	LabelPositive Label = "positive"

	// LabelNegative indicates overall negative sentiment.
	LabelNegative Label = "negative"

	// LabelNeutral indicates sentiment too weak to classify either way.
	LabelNeutral Label = "neutral"
)

// Emotions holds per-category emotion intensities in [0,1]. Categories
// are independent: they are not mutually exclusive and need not sum to 1.
type Emotions struct {
	Anxiety    float64 `json:"anxiety"`
	Depression float64 `json:"depression"`
	Happiness  float64 `json:"happiness"`
	Anger      float64 `json:"anger"`
	Fear       float64 `json:"fear"`
}

// Result is the outcome of analyzing one text. It is never mutated after
// creation.
type Result struct {
	// Score is the modified sentiment score, clamped to [-1, 1].
	Score float64 `json:"score"`

	// Label is positive, negative, or neutral.
	Label Label `json:"label"`

	// Confidence estimates label reliability, in (0, 1] with a 0.1 floor.
	Confidence float64 `json:"confidence"`

	// Emotions are the per-category keyword densities.
	Emotions Emotions `json:"emotions"`
}

// TimePoint is one sentiment observation in a user's history.
type TimePoint struct {
	Sentiment Result    `json:"sentiment"`
	Timestamp time.Time `json:"timestamp"`
}

// Trend classifies the direction of a mood series.
type Trend string

const (
	// TrendImproving means the recent window scores meaningfully above
	// the preceding one.
	TrendImproving Trend = "improving"

	// TrendDeclining means the recent window scores meaningfully below
	// the preceding one.
	TrendDeclining Trend = "declining"

	// TrendStable means no meaningful difference between windows.
	TrendStable Trend = "stable"
)

// MoodTrend summarizes a sentiment time series. It is derived on demand
// and never persisted.
type MoodTrend struct {
	// Trend is the recent-versus-older window classification.
	Trend Trend `json:"trend"`

	// AverageScore is the mean score over the entire series.
	AverageScore float64 `json:"averageScore"`

	// EmotionalProfile is the elementwise mean of all emotion vectors.
	EmotionalProfile Emotions `json:"emotionalProfile"`

	// Volatility is the population standard deviation of all scores.
	Volatility float64 `json:"volatility"`
}

// DominantEmotion names the strongest emotion in a profile.
type DominantEmotion struct {
	Emotion   string  `json:"emotion"`
	Intensity float64 `json:"intensity"`
}
