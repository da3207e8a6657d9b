// Package embedding provides the deterministic text embedding used for
// similarity search over the knowledge base.
//
// The embedder is a bag-of-hashed-features projection, not a learned
// model: each token adds its domain weight into two hashed vector slots
// and the result is L2-normalized. Identical input text always yields the
// identical vector, which keeps retrieval reproducible across restarts.
// Callers must not assume semantic properties beyond "similar word overlap
// and domain-term density means higher cosine similarity".
package embedding

import (
	"math"
	"strings"
)

// Dimension is the fixed embedding dimensionality.
const Dimension = 100

// salt derives the secondary hash slot for each token.
const salt = "salt"

// domainTermWeights boosts clinical and coping vocabulary so that
// domain-dense documents and queries land near each other.
var domainTermWeights = map[string]float32{
	"anxiety":     1.5,
	"depression":  1.5,
	"stress":      1.3,
	"panic":       1.4,
	"worry":       1.2,
	"fear":        1.2,
	"sad":         1.3,
	"mood":        1.3,
	"therapy":     1.4,
	"counseling":  1.4,
	"treatment":   1.3,
	"breathing":   1.2,
	"relaxation":  1.2,
	"mindfulness": 1.3,
	"meditation":  1.3,
	"exercise":    1.1,
	"sleep":       1.2,
	"support":     1.2,
	"help":        1.1,
	"coping":      1.3,
	"technique":   1.2,
}

// Embedder produces fixed-length vectors from text.
type Embedder struct{}

// New creates an Embedder.
func New() *Embedder {
	return &Embedder{}
}

// Embed projects text into a Dimension-length vector.
//
// Tokens are lowercased and split on whitespace. Each token contributes
// its full domain weight at the primary hash slot and half weight at the
// salted secondary slot. The vector is L2-normalized; a zero vector (no
// tokens, or all-zero accumulation) is returned unnormalized.
func (e *Embedder) Embed(text string) []float32 {
	vector := make([]float32, Dimension)

	for _, token := range strings.Fields(strings.ToLower(text)) {
		weight, ok := domainTermWeights[token]
		if !ok {
			weight = 1.0
		}

		primary := hash(token) % Dimension
		secondary := hash(token+salt) % Dimension

		vector[primary] += weight
		vector[secondary] += weight * 0.5
	}

	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}
	magnitude := math.Sqrt(sumSquares)
	if magnitude == 0 {
		return vector
	}

	for i := range vector {
		vector[i] = float32(float64(vector[i]) / magnitude)
	}
	return vector
}

// hash is a 31x rolling hash over the string's code points, reduced to a
// non-negative value. The 32-bit wraparound is part of the contract:
// stored vectors depend on it staying stable.
func hash(s string) int {
	var h int32
	for _, r := range s {
		h = h<<5 - h + int32(r)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v)
}
