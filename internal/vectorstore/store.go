// Package vectorstore stores embedded knowledge-base documents and ranks
// them by cosine similarity against query embeddings.
//
// The index is in-memory and brute-force (O(n*d) per search), which is
// the right trade-off for a curated knowledge base of tens of documents.
// It is read-mostly after the initial seed; a RWMutex allows concurrent
// searches while serializing writes.
package vectorstore

import (
	"math"
	"sort"
	"strings"
	"sync"
	"time"
)

// Embedder produces the fixed-length vectors the index stores and queries.
type Embedder interface {
	Embed(text string) []float32
}

// Index is a brute-force cosine-similarity index over documents.
type Index struct {
	mu       sync.RWMutex
	embedder Embedder
	entries  map[string]entry
}

// NewIndex creates an empty index using the given embedder.
func NewIndex(embedder Embedder) *Index {
	return &Index{
		embedder: embedder,
		entries:  make(map[string]entry),
	}
}

// AddDocument embeds the document's title, content, and tags and stores
// it keyed by ID. Adding a document with an existing ID overwrites it.
func (i *Index) AddDocument(doc Document) {
	text := doc.Metadata.Title + " " + doc.Content + " " + strings.Join(doc.Metadata.Tags, " ")
	vector := i.embedder.Embed(text)

	i.mu.Lock()
	i.entries[doc.ID] = entry{ID: doc.ID, Vector: vector, Document: doc}
	i.mu.Unlock()

	documentsStored.Set(float64(i.Count()))
}

// SimilaritySearch embeds the query and returns up to k documents ordered
// by descending cosine similarity. An empty index yields an empty slice;
// the search never fails.
func (i *Index) SimilaritySearch(query string, k int) []Document {
	start := time.Now()
	defer func() {
		searchDuration.Observe(time.Since(start).Seconds())
		searchesTotal.Inc()
	}()

	i.mu.RLock()
	defer i.mu.RUnlock()

	if len(i.entries) == 0 || k <= 0 {
		return []Document{}
	}

	queryVector := i.embedder.Embed(query)

	type scored struct {
		doc        Document
		similarity float64
	}
	results := make([]scored, 0, len(i.entries))
	for _, e := range i.entries {
		results = append(results, scored{doc: e.Document, similarity: cosineSimilarity(queryVector, e.Vector)})
	}

	sort.SliceStable(results, func(a, b int) bool {
		if results[a].similarity != results[b].similarity {
			return results[a].similarity > results[b].similarity
		}
		// Deterministic order for equal scores.
		return results[a].doc.ID < results[b].doc.ID
	})

	if k > len(results) {
		k = len(results)
	}
	docs := make([]Document, k)
	for n := 0; n < k; n++ {
		docs[n] = results[n].doc
	}
	return docs
}

// RemoveDocument deletes the document with the given ID, if present.
func (i *Index) RemoveDocument(id string) {
	i.mu.Lock()
	delete(i.entries, id)
	i.mu.Unlock()

	documentsStored.Set(float64(i.Count()))
}

// Clear removes every document from the index.
func (i *Index) Clear() {
	i.mu.Lock()
	i.entries = make(map[string]entry)
	i.mu.Unlock()

	documentsStored.Set(0)
}

// Count returns the number of stored documents.
func (i *Index) Count() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.entries)
}

// DocumentsByCategory returns documents whose category matches exactly.
func (i *Index) DocumentsByCategory(category string) []Document {
	i.mu.RLock()
	defer i.mu.RUnlock()

	results := []Document{}
	for _, e := range i.entries {
		if e.Document.Metadata.Category == category {
			results = append(results, e.Document)
		}
	}
	sortByID(results)
	return results
}

// DocumentsByTags returns documents with at least one tag that contains
// any of the given tags, case-insensitively.
func (i *Index) DocumentsByTags(tags []string) []Document {
	i.mu.RLock()
	defer i.mu.RUnlock()

	results := []Document{}
	for _, e := range i.entries {
		if matchesAnyTag(e.Document.Metadata.Tags, tags) {
			results = append(results, e.Document)
		}
	}
	sortByID(results)
	return results
}

func matchesAnyTag(docTags, queryTags []string) bool {
	for _, queryTag := range queryTags {
		lowered := strings.ToLower(queryTag)
		for _, docTag := range docTags {
			if strings.Contains(strings.ToLower(docTag), lowered) {
				return true
			}
		}
	}
	return false
}

func sortByID(docs []Document) {
	sort.Slice(docs, func(a, b int) bool { return docs[a].ID < docs[b].ID })
}

// cosineSimilarity returns the cosine of the angle between two vectors.
// Mismatched lengths and zero vectors score 0 so a degenerate embedding
// never poisons a search with NaN.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for n := range a {
		dot += float64(a[n]) * float64(b[n])
		normA += float64(a[n]) * float64(a[n])
		normB += float64(b[n]) * float64(b[n])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
