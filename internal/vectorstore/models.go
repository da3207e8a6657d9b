package vectorstore

// Metadata describes a knowledge-base document.
type Metadata struct {
	// Title is the human-readable document title.
	Title string `json:"title"`

	// Category groups documents (e.g. "Coping Strategies").
	Category string `json:"category"`

	// Tags are labels used for tag-based lookups and relevance scoring.
	Tags []string `json:"tags"`

	// Source names where the content came from (e.g. "Clinical Guidelines").
	Source string `json:"source"`
}

// Document is an immutable knowledge-base entry. Documents are owned by
// the index once added; callers must not mutate them afterwards.
type Document struct {
	// ID is the unique document identifier.
	ID string `json:"id"`

	// Content is the document text.
	Content string `json:"content"`

	// Metadata holds title, category, tags, and source.
	Metadata Metadata `json:"metadata"`
}

// entry pairs a document with its embedding. All vectors in one index
// share the same dimensionality.
type entry struct {
	ID       string    `json:"id"`
	Vector   []float32 `json:"vector"`
	Document Document  `json:"document"`
}
