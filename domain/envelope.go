package domain

// DefaultPerPage is the page size written into newly created envelopes.
// Collections are never actually paged; the value exists so the meta block
// matches what list consumers expect from a paginated API.
const DefaultPerPage = 15

// Envelope is the unit persisted per collection: the ordered records plus
// pagination metadata. It is read, mutated, and rewritten wholesale on every
// repository operation.
type Envelope[T any] struct {
	Data  []T   `json:"data"`
	Links Links `json:"links"`
	Meta  Meta  `json:"meta"`
}

// Links holds pagination navigation paths. Values are opaque path strings;
// prev and next stay null while everything fits on one page.
type Links struct {
	First *string `json:"first"`
	Last  *string `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

// Meta is derived bookkeeping, never independently authoritative.
// Total and To must equal len(Data) after any mutation; LastPage stays 1
// because stored collections are single-page.
type Meta struct {
	CurrentPage int `json:"current_page"`
	From        int `json:"from"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	To          int `json:"to"`
	Total       int `json:"total"`
}

// NewEnvelope returns an empty single-page envelope, created lazily by
// repositories on the first write to a collection.
func NewEnvelope[T any]() *Envelope[T] {
	return &Envelope[T]{
		Data: []T{},
		Meta: Meta{
			CurrentPage: 1,
			From:        1,
			LastPage:    1,
			PerPage:     DefaultPerPage,
		},
	}
}
