package models

// Page is the backend's pagination envelope, returned verbatim by the list
// endpoints. Client-side windowing of already-fetched data is the job of
// listkit, not of this type.
type Page[T any] struct {
	Data        []T   `json:"data"`
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int   `json:"total"`
	From        int   `json:"from"`
	To          int   `json:"to"`
}

// Single wraps a single-resource response body ({"data": {...}}).
type Single[T any] struct {
	Data T `json:"data"`
}
