// Package listkit contains pure in-memory list interaction utilities:
// pagination windowing, debounced search, field filtering, and single-column
// sorting.
//
// Everything here operates on already-fetched slices — no network calls.
// The same Paginator serves both configurations seen in practice: windowing
// a full locally held slice, or presenting a single server-fetched page.
package listkit
