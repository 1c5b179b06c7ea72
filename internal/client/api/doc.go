// Package api contains the single point of contact with the StitchDesk
// backend.
//
// # Overview
//
// The package provides:
//  1. A Client that owns cross-cutting request concerns: base URL, fixed
//     timeout, default JSON headers, bearer-token injection from an injected
//     token.Store, and per-request X-Request-ID generation.
//  2. Post-response hooks registered on the Client. The reaction to an
//     authentication failure (HTTP 401 clears the stored token) is one such
//     hook, registered at construction so the classify-then-react logic is
//     in one visible place rather than buried in transport middleware.
//  3. Verb methods (Get, Post, Put, Patch, Delete) that perform exactly one
//     request each — no retries, no backoff — and fail with a classified
//     error (see errors.go and internal/common).
//  4. UploadFile, a multipart/form-data request builder for file-bearing
//     calls, with an optional upload progress callback.
//
// The Client holds no queue and does no request coalescing: any number of
// calls may be in flight concurrently, each independent.
package api
