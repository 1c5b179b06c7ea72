// Package common contains shared constants and sentinel errors used across
// StitchDesk client components.
package common

// AuthHeaderName is the HTTP header used to carry the bearer token on
// outbound requests.
const AuthHeaderName = "Authorization"

// RequestIDHeaderName carries a per-request identifier so backend logs can
// be correlated with client-side ones.
const RequestIDHeaderName = "X-Request-ID"

// MethodOverrideField is the multipart form field used to tunnel PUT
// semantics through a POST body. Backends that cannot parse multipart PUT
// bodies read this field instead of the HTTP verb.
const MethodOverrideField = "_method"
