// Package services maps domain operations onto Remote Client calls against
// fixed endpoint templates.
//
// Each resource service (clients, orders, accounts, dropdown settings) has
// the same shape: List/GetByID/Create/Update/Delete, one request per call.
// Create and Update branch on the presence of binary attachments: with
// attachments the body is multipart/form-data via api.Client.UploadFile
// (updates additionally tunnel PUT through a _method override field, since
// the backend does not parse multipart PUT bodies); without attachments the
// body is plain JSON.
//
// Services classify nothing themselves — the Remote Client already returns
// the failure taxonomy — and they perform no client-side pagination; they
// hand the backend's page envelope to the caller verbatim.
package services
