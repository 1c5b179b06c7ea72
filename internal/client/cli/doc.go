// Package cli provides the interactive StitchDesk command-line client.
//
// It wires configuration, the token store, the API client, and the resource
// services into an interactive REPL. Typical flow: prompt for credentials,
// start a background connectivity watcher, and execute user commands against
// the backend.
//
// Key features:
//   - Login / Register / Logout (the token is persisted between sessions)
//   - Paginated listing of clients, orders, accounts and dropdown settings
//   - An order browser with local page windowing, search, filter and sort
//   - Client create/update with brand logo upload
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
