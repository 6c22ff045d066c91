// Package services defines the shared error taxonomy used across draftd
// components.
//
// Every component fails fast with a typed sentinel (validation, not-found,
// conflict, path-security, internal) wrapped with component context via Wrap.
// The transport layer classifies errors to HTTP statuses with HTTPStatus
// instead of inspecting message strings.
package services
