// Package api implements the draft session operations behind the HTTP
// surface. DraftService validates every input — paths, time strings,
// catalog names, numeric ranges — before touching the registry, then
// commits the mutation inside the registry's locked callback so no
// partially validated state ever lands on a draft.
package api
