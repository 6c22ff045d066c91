// Package registry is the single shared mutable store of the draft session
// layer: registered folder handles and active drafts, keyed by caller-chosen
// identifiers.
//
// All access to either map is serialized through one registry-wide mutex.
// Draft references never escape the lock: mutation happens inside the
// callback passed to WithDraft, so two concurrent composers cannot interleave
// mutations on the same draft. The registry is volatile, in-memory,
// single-process state; closing a draft never touches the filesystem.
package registry
