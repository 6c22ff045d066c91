// Package pathcheck gates every caller-supplied filesystem path before it
// reaches a file operation.
//
// Validation is two-phase: a syntactic pass rejects parent-directory traversal
// elements in the raw input before any normalization happens, then a semantic
// pass resolves the path to an absolute form and confirms it exists with the
// expected kind. The syntactic pass is deliberately conservative: an input
// like "a/../b" is rejected even though it would normalize to a safe
// location, because accepting it would weaken the documented security
// contract.
package pathcheck
