// Package catalog owns the seven effect catalogs (fonts, intro/outro
// animations, text intro/outro animations, transitions, filters) that segment
// requests resolve human-readable names against.
//
// The Store persists catalog entries in SQLite and seeds them from the
// embedded seed data on first open. The Service loads every catalog into
// memory once at startup and serves exact, case-sensitive lookups and ordered
// enumerations; it is read-only after Load and safe for concurrent use.
package catalog
