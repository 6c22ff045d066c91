// Package timecode converts human-readable duration strings into the
// microsecond base unit used throughout draft timelines.
//
// The accepted grammar is a concatenation of <number><unit> tokens with units
// h, m, and s, most-significant unit first, each unit at most once, and a
// decimal fraction allowed only on the least-significant unit present
// ("1h3m12s", "4.2s"). Parsing and formatting are pure; parse→format→parse
// is idempotent.
package timecode
