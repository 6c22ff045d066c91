// Package draft models an in-progress video draft: a named timeline with a
// canvas size, ordered tracks, and time-bounded segments.
//
// All timeline arithmetic uses the microsecond base unit from
// internal/timecode. Optional effect parameters are tri-state: absent,
// present with an explicit zero, or present with a value — the Opt type keeps
// "explicitly zero" and "not supplied" distinguishable, which matters for
// fades and animations that are applied only when explicitly requested.
//
// The package also owns the serialized draft format: a draft_content.json
// written atomically under <folder>/<draft name>/. Marshaling is
// deterministic so saving an unmodified draft produces an identical file.
package draft
