package draft

import (
	"fmt"

	"draftd/internal/services"
)

// TrackType identifies the media kind a track carries.
type TrackType string

const (
	TrackAudio  TrackType = "audio"
	TrackVideo  TrackType = "video"
	TrackText   TrackType = "text"
	TrackEffect TrackType = "effect"
	TrackFilter TrackType = "filter"
)

// ParseTrackType validates a caller-supplied track type string.
func ParseTrackType(raw string) (TrackType, error) {
	switch TrackType(raw) {
	case TrackAudio, TrackVideo, TrackText, TrackEffect, TrackFilter:
		return TrackType(raw), nil
	}
	return "", services.Wrap(services.ErrValidation, "draft", "parse track type",
		fmt.Sprintf("invalid track type %q, must be one of audio, video, text, effect, filter", raw), nil)
}

// Track is an ordered lane holding segments of one media kind.
type Track struct {
	ID            string
	Name          string
	Type          TrackType
	RelativeIndex int
	Segments      []Segment
}

// Accepts reports whether the track can hold segments of the given kind.
func (t *Track) Accepts(kind SegmentKind) bool {
	return t.Type == kind.TrackType()
}
