package draft

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"draftd/internal/services"
)

var (
	// ErrTrackNotFound reports that an explicitly named track does not exist.
	ErrTrackNotFound = errors.New("track not found")
	// ErrNoCompatibleTrack reports that no track accepts the segment kind.
	ErrNoCompatibleTrack = errors.New("no compatible track")
)

// Draft is an in-progress, mutable timeline. Instances are owned by the
// session registry; all mutation must happen while the registry lock is held.
type Draft struct {
	ID       string
	Name     string
	FolderID string
	// Dir is where save serializes the draft: <folder path>/<draft name>.
	Dir    string
	Width  int
	Height int
	Tracks []*Track
}

// New materializes an empty draft associated with a registered folder.
func New(name, folderID, folderPath string, width, height int) *Draft {
	return &Draft{
		ID:       uuid.NewString(),
		Name:     name,
		FolderID: folderID,
		Dir:      filepath.Join(folderPath, name),
		Width:    width,
		Height:   height,
	}
}

// AddTrack appends a track. An absent name defaults to the track type;
// names are unique within the draft. An absent relative index defaults to
// zero, and a duplicate index is allowed: the later track simply keeps the
// requested index, with render order among equals following insertion order.
func (d *Draft) AddTrack(trackType TrackType, name Opt[string], relativeIndex Opt[int]) (*Track, error) {
	resolved := name.Or(string(trackType))
	if resolved == "" {
		return nil, services.Wrap(services.ErrValidation, "draft", "add track", "track name must not be empty", nil)
	}
	for _, track := range d.Tracks {
		if track.Name == resolved {
			return nil, services.Wrap(services.ErrConflict, "draft", "add track",
				fmt.Sprintf("track %q already exists in draft %q", resolved, d.Name), nil)
		}
	}

	track := &Track{
		ID:            uuid.NewString(),
		Name:          resolved,
		Type:          trackType,
		RelativeIndex: relativeIndex.Or(0),
	}
	d.Tracks = append(d.Tracks, track)
	return track, nil
}

// ResolveTrack picks the target track for a segment: the named track when a
// name is supplied, otherwise the first track whose type accepts the segment
// kind.
func (d *Draft) ResolveTrack(name Opt[string], kind SegmentKind) (*Track, error) {
	if trackName, ok := name.Get(); ok {
		for _, track := range d.Tracks {
			if track.Name == trackName {
				if !track.Accepts(kind) {
					return nil, services.Wrap(services.ErrValidation, "draft", "resolve track",
						fmt.Sprintf("track %q is a %s track and cannot hold %s segments", trackName, track.Type, kind), nil)
				}
				return track, nil
			}
		}
		return nil, fmt.Errorf("%w: %w: no track named %q in draft %q",
			services.ErrNotFound, ErrTrackNotFound, trackName, d.Name)
	}

	for _, track := range d.Tracks {
		if track.Accepts(kind) {
			return track, nil
		}
	}
	return nil, fmt.Errorf("%w: %w: draft %q has no %s track",
		services.ErrNotFound, ErrNoCompatibleTrack, d.Name, kind.TrackType())
}

// AddSegment validates the segment and appends it to the resolved track.
// Validation completes before any mutation; on error the draft is unchanged.
func (d *Draft) AddSegment(trackName Opt[string], segment Segment) error {
	if err := segment.Validate(); err != nil {
		return err
	}
	track, err := d.ResolveTrack(trackName, segment.Kind())
	if err != nil {
		return err
	}
	track.Segments = append(track.Segments, segment)
	return nil
}

// SegmentCount returns the total number of segments across all tracks.
func (d *Draft) SegmentCount() int {
	count := 0
	for _, track := range d.Tracks {
		count += len(track.Segments)
	}
	return count
}
