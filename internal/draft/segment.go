package draft

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"draftd/internal/catalog"
	"draftd/internal/services"
	"draftd/internal/timecode"
)

// SegmentKind discriminates the segment payload types.
type SegmentKind string

const (
	SegmentAudio   SegmentKind = "audio"
	SegmentVideo   SegmentKind = "video"
	SegmentSticker SegmentKind = "sticker"
	SegmentText    SegmentKind = "text"
)

// TrackType returns the track type a segment of this kind must land on.
// Stickers share video tracks.
func (k SegmentKind) TrackType() TrackType {
	switch k {
	case SegmentAudio:
		return TrackAudio
	case SegmentText:
		return TrackText
	default:
		return TrackVideo
	}
}

// Segment is a time-bounded placement of one media item on a track.
type Segment interface {
	SegmentID() string
	Kind() SegmentKind
	// Placement returns the segment's start offset and its duration.
	// An absent duration means the segment inherits the natural length of
	// its source material when the draft is rendered.
	Placement() (timecode.Duration, Opt[timecode.Duration])
	// Validate checks every field before the segment is committed to a
	// track. It must be called (and pass) before any mutation.
	Validate() error
}

// Base carries the fields shared by every segment kind.
type Base struct {
	ID       string
	Start    timecode.Duration
	Duration Opt[timecode.Duration]
}

// NewBase allocates a segment identity with the given placement.
func NewBase(start timecode.Duration, duration Opt[timecode.Duration]) Base {
	return Base{ID: uuid.NewString(), Start: start, Duration: duration}
}

// NewMaterialID allocates an identifier for a segment's source material.
func NewMaterialID() string {
	return uuid.NewString()
}

func (b Base) SegmentID() string { return b.ID }

func (b Base) Placement() (timecode.Duration, Opt[timecode.Duration]) {
	return b.Start, b.Duration
}

func (b Base) validatePlacement(kind SegmentKind) error {
	if b.Start < 0 {
		return invalidParam(kind, "start_time must not be negative")
	}
	if d, ok := b.Duration.Get(); ok && d < 0 {
		return invalidParam(kind, "duration must not be negative")
	}
	return nil
}

// AudioSegment places an audio material with volume and optional fades.
// FadeIn and FadeOut are independent tri-state fields: an explicit zero-length
// fade is a legal request distinct from omitting the fade entirely.
type AudioSegment struct {
	Base
	MaterialID   string
	MaterialPath string
	Volume       Opt[float64]
	FadeIn       Opt[timecode.Duration]
	FadeOut      Opt[timecode.Duration]
}

func (s *AudioSegment) Kind() SegmentKind { return SegmentAudio }

func (s *AudioSegment) Validate() error {
	if err := s.validatePlacement(SegmentAudio); err != nil {
		return err
	}
	if s.MaterialPath == "" {
		return invalidParam(SegmentAudio, "material path is required")
	}
	if v, ok := s.Volume.Get(); ok && (v < 0 || v > 1) {
		return invalidParam(SegmentAudio, fmt.Sprintf("volume %v out of range [0.0, 1.0]", v))
	}
	if d, ok := s.FadeIn.Get(); ok && d < 0 {
		return invalidParam(SegmentAudio, "fade_in must not be negative")
	}
	if d, ok := s.FadeOut.Get(); ok && d < 0 {
		return invalidParam(SegmentAudio, "fade_out must not be negative")
	}
	return nil
}

// HasFade reports whether any fade, including an explicit zero-length one,
// was requested.
func (s *AudioSegment) HasFade() bool {
	return s.FadeIn.IsSet() || s.FadeOut.IsSet()
}

// VideoSegment places a video or image material with optional intro
// animation, transition, opacity, and scale. Intro and Transition are
// resolved catalog entries; nil means the effect was not requested.
type VideoSegment struct {
	Base
	MaterialID   string
	MaterialPath string
	Intro        *catalog.Entry
	Transition   *catalog.Entry
	Alpha        Opt[float64]
	Scale        Opt[float64]
}

func (s *VideoSegment) Kind() SegmentKind { return SegmentVideo }

func (s *VideoSegment) Validate() error {
	if err := s.validatePlacement(SegmentVideo); err != nil {
		return err
	}
	if s.MaterialPath == "" {
		return invalidParam(SegmentVideo, "material path is required")
	}
	if s.Intro != nil && s.Intro.Kind != catalog.KindIntro {
		return invalidParam(SegmentVideo, fmt.Sprintf("animation %q is not an intro animation", s.Intro.Name))
	}
	if s.Transition != nil && s.Transition.Kind != catalog.KindTransition {
		return invalidParam(SegmentVideo, fmt.Sprintf("transition %q is not a transition", s.Transition.Name))
	}
	if a, ok := s.Alpha.Get(); ok && (a < 0 || a > 1) {
		return invalidParam(SegmentVideo, fmt.Sprintf("alpha %v out of range [0.0, 1.0]", a))
	}
	if sc, ok := s.Scale.Get(); ok && (sc <= 0 || sc > 100) {
		return invalidParam(SegmentVideo, fmt.Sprintf("scale %v out of range (0.0, 100.0]", sc))
	}
	return nil
}

// StickerSegment places a sticker or GIF material on a video track with an
// optional background blur coefficient.
type StickerSegment struct {
	Base
	MaterialID     string
	MaterialPath   string
	BackgroundBlur Opt[float64]
}

func (s *StickerSegment) Kind() SegmentKind { return SegmentSticker }

func (s *StickerSegment) Validate() error {
	if err := s.validatePlacement(SegmentSticker); err != nil {
		return err
	}
	if s.MaterialPath == "" {
		return invalidParam(SegmentSticker, "material path is required")
	}
	if blur, ok := s.BackgroundBlur.Get(); ok && (blur < 0 || blur > 1) {
		return invalidParam(SegmentSticker, fmt.Sprintf("background_blur %v out of range [0.0, 1.0]", blur))
	}
	return nil
}

// TextSegment places literal text with styling, position, and optional
// animation and bubble/effect resources.
type TextSegment struct {
	Base
	Text             string
	Font             *catalog.Entry
	Size             Opt[float64]
	Color            Opt[[3]float64]
	TransformY       Opt[float64]
	Animation        *catalog.Entry
	BubbleCategoryID string
	BubbleResourceID string
	EffectResourceID string
}

func (s *TextSegment) Kind() SegmentKind { return SegmentText }

func (s *TextSegment) Validate() error {
	if err := s.validatePlacement(SegmentText); err != nil {
		return err
	}
	if strings.TrimSpace(s.Text) == "" {
		return invalidParam(SegmentText, "text content is required")
	}
	if s.Font != nil && s.Font.Kind != catalog.KindFont {
		return invalidParam(SegmentText, fmt.Sprintf("font %q is not a font", s.Font.Name))
	}
	if s.Animation != nil && s.Animation.Kind != catalog.KindTextIntro && s.Animation.Kind != catalog.KindTextOutro {
		return invalidParam(SegmentText, fmt.Sprintf("animation %q is not a text animation", s.Animation.Name))
	}
	if size, ok := s.Size.Get(); ok && (size <= 0 || size > 1000) {
		return invalidParam(SegmentText, fmt.Sprintf("size %v out of range (0.0, 1000.0]", size))
	}
	if rgb, ok := s.Color.Get(); ok {
		for i, component := range rgb {
			if component < 0 || component > 1 {
				return invalidParam(SegmentText,
					fmt.Sprintf("color component %d (%v) out of range [0.0, 1.0]", i, component))
			}
		}
	}
	if y, ok := s.TransformY.Get(); ok && (y < -1 || y > 1) {
		return invalidParam(SegmentText, fmt.Sprintf("transform_y %v out of range [-1.0, 1.0]", y))
	}
	if s.BubbleCategoryID != "" && s.BubbleResourceID == "" || s.BubbleCategoryID == "" && s.BubbleResourceID != "" {
		return invalidParam(SegmentText, "bubble_category_id and bubble_resource_id must be supplied together")
	}
	return nil
}

func invalidParam(kind SegmentKind, message string) error {
	return services.Wrap(services.ErrValidation, "draft", fmt.Sprintf("%s segment", kind), message, nil)
}
