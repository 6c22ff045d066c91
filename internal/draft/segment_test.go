package draft_test

import (
	"errors"
	"testing"

	"draftd/internal/catalog"
	"draftd/internal/draft"
	"draftd/internal/services"
	"draftd/internal/timecode"
)

func validAudio() *draft.AudioSegment {
	return &draft.AudioSegment{
		Base:         draft.NewBase(0, draft.Some(4*timecode.Second)),
		MaterialID:   "m1",
		MaterialPath: "/tmp/a.mp3",
	}
}

func TestOptDistinguishesAbsentFromZero(t *testing.T) {
	absent := draft.None[float64]()
	zero := draft.Some(0.0)

	if absent.IsSet() {
		t.Fatal("absent must not report set")
	}
	if !zero.IsSet() {
		t.Fatal("explicit zero must report set")
	}
	if v, ok := zero.Get(); !ok || v != 0 {
		t.Fatalf("unexpected Get result: %v %v", v, ok)
	}
	if absent.Or(7) != 7 {
		t.Fatal("Or must return fallback when absent")
	}
	if zero.Or(7) != 0 {
		t.Fatal("Or must return the explicit zero when set")
	}
}

func TestAudioFadeTriState(t *testing.T) {
	none := validAudio()
	if none.HasFade() {
		t.Fatal("no fade requested, HasFade must be false")
	}

	explicitZero := validAudio()
	explicitZero.FadeIn = draft.Some(timecode.Duration(0))
	if !explicitZero.HasFade() {
		t.Fatal("explicit zero-length fade must count as a fade")
	}
	if err := explicitZero.Validate(); err != nil {
		t.Fatalf("explicit zero fade must validate: %v", err)
	}

	fadeOutOnly := validAudio()
	fadeOutOnly.FadeOut = draft.Some(timecode.Second)
	if !fadeOutOnly.HasFade() {
		t.Fatal("fade_out alone must count as a fade")
	}
}

func TestAudioSegmentValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*draft.AudioSegment)
	}{
		{"volume too high", func(s *draft.AudioSegment) { s.Volume = draft.Some(1.01) }},
		{"volume negative", func(s *draft.AudioSegment) { s.Volume = draft.Some(-0.1) }},
		{"negative fade", func(s *draft.AudioSegment) { s.FadeIn = draft.Some(timecode.Duration(-1)) }},
		{"negative start", func(s *draft.AudioSegment) { s.Start = -1 }},
		{"negative duration", func(s *draft.AudioSegment) { s.Duration = draft.Some(timecode.Duration(-1)) }},
		{"missing material", func(s *draft.AudioSegment) { s.MaterialPath = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validAudio()
			tc.mutate(s)
			if err := s.Validate(); !errors.Is(err, services.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	if err := validAudio().Validate(); err != nil {
		t.Fatalf("valid segment rejected: %v", err)
	}
}

func TestVideoSegmentValidation(t *testing.T) {
	intro := &catalog.Entry{Kind: catalog.KindIntro, Name: "fade_in", ResourceID: "1"}
	transition := &catalog.Entry{Kind: catalog.KindTransition, Name: "dissolve", ResourceID: "2"}

	s := &draft.VideoSegment{
		Base:         draft.NewBase(0, draft.Some(2 * timecode.Second)),
		MaterialID:   "m1",
		MaterialPath: "/tmp/v.mp4",
		Intro:        intro,
		Transition:   transition,
		Alpha:        draft.Some(0.5),
		Scale:        draft.Some(1.0),
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("valid segment rejected: %v", err)
	}

	s.Alpha = draft.Some(1.5)
	if err := s.Validate(); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected alpha validation error, got %v", err)
	}
	s.Alpha = draft.None[float64]()

	s.Scale = draft.Some(0.0)
	if err := s.Validate(); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected scale validation error, got %v", err)
	}
	s.Scale = draft.None[float64]()

	// A transition entry cannot be used where an intro is expected.
	s.Intro = transition
	if err := s.Validate(); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected catalog kind validation error, got %v", err)
	}
}

func TestStickerSegmentValidation(t *testing.T) {
	s := &draft.StickerSegment{
		Base:           draft.NewBase(0, draft.None[timecode.Duration]()),
		MaterialID:     "m1",
		MaterialPath:   "/tmp/s.gif",
		BackgroundBlur: draft.Some(0.0625),
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("valid segment rejected: %v", err)
	}

	s.BackgroundBlur = draft.Some(1.5)
	if err := s.Validate(); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected blur validation error, got %v", err)
	}
}

func TestTextSegmentValidation(t *testing.T) {
	valid := func() *draft.TextSegment {
		return &draft.TextSegment{
			Base: draft.NewBase(0, draft.Some(3 * timecode.Second)),
			Text: "hello",
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid segment rejected: %v", err)
	}

	s := valid()
	s.Color = draft.Some([3]float64{0.5, 1.2, 0})
	if err := s.Validate(); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected color validation error, got %v", err)
	}

	s = valid()
	s.TransformY = draft.Some(-1.5)
	if err := s.Validate(); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected transform_y validation error, got %v", err)
	}

	s = valid()
	s.Text = "   "
	if err := s.Validate(); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected empty text validation error, got %v", err)
	}

	s = valid()
	s.BubbleCategoryID = "cat"
	if err := s.Validate(); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected bubble pairing validation error, got %v", err)
	}

	s = valid()
	s.Animation = &catalog.Entry{Kind: catalog.KindIntro, Name: "fade_in", ResourceID: "1"}
	if err := s.Validate(); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected text animation kind error, got %v", err)
	}
}
