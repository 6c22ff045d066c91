package timecode_test

import (
	"errors"
	"testing"

	"draftd/internal/services"
	"draftd/internal/timecode"
)

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  timecode.Duration
	}{
		{"0s", 0},
		{"1s", timecode.Second},
		{"4.2s", 4_200_000},
		{"1m30s", 90 * timecode.Second},
		{"1h3m12s", timecode.Hour + 3*timecode.Minute + 12*timecode.Second},
		{"2h", 2 * timecode.Hour},
		{"1h12s", timecode.Hour + 12*timecode.Second},
		{"0.5m", 30 * timecode.Second},
		{"10.125s", 10_125_000},
	}
	for _, tc := range cases {
		got, err := timecode.Parse(tc.input)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParseRejects(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"12",
		"s",
		"1x",
		"3s1m",
		"1m1m",
		"1.5m30s",
		"1h2.5m10s",
		"1..2s",
		"-5s",
		"1h 3m",
	}
	for _, input := range cases {
		_, err := timecode.Parse(input)
		if err == nil {
			t.Errorf("Parse(%q) unexpectedly succeeded", input)
			continue
		}
		if !errors.Is(err, timecode.ErrInvalidFormat) {
			t.Errorf("Parse(%q): expected ErrInvalidFormat, got %v", input, err)
		}
		if !errors.Is(err, services.ErrValidation) {
			t.Errorf("Parse(%q): expected validation classification, got %v", input, err)
		}
	}
}

func TestRoundTripIdempotent(t *testing.T) {
	inputs := []string{"0s", "4.2s", "1h3m12s", "2h", "90s", "1m", "0.5m", "1h0.25s"}
	for _, input := range inputs {
		first, err := timecode.Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
		formatted := timecode.Format(first)
		second, err := timecode.Parse(formatted)
		if err != nil {
			t.Fatalf("Parse(Format(%q)=%q) failed: %v", input, formatted, err)
		}
		if first != second {
			t.Errorf("round trip %q -> %q: %d != %d", input, formatted, first, second)
		}
	}
}

func TestNewRange(t *testing.T) {
	r, err := timecode.NewRange("1m", "4.2s")
	if err != nil {
		t.Fatalf("NewRange failed: %v", err)
	}
	if r.Start != timecode.Minute || r.Duration != 4_200_000 {
		t.Fatalf("unexpected range %+v", r)
	}
	if r.End() != timecode.Minute+4_200_000 {
		t.Fatalf("unexpected end %d", r.End())
	}

	if _, err := timecode.NewRange("bogus", "1s"); err == nil {
		t.Fatal("expected error for bad start")
	}
	if _, err := timecode.NewRange("1s", ""); err == nil {
		t.Fatal("expected error for empty duration")
	}
}
