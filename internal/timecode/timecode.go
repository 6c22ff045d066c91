package timecode

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"draftd/internal/services"
)

// Duration is a span of timeline time in microseconds.
type Duration int64

const (
	Microsecond Duration = 1
	Millisecond          = 1000 * Microsecond
	Second               = 1000 * Millisecond
	Minute               = 60 * Second
	Hour                 = 60 * Minute
)

// ErrInvalidFormat tags every grammar failure reported by Parse.
var ErrInvalidFormat = errors.New("invalid time format")

// Range places a segment on the timeline: an offset from time zero plus a
// length, both in microseconds.
type Range struct {
	Start    Duration
	Duration Duration
}

// End returns the exclusive end of the range.
func (r Range) End() Duration {
	return r.Start + r.Duration
}

var unitRank = map[byte]int{'h': 0, 'm': 1, 's': 2}

var unitValue = map[byte]Duration{'h': Hour, 'm': Minute, 's': Second}

// Parse converts a duration expression such as "1h3m12s" or "4.2s" into
// microseconds. Empty input, unknown units, out-of-order or repeated units,
// and fractions on a non-final unit all fail with ErrInvalidFormat.
func Parse(input string) (Duration, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, invalidf("empty duration string")
	}

	type token struct {
		number string
		unit   byte
	}
	var tokens []token

	for i := 0; i < len(trimmed); {
		start := i
		for i < len(trimmed) && (isDigit(trimmed[i]) || trimmed[i] == '.') {
			i++
		}
		number := trimmed[start:i]
		if number == "" || number == "." {
			return 0, invalidf("expected number at %q in %q", trimmed[start:], input)
		}
		if strings.Count(number, ".") > 1 {
			return 0, invalidf("malformed number %q in %q", number, input)
		}
		if i >= len(trimmed) {
			return 0, invalidf("missing unit after %q in %q", number, input)
		}
		unit := trimmed[i]
		if _, ok := unitRank[unit]; !ok {
			return 0, invalidf("unknown unit %q in %q", string(unit), input)
		}
		i++
		tokens = append(tokens, token{number: number, unit: unit})
	}

	lastRank := -1
	var total Duration
	for idx, tok := range tokens {
		rank := unitRank[tok.unit]
		if rank <= lastRank {
			return 0, invalidf("unit %q out of order in %q", string(tok.unit), input)
		}
		lastRank = rank

		if strings.Contains(tok.number, ".") && idx != len(tokens)-1 {
			return 0, invalidf("fraction only allowed on the final unit in %q", input)
		}

		value, err := strconv.ParseFloat(tok.number, 64)
		if err != nil {
			return 0, invalidf("malformed number %q in %q", tok.number, input)
		}
		total += Duration(math.Round(value * float64(unitValue[tok.unit])))
	}

	return total, nil
}

// Format renders a duration back into the grammar accepted by Parse.
// Zero-valued leading units are omitted; a zero duration formats as "0s".
func Format(d Duration) string {
	if d == 0 {
		return "0s"
	}

	var b strings.Builder
	if h := d / Hour; h > 0 {
		fmt.Fprintf(&b, "%dh", h)
		d -= h * Hour
	}
	if m := d / Minute; m > 0 {
		fmt.Fprintf(&b, "%dm", m)
		d -= m * Minute
	}
	if d > 0 || b.Len() == 0 {
		sec := d / Second
		frac := d % Second
		if frac == 0 {
			fmt.Fprintf(&b, "%ds", sec)
		} else {
			digits := strings.TrimRight(fmt.Sprintf("%06d", frac), "0")
			fmt.Fprintf(&b, "%d.%ss", sec, digits)
		}
	}
	return b.String()
}

// NewRange parses a start expression and a duration expression into a Range.
func NewRange(start, duration string) (Range, error) {
	s, err := Parse(start)
	if err != nil {
		return Range{}, err
	}
	d, err := Parse(duration)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: s, Duration: d}, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", services.ErrValidation, ErrInvalidFormat, fmt.Sprintf(format, args...))
}
