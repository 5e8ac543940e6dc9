package cinecanvas

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TickDuration is length of a single CineCanvas tick.
const TickDuration = 4 * time.Millisecond

// MaxTicks is the largest tick value allowed in any timing component.
const MaxTicks = 249

// MaxHours keeps timing representable as time.Duration.
const MaxHours = int(math.MaxInt64/int64(time.Hour)) - 1

// Timing is a CineCanvas time point. Sub-second part is kept in
// milliseconds so both tick and fractional forms are exact.
type Timing struct {
	Hours   int
	Minutes int
	Seconds int
	Millis  int
}

var (
	tickTimingRe       = regexp.MustCompile(`^(\d+):(\d+):(\d+):(\d+)$`)
	fractionalTimingRe = regexp.MustCompile(`^(\d+):(\d+):(\d+)\.(\d+)$`)
	bareTicksRe        = regexp.MustCompile(`^\d+$`)
)

// DefaultFade is the fade duration used when subtitle does not specify one:
// 20 ticks.
var DefaultFade = Timing{Millis: 20 * int(TickDuration/time.Millisecond)}

// NewTiming builds timing from clock components and ticks.
func NewTiming(hours, minutes, seconds, ticks int) (Timing, error) {
	if ticks < 0 || ticks > MaxTicks {
		return Timing{}, fmt.Errorf("%w: tick timing must be between 0 and %d, got %d", ErrInvalidFieldValue, MaxTicks, ticks)
	}
	return clock(hours, minutes, seconds, ticks*int(TickDuration/time.Millisecond))
}

func clock(hours, minutes, seconds, millis int) (Timing, error) {
	if hours < 0 || minutes < 0 || seconds < 0 {
		return Timing{}, fmt.Errorf("%w: negative timing component", ErrInvalidFieldValue)
	}
	if minutes > 59 || seconds > 59 {
		return Timing{}, fmt.Errorf("%w: minutes and seconds must be below 60, got %d:%d", ErrInvalidFieldValue, minutes, seconds)
	}
	if hours > MaxHours {
		return Timing{}, fmt.Errorf("%w: %d hours is out of range", ErrInvalidFieldValue, hours)
	}
	return Timing{Hours: hours, Minutes: minutes, Seconds: seconds, Millis: millis}, nil
}

// TickTiming returns timing of a bare tick count.
func TickTiming(ticks int) (Timing, error) {
	return NewTiming(0, 0, 0, ticks)
}

// ParseTiming accepts bare ticks ("125"), "HH:MM:SS:TTT" with ticks and
// "HH:MM:SS.mmm" with fractional seconds.
func ParseTiming(value string) (Timing, error) {
	value = strings.TrimSpace(value)

	switch {
	case bareTicksRe.MatchString(value):
		ticks, err := strconv.Atoi(value)
		if err != nil {
			return Timing{}, fmt.Errorf("%w: %q: %v", ErrMalformedTiming, value, err)
		}
		t, err := TickTiming(ticks)
		if err != nil {
			return Timing{}, fmt.Errorf("%w: %q: %v", ErrMalformedTiming, value, err)
		}
		return t, nil

	case tickTimingRe.MatchString(value):
		parts, err := atoiAll(tickTimingRe.FindStringSubmatch(value)[1:])
		if err != nil {
			return Timing{}, fmt.Errorf("%w: %q: %v", ErrMalformedTiming, value, err)
		}
		t, err := NewTiming(parts[0], parts[1], parts[2], parts[3])
		if err != nil {
			return Timing{}, fmt.Errorf("%w: %q: %v", ErrMalformedTiming, value, err)
		}
		return t, nil

	case fractionalTimingRe.MatchString(value):
		m := fractionalTimingRe.FindStringSubmatch(value)
		// fraction is right padded or truncated to milliseconds
		frac := m[4]
		if len(frac) < 3 {
			frac += strings.Repeat("0", 3-len(frac))
		}
		parts, err := atoiAll([]string{m[1], m[2], m[3], frac[:3]})
		if err != nil {
			return Timing{}, fmt.Errorf("%w: %q: %v", ErrMalformedTiming, value, err)
		}
		t, err := clock(parts[0], parts[1], parts[2], parts[3])
		if err != nil {
			return Timing{}, fmt.Errorf("%w: %q: %v", ErrMalformedTiming, value, err)
		}
		return t, nil
	}
	return Timing{}, fmt.Errorf("%w: invalid CineCanvas timing value %q", ErrMalformedTiming, value)
}

func atoiAll(in []string) ([]int, error) {
	out := make([]int, len(in))
	for i, s := range in {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (t Timing) Duration() time.Duration {
	return time.Duration(t.Hours)*time.Hour +
		time.Duration(t.Minutes)*time.Minute +
		time.Duration(t.Seconds)*time.Second +
		time.Duration(t.Millis)*time.Millisecond
}

// Milliseconds returns total length in milliseconds.
func (t Timing) Milliseconds() int64 {
	return t.Duration().Milliseconds()
}

func (t Timing) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hours, t.Minutes, t.Seconds, t.Millis)
}
