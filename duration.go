package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNotAString is returned by Convert when the input is not a string.
	ErrNotAString = errors.New("input should be a string")
	// ErrInvalidFormat is returned when the input is not HH:MM:SS with two digits per segment.
	ErrInvalidFormat = errors.New("invalid format, expected HH:MM:SS")
)

var segmentNames = [3]string{"hours", "minutes", "seconds"}

// TypeError reports a non-string input. It unwraps to ErrNotAString.
type TypeError struct {
	Value any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s, got %T", ErrNotAString, e.Value)
}

func (e *TypeError) Unwrap() error { return ErrNotAString }

// FormatError reports which segment of the input failed validation. It unwraps to ErrInvalidFormat.
type FormatError struct {
	Input   string
	Segment string
	Value   string
	Reason  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s segment %q of %q: %s", ErrInvalidFormat, e.Segment, e.Value, e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error { return ErrInvalidFormat }

// Convert returns the number of seconds in an "HH:MM:SS" string.
// Values that are not strings fail with ErrNotAString.
func Convert(input any) (int, error) {
	s, ok := input.(string)
	if !ok {
		return 0, &TypeError{Value: input}
	}
	return ConvertString(s)
}

// ConvertString is Convert for inputs already known to be strings.
// Pieces after the third colon-separated segment are ignored, and minutes or
// seconds above 59 are accepted as written.
func ConvertString(input string) (int, error) {
	parts := strings.Split(input, ":")

	var values [3]int
	for i, name := range segmentNames {
		if i >= len(parts) {
			return 0, &FormatError{Input: input, Segment: name, Reason: "missing"}
		}
		v, err := checkSegment(parts[i])
		if err != nil {
			return 0, &FormatError{Input: input, Segment: name, Value: parts[i], Reason: err.Error()}
		}
		values[i] = v
	}

	return values[0]*3600 + values[1]*60 + values[2], nil
}

// checkSegment accepts exactly two decimal digits.
func checkSegment(segment string) (int, error) {
	if len(segment) != 2 {
		return 0, fmt.Errorf("length %d, want 2", len(segment))
	}
	v, err := strconv.ParseUint(segment, 10, 8)
	if err != nil {
		return 0, errors.New("not a number")
	}
	if fmt.Sprintf("%02d", v) != segment {
		return 0, errors.New("not two digits")
	}
	return int(v), nil
}

// NormalizeBadge pads a Rumble duration badge ("4:05", "12:34", "1:02:03")
// to HH:MM:SS. Badges it does not recognise are returned trimmed but otherwise
// untouched, leaving the verdict to ConvertString.
func NormalizeBadge(badge string) string {
	badge = strings.TrimSpace(badge)
	parts := strings.Split(badge, ":")

	switch len(parts) {
	case 2: // "mm:ss" format
		parts = append([]string{"00"}, parts...)
	case 3: // "hh:mm:ss" format
	default:
		return badge
	}

	for i, p := range parts {
		if len(p) == 1 {
			parts[i] = "0" + p
		}
	}
	return strings.Join(parts, ":")
}

// BadgeSeconds converts a Rumble duration badge to seconds.
func BadgeSeconds(badge string) (int, error) {
	return ConvertString(NormalizeBadge(badge))
}
