// Package duration parses human-friendly duration strings like "5 minutes"
// or "2 years" into a canonical number of seconds.
package duration

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	str2duration "github.com/xhit/go-str2duration/v2"
)

// Errors returned by Parse, wrapped with the offending input. Match them
// with errors.Is.
var (
	ErrMalformed   = errors.New("malformed duration")
	ErrUnknownUnit = errors.New("unrecognized duration unit")
)

// secondsPerYear uses a fixed 365.25-day year; no calendar arithmetic.
const secondsPerYear = 365.25 * 24 * 60 * 60

// units in increasing magnitude. Order matters: a token that is a prefix
// of more than one name resolves to the first match, so "s" is seconds
// and "m" is minutes.
var units = []struct {
	name    string
	seconds float64
}{
	{"seconds", 1},
	{"minutes", 60},
	{"hours", 60 * 60},
	{"days", 24 * 60 * 60},
	{"years", secondsPerYear},
	{"decades", 10 * secondsPerYear},
	{"centuries", 100 * secondsPerYear},
	{"millennium", 1000 * secondsPerYear},
}

// codedPattern extracts the leading decimal magnitude and alphabetic unit
// token. Text after the unit token is not validated.
var codedPattern = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)\s*([a-zA-Z]+)`)

// Spec is an immutable duration held as a number of seconds.
type Spec struct {
	seconds float64
}

// FromStd wraps a time.Duration as a Spec.
func FromStd(d time.Duration) Spec {
	return Spec{seconds: d.Seconds()}
}

// Parse converts a coded duration string such as "5 minutes", "1.5 h" or
// "2years" into a Spec. The magnitude is a non-negative decimal ("2",
// "1.5" or ".5"); the unit token may be any non-empty prefix of seconds,
// minutes, hours, days, years, decades, centuries or millennium, matched
// case-insensitively in that order. Anything after the unit token is
// ignored.
func Parse(coded string) (Spec, error) {
	m := codedPattern.FindStringSubmatch(strings.TrimSpace(coded))
	if m == nil {
		return Spec{}, fmt.Errorf("%w: %q", ErrMalformed, coded)
	}

	magnitude, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Spec{}, fmt.Errorf("%w: %q: %v", ErrMalformed, coded, err)
	}

	scale, err := scaleOf(m[2])
	if err != nil {
		return Spec{}, fmt.Errorf("%w in %q", err, coded)
	}

	return Spec{seconds: magnitude * scale}, nil
}

// ParseAny accepts both the word grammar and the compact Go-style grammar
// ("1h30m", "2d12h"), so callers can take "90 days" as well as "2160h".
// A string the word grammar matches in full wins outright; otherwise the
// compact grammar is tried, and only then the permissive word parse, so
// "1h30m" means ninety minutes rather than one hour with trailing junk.
// On failure the word-grammar error is returned.
func ParseAny(s string) (Spec, error) {
	trimmed := strings.TrimSpace(s)
	if codedPattern.FindString(trimmed) == trimmed {
		return Parse(trimmed)
	}

	if d, err := str2duration.ParseDuration(trimmed); err == nil {
		return FromStd(d), nil
	}

	return Parse(trimmed)
}

// scaleOf resolves a unit token to its seconds ratio. The token matches a
// unit when it is a non-empty prefix of the unit's name; units are tried
// in increasing magnitude.
func scaleOf(token string) (float64, error) {
	lower := strings.ToLower(token)
	for _, u := range units {
		if strings.HasPrefix(u.name, lower) {
			return u.seconds, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, token)
}

// Seconds returns the canonical value.
func (s Spec) Seconds() float64 { return s.seconds }

// Minutes returns the duration in minutes.
func (s Spec) Minutes() float64 { return s.Seconds() / 60 }

// Hours returns the duration in hours.
func (s Spec) Hours() float64 { return s.Minutes() / 60 }

// Days returns the duration in days.
func (s Spec) Days() float64 { return s.Hours() / 24 }

// Years returns the duration in fixed 365.25-day years.
func (s Spec) Years() float64 { return s.Days() / 365.25 }

// Std converts the Spec to a time.Duration.
func (s Spec) Std() time.Duration {
	return time.Duration(s.seconds * float64(time.Second))
}
