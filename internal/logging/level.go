// Package logging provides the leveled, color-tagged logger used across
// the diceware CLI. Calls below a configured cutoff are dropped; anything
// at or above it is joined, wrapped in the level's ANSI color and handed
// to a caller-supplied sink.
package logging

import (
	"errors"
	"fmt"
	"strings"
)

// Level is the severity rank of a log call. Ranks are ordered integers so
// cutoff checks are a plain comparison.
type Level int

const (
	LevelTrace Level = -2
	LevelDebug Level = -1
	LevelInfo  Level = 0
	LevelWarn  Level = 1
	LevelError Level = 2
)

// ErrInvalidLevel reports a level outside the closed Trace..Error set.
var ErrInvalidLevel = errors.New("invalid log level")

// Color is an ANSI escape sequence understood by most terminals.
type Color string

const (
	colorReset   Color = "\033[0m"
	ColorRed     Color = "\033[31m"
	ColorYellow  Color = "\033[33m"
	ColorMagenta Color = "\033[35m"
	ColorCyan    Color = "\033[36m"
	ColorWhite   Color = "\033[37m"
)

// levels is the closed member table, ordered by rank.
var levels = []struct {
	level Level
	name  string
	color Color
}{
	{LevelTrace, "trace", ColorCyan},
	{LevelDebug, "debug", ColorMagenta},
	{LevelInfo, "info", ColorWhite},
	{LevelWarn, "warn", ColorYellow},
	{LevelError, "error", ColorRed},
}

// LevelFromValue clamps raw into [LevelTrace, LevelError] and returns the
// member with that rank. The error path only exists in case the member
// table and the clamp bounds ever diverge; while ranks stay contiguous it
// is unreachable.
func LevelFromValue(raw int) (Level, error) {
	if raw < int(LevelTrace) {
		raw = int(LevelTrace)
	}
	if raw > int(LevelError) {
		raw = int(LevelError)
	}
	for _, m := range levels {
		if int(m.level) == raw {
			return m.level, nil
		}
	}
	return 0, fmt.Errorf("%w: value %d is unmapped", ErrInvalidLevel, raw)
}

// ColorFor returns the ANSI color for a level. A level outside the closed
// set is a contract violation and surfaces ErrInvalidLevel rather than a
// default color.
func ColorFor(level Level) (Color, error) {
	for _, m := range levels {
		if m.level == level {
			return m.color, nil
		}
	}
	return "", fmt.Errorf("%w: %d", ErrInvalidLevel, int(level))
}

// ParseLevel parses a level name, case-insensitively. "warning" and "err"
// are accepted as aliases.
func ParseLevel(s string) (Level, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	for _, m := range levels {
		if m.name == lower {
			return m.level, nil
		}
	}
	switch lower {
	case "warning":
		return LevelWarn, nil
	case "err":
		return LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// String returns the lowercase level name, or "unknown" outside the set.
func (l Level) String() string {
	for _, m := range levels {
		if m.level == l {
			return m.name
		}
	}
	return "unknown"
}

// Colorize wraps text in the given color followed by a reset.
func Colorize(text string, color Color) string {
	return string(color) + text + string(colorReset)
}
