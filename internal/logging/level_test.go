package logging

import (
	"errors"
	"testing"
)

func TestLevelFromValueClamps(t *testing.T) {
	tests := []struct {
		raw  int
		want Level
	}{
		{100, LevelError},
		{-100, LevelTrace},
		{2, LevelError},
		{1, LevelWarn},
		{0, LevelInfo},
		{-1, LevelDebug},
		{-2, LevelTrace},
		{3, LevelError},
		{-3, LevelTrace},
	}

	for _, tt := range tests {
		got, err := LevelFromValue(tt.raw)
		if err != nil {
			t.Fatalf("LevelFromValue(%d) returned error: %v", tt.raw, err)
		}
		if got != tt.want {
			t.Errorf("LevelFromValue(%d) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestLevelFromValueIdempotent(t *testing.T) {
	for raw := -10; raw <= 10; raw++ {
		first, err := LevelFromValue(raw)
		if err != nil {
			t.Fatalf("LevelFromValue(%d) returned error: %v", raw, err)
		}
		second, err := LevelFromValue(int(first))
		if err != nil {
			t.Fatalf("LevelFromValue(%d) returned error: %v", int(first), err)
		}
		if first != second {
			t.Errorf("clamp not idempotent for %d: %v then %v", raw, first, second)
		}
	}
}

func TestColorFor(t *testing.T) {
	tests := []struct {
		level Level
		want  Color
	}{
		{LevelError, ColorRed},
		{LevelWarn, ColorYellow},
		{LevelInfo, ColorWhite},
		{LevelDebug, ColorMagenta},
		{LevelTrace, ColorCyan},
	}

	for _, tt := range tests {
		got, err := ColorFor(tt.level)
		if err != nil {
			t.Fatalf("ColorFor(%v) returned error: %v", tt.level, err)
		}
		if got != tt.want {
			t.Errorf("ColorFor(%v) = %q, want %q", tt.level, got, tt.want)
		}
	}

	for _, bad := range []Level{3, -3, 42} {
		if _, err := ColorFor(bad); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("ColorFor(%d) error = %v, want ErrInvalidLevel", int(bad), err)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"trace", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"WARN", LevelWarn},
		{" Error ", LevelError},
		{"warning", LevelWarn},
		{"err", LevelError},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if err != nil {
			t.Fatalf("ParseLevel(%q) returned error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if _, err := ParseLevel("loud"); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf(`ParseLevel("loud") error = %v, want ErrInvalidLevel`, err)
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{Level(9), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}
