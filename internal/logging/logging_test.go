package logging

import (
	"bytes"
	"strings"
	"testing"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(Config{Level: level, Output: &buf, Prefix: "test"})
	return l, &buf
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"nonsense", LevelInfo},
		{"", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newTestLogger(LevelWarn)

	l.Debug("hidden debug")
	l.Info("hidden info")
	l.Warn("visible warn")
	l.Error("visible error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains suppressed messages:\n%s", out)
	}
	if !strings.Contains(out, "visible warn") {
		t.Errorf("warn message missing:\n%s", out)
	}
	if !strings.Contains(out, "visible error") {
		t.Errorf("error message missing:\n%s", out)
	}
}

func TestSetLevel(t *testing.T) {
	l, buf := newTestLogger(LevelError)

	l.Info("before")
	l.SetLevel(LevelDebug)
	l.Debug("after")

	out := buf.String()
	if strings.Contains(out, "before") {
		t.Error("info logged below threshold")
	}
	if !strings.Contains(out, "after") {
		t.Error("debug not logged after lowering the level")
	}
}

func TestFormatting(t *testing.T) {
	l, buf := newTestLogger(LevelInfo)

	l.Info("processed %d events in %s", 7, "queue")

	out := buf.String()
	if !strings.Contains(out, "processed 7 events in queue") {
		t.Errorf("formatted message missing:\n%s", out)
	}
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("level tag missing:\n%s", out)
	}
	if !strings.Contains(out, "test:") {
		t.Errorf("prefix missing:\n%s", out)
	}
}

func TestWithFieldAppearsInOutput(t *testing.T) {
	l, buf := newTestLogger(LevelInfo)

	l.WithField("tick", 42).Info("frame done")

	if !strings.Contains(buf.String(), "tick=42") {
		t.Errorf("field missing:\n%s", buf.String())
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	l, buf := newTestLogger(LevelInfo)

	_ = l.WithComponent("dispatcher")
	l.Info("plain message")

	if strings.Contains(buf.String(), "component=") {
		t.Errorf("parent logger picked up child field:\n%s", buf.String())
	}
}

func TestWithComponent(t *testing.T) {
	l, buf := newTestLogger(LevelInfo)

	l.WithComponent("state").Info("entered")

	if !strings.Contains(buf.String(), "component=state") {
		t.Errorf("component field missing:\n%s", buf.String())
	}
}

func TestNullLoggerDiscards(t *testing.T) {
	// Must not panic with no output writer.
	Null.Debug("a")
	Null.Info("b")
	Null.Warn("c")
	Null.Error("d")

	child := Null.WithComponent("x")
	child.Error("still discarded")
}

func TestSetOutput(t *testing.T) {
	l, first := newTestLogger(LevelInfo)
	var second bytes.Buffer

	l.Info("one")
	l.SetOutput(&second)
	l.Info("two")

	if !strings.Contains(first.String(), "one") || strings.Contains(first.String(), "two") {
		t.Errorf("first buffer = %q", first.String())
	}
	if !strings.Contains(second.String(), "two") {
		t.Errorf("second buffer = %q", second.String())
	}
}
