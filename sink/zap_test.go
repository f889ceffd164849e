package sink

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/loglayer-go/loglayer/core"
)

func TestZap_ForwardsLineAndIdentity(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	s := NewZap(zap.New(obs), Identity{Subsystem: "myapp", Category: "application"})

	s.Write(core.InfoLevel, "line through zap")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Message != "line through zap" {
		t.Errorf("Message = %q, want the line verbatim", entries[0].Message)
	}

	fields := entries[0].ContextMap()
	if fields["subsystem"] != "myapp" {
		t.Errorf("subsystem = %v, want myapp", fields["subsystem"])
	}
	if fields["category"] != "application" {
		t.Errorf("category = %v, want application", fields["category"])
	}
}

func TestZap_LevelMapping(t *testing.T) {
	tests := []struct {
		level core.Level
		want  zapcore.Level
	}{
		{core.DebugLevel, zapcore.DebugLevel},
		{core.InfoLevel, zapcore.InfoLevel},
		{core.ErrorLevel, zapcore.ErrorLevel},
		// Fault lands on Error: zap's Fatal would exit the process
		{core.FaultLevel, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		obs, logs := observer.New(zapcore.DebugLevel)
		s := NewZap(zap.New(obs), Identity{Subsystem: "x", Category: "y"})

		s.Write(tt.level, "msg")

		entries := logs.All()
		if len(entries) != 1 {
			t.Fatalf("Write(%v): got %d entries, want 1", tt.level, len(entries))
		}
		if entries[0].Level != tt.want {
			t.Errorf("Write(%v) logged at %v, want %v", tt.level, entries[0].Level, tt.want)
		}
	}
}
