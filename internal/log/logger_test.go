package log

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestConfigure_LevelAndComponent(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf})
	defer Configure(Config{})

	l := WithComponent("hook")
	l.Debug().Str(FieldEvent, "client_new").Msg("dispatch")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}
	if entry[FieldComponent] != "hook" {
		t.Errorf("component: got %v", entry[FieldComponent])
	}
	if entry[FieldService] != "tilerc" {
		t.Errorf("service: got %v", entry[FieldService])
	}
	if entry[FieldEvent] != "client_new" {
		t.Errorf("event: got %v", entry[FieldEvent])
	}
}

func TestConfigure_DefaultLevelDropsDebug(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("LOG_LEVEL", "")
	Configure(Config{Output: &buf})
	defer Configure(Config{})

	l := Base()
	l.Debug().Msg("quiet")
	l.Info().Msg("quiet too")
	if buf.Len() != 0 {
		t.Errorf("expected no output below warn, got %q", buf.String())
	}
	l.Warn().Msg("loud")
	if buf.Len() == 0 {
		t.Error("expected warn output")
	}
}

func TestConfigure_InvalidLevelFallsBack(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "shouting", Output: &buf})
	defer Configure(Config{})

	l := Base()
	l.Warn().Msg("still works")
	if buf.Len() == 0 {
		t.Error("expected warn output with fallback level")
	}
}
