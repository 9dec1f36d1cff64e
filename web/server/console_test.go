package server

import (
	"encoding/json"
	"testing"
	"time"
)

// drain reads up to n messages without waiting on an empty channel
func drain(ch <-chan ConsoleMessage, n int) []ConsoleMessage {
	var out []ConsoleMessage
	for i := 0; i < n; i++ {
		select {
		case msg := <-ch:
			out = append(out, msg)
		default:
			return out
		}
	}
	return out
}

func TestWebLogger_Printf(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []interface{}
		expected string
		level    string
	}{
		{"plain", "Rendering %dx%d in %d tiles...\n", []interface{}{40, 30, 1}, "Rendering 40x30 in 1 tiles...\n", "info"},
		{"mesh", "Loaded %s with %d triangles\n", []interface{}{"cube.obj", 12}, "Loaded cube.obj with 12 triangles\n", "info"},
		{"cancelled", "Render stopped after %d of %d tiles: %v\n", []interface{}{3, 4, "context canceled"},
			"Render stopped after 3 of 4 tiles: context canceled\n", "info"},
		{"failure", "Mesh load failed: %s\n", []interface{}{"missing file"}, "Mesh load failed: missing file\n", "error"},
		{"error word", "Error reading texture\n", nil, "Error reading texture\n", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := make(chan ConsoleMessage, 1)
			before := time.Now()
			NewWebLogger("r-"+tt.name, ch).Printf(tt.format, tt.args...)

			msgs := drain(ch, 1)
			if len(msgs) != 1 {
				t.Fatalf("Expected one message, got %d", len(msgs))
			}
			msg := msgs[0]
			if msg.Message != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, msg.Message)
			}
			if msg.Level != tt.level {
				t.Errorf("Expected level %s, got %s", tt.level, msg.Level)
			}
			if msg.RenderID != "r-"+tt.name {
				t.Errorf("Expected render ID r-%s, got %q", tt.name, msg.RenderID)
			}
			if msg.Timestamp.Before(before) {
				t.Errorf("Timestamp %v predates the call", msg.Timestamp)
			}
		})
	}
}

func TestWebLogger_KeepsOrder(t *testing.T) {
	ch := make(chan ConsoleMessage, 3)
	logger := NewWebLogger("ordered", ch)
	for _, tile := range []string{"a", "b", "c"} {
		logger.Printf("tile %s", tile)
	}

	msgs := drain(ch, 3)
	if len(msgs) != 3 || msgs[0].Message != "tile a" || msgs[2].Message != "tile c" {
		t.Errorf("Unexpected messages %+v", msgs)
	}
}

func TestWebLogger_DropsWhenFull(t *testing.T) {
	ch := make(chan ConsoleMessage, 1)
	logger := NewWebLogger("full", ch)

	done := make(chan struct{})
	go func() {
		logger.Printf("first")
		logger.Printf("second")
		logger.Printf("third")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Printf blocked on a full channel")
	}
	if msgs := drain(ch, 3); len(msgs) != 1 || msgs[0].Message != "first" {
		t.Errorf("Expected only the first message to be queued, got %+v", msgs)
	}
}

func TestWebLogger_NilChannel(t *testing.T) {
	NewWebLogger("nil", nil).Printf("no console attached\n")
}

func TestConsoleMessage_JSON(t *testing.T) {
	msg := ConsoleMessage{
		RenderID:  "r1",
		Message:   "Test message",
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Level:     "info",
	}

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	expected := `{"renderId":"r1","message":"Test message","timestamp":"2024-01-01T00:00:00Z","level":"info"}`
	if string(data) != expected {
		t.Errorf("Expected %s, got %s", expected, data)
	}
}
