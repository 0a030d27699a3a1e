package events

import (
	"context"
	"testing"
	"time"
)

func TestSubject(t *testing.T) {
	tests := []struct {
		prefix, game, expected string
	}{
		{"arcade.results", "snake", "arcade.results.snake"},
		{"arcade.results.", "tetris", "arcade.results.tetris"},
		{"arcade.results", "", "arcade.results.*"},
	}

	for _, tc := range tests {
		if got := Subject(tc.prefix, tc.game); got != tc.expected {
			t.Errorf("Subject(%q, %q) = %q, expected %q", tc.prefix, tc.game, got, tc.expected)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	finished := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	in := resultFixture(finished)

	data, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	out, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if out.GameID != in.GameID || out.Score != in.Score || out.Outcome != in.Outcome || !out.Finished.Equal(in.Finished) {
		t.Errorf("Decode = %+v, expected %+v", out, in)
	}

	if _, err := Decode([]byte("{not json")); err == nil {
		t.Error("expected error for malformed payload")
	}
}

func TestDiscard(t *testing.T) {
	if err := (Discard{}).Publish(context.Background(), resultFixture(time.Now())); err != nil {
		t.Errorf("Discard.Publish returned %v", err)
	}
}
