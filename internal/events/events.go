// Package events carries finished-round results over NATS.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Subject returns the subject results of gameID are published on.
// An empty gameID yields the wildcard covering every game.
func Subject(prefix, gameID string) string {
	prefix = strings.TrimSuffix(prefix, ".")
	if gameID == "" {
		return prefix + ".*"
	}
	return prefix + "." + gameID
}

// Encode serialises a result for the wire.
func Encode(r core.Result) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("events: cannot encode result: %w", err)
	}
	return data, nil
}

// Decode parses a result published by Encode.
func Decode(data []byte) (core.Result, error) {
	var r core.Result
	if err := json.Unmarshal(data, &r); err != nil {
		return core.Result{}, fmt.Errorf("events: cannot decode result: %w", err)
	}
	return r, nil
}

// Discard is a publisher that drops every result. It stands in when no
// NATS server is configured.
type Discard struct{}

func (Discard) Publish(context.Context, core.Result) error { return nil }
