package events

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

func resultFixture(finished time.Time) core.Result {
	return core.Result{GameID: "snake", Score: 35, Outcome: "game_over", Finished: finished}
}

// Set ARCADE_TEST_NATS=nats://host:4222 to run against a live server.
func TestClientPublishSubscribe(t *testing.T) {
	url := os.Getenv("ARCADE_TEST_NATS")
	if url == "" {
		t.Skip("ARCADE_TEST_NATS not set")
	}

	cfg := config.EventsConfig{
		NATSURL:       url,
		Subject:       "arcade.test." + time.Now().Format("150405"),
		MaxReconnects: 1,
		ReconnectWait: time.Second,
	}
	client, err := Connect(cfg, nil)
	if err != nil {
		t.Fatalf("Connect() failed: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	got := make(chan core.Result, 1)
	subscribed := make(chan error, 1)
	go func() {
		subscribed <- client.Subscribe(ctx, "", func(r core.Result) {
			select {
			case got <- r:
			default:
			}
		})
	}()

	want := resultFixture(time.Now().UTC().Truncate(time.Second))
	// The subscription is registered asynchronously; republish until seen.
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		if err := client.Publish(ctx, want); err != nil {
			t.Fatalf("Publish() failed: %v", err)
		}
		select {
		case r := <-got:
			if r.GameID != want.GameID || r.Score != want.Score {
				t.Errorf("received %+v, expected %+v", r, want)
			}
			cancel()
			<-subscribed
			return
		case <-ticker.C:
		case <-ctx.Done():
			t.Fatal("no result received before timeout")
		}
	}
}
