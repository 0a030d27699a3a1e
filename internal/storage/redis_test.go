package storage

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/config"
)

// Set ARCADE_TEST_REDIS=host:port to run against a live server.
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("ARCADE_TEST_REDIS")
	if addr == "" {
		t.Skip("ARCADE_TEST_REDIS not set")
	}

	ctx := context.Background()
	store, err := NewRedisStore(ctx, config.RedisConfig{Addr: addr, PoolSize: 2})
	if err != nil {
		t.Fatalf("NewRedisStore() failed: %v", err)
	}
	defer store.Close()

	suffix := fmt.Sprint(time.Now().UnixNano())
	hsKey := "high_score_test_" + suffix
	vKey := "Memoria_Avs" + suffix
	t.Cleanup(func() {
		store.client.Del(ctx, redisKey(hsKey), redisKey(vKey))
	})

	if got, err := store.HighScore(ctx, hsKey); err != nil || got != 0 {
		t.Fatalf("HighScore on missing key = %d, %v", got, err)
	}
	for _, s := range []int{30, 10, 50} {
		if err := store.SaveHighScore(ctx, hsKey, s); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", s, err)
		}
	}
	if got, _ := store.HighScore(ctx, hsKey); got != 50 {
		t.Errorf("HighScore = %d, expected 50", got)
	}

	store.AddVictory(ctx, vKey)
	got, err := store.AddVictory(ctx, vKey)
	if err != nil || got != 2 {
		t.Errorf("AddVictory = %d, %v; expected 2", got, err)
	}
	if n, _ := store.Victories(ctx, vKey); n != 2 {
		t.Errorf("Victories = %d, expected 2", n)
	}
}
