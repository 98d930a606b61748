package redis

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/adjutant-mcp/adjutant/internal/config"
)

// redisURL resolves the server under test. Unset skips the test; a
// redis:// value targets an existing server (manual mode); anything else
// starts a throwaway container.
func redisURL(t *testing.T) string {
	t.Helper()

	mode := os.Getenv("ADJUTANT_TEST_REDIS")
	if mode == "" {
		t.Skip("set ADJUTANT_TEST_REDIS=1 (or a redis:// URL) to run Redis integration tests")
	}
	if strings.HasPrefix(mode, "redis://") {
		return mode
	}

	ctx := context.Background()
	ctr, err := testcontainers.Run(ctx, "redis:7-alpine",
		testcontainers.WithExposedPorts("6379/tcp"),
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort("6379/tcp").WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("start redis container: %v", err)
	}
	t.Cleanup(func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		ctr.Terminate(cleanupCtx)
	})

	host, err := ctr.Host(ctx)
	if err != nil {
		t.Fatalf("get container host: %v", err)
	}
	port, err := ctr.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("get mapped port: %v", err)
	}
	return fmt.Sprintf("redis://%s:%s/0", host, port.Port())
}

func TestStore_Integration(t *testing.T) {
	url := redisURL(t)
	ctx := context.Background()

	store, err := New(ctx, config.RedisConfig{URL: url}, nil)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer store.Close()

	if err := store.Ping(ctx); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}

	// Namespaced keys so manual mode never clobbers real data.
	prefix := fmt.Sprintf("adjutant-test:%d", time.Now().UnixNano())
	key := func(s string) string { return prefix + ":" + s }

	if err := store.Set(ctx, key("alpha"), "1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set(ctx, key("beta"), "2"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, found, err := store.Get(ctx, key("alpha"))
	if err != nil || !found || value != "1" {
		t.Errorf("Get: value=%q found=%v err=%v", value, found, err)
	}

	_, found, err = store.Get(ctx, key("missing"))
	if err != nil {
		t.Fatalf("Get of absent key errored: %v", err)
	}
	if found {
		t.Error("expected found=false for absent key")
	}

	keys, err := store.Keys(ctx, prefix+":*")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != key("alpha") || keys[1] != key("beta") {
		t.Errorf("expected sorted [alpha beta] keys, got %v", keys)
	}

	existed, err := store.Delete(ctx, key("alpha"))
	if err != nil || !existed {
		t.Errorf("Delete present key: existed=%v err=%v", existed, err)
	}
	existed, err = store.Delete(ctx, key("alpha"))
	if err != nil {
		t.Fatalf("Delete of absent key errored: %v", err)
	}
	if existed {
		t.Error("expected existed=false deleting absent key")
	}

	store.Delete(ctx, key("beta"))
}

func TestNew_BadURL(t *testing.T) {
	_, err := New(context.Background(), config.RedisConfig{URL: "not-a-url"}, nil)
	if err == nil {
		t.Fatal("expected error for malformed URL")
	}
}
