package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/adjutant-mcp/adjutant/internal/common"
	"github.com/adjutant-mcp/adjutant/internal/config"
	"github.com/adjutant-mcp/adjutant/internal/interfaces"
	"github.com/adjutant-mcp/adjutant/internal/toolkit"
)

// handleGet returns the raw value. An absent key is a normal result with
// explanatory text, matching the del convention.
func handleGet(store interfaces.KeyValueStore) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		key := args.GetString("key", "")
		value, found, err := store.Get(ctx, key)
		if err != nil {
			return "", fmt.Errorf("failed to get key %q: %w", key, err)
		}
		if !found {
			return fmt.Sprintf("Key %q not found", key), nil
		}
		return value, nil
	}
}

func handleSet(store interfaces.KeyValueStore) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		key := args.GetString("key", "")
		if err := store.Set(ctx, key, args.GetString("value", "")); err != nil {
			return "", fmt.Errorf("failed to set key %q: %w", key, err)
		}
		return fmt.Sprintf("Set %q", key), nil
	}
}

// handleDel distinguishes a removed key from an absent one; both are
// successes.
func handleDel(store interfaces.KeyValueStore) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		key := args.GetString("key", "")
		existed, err := store.Delete(ctx, key)
		if err != nil {
			return "", fmt.Errorf("failed to delete key %q: %w", key, err)
		}
		if !existed {
			return fmt.Sprintf("Key %q not found, nothing deleted", key), nil
		}
		return fmt.Sprintf("Deleted %q", key), nil
	}
}

func handleListKeys(store interfaces.KeyValueStore) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		pattern := args.GetString("pattern", "*")
		keys, err := store.Keys(ctx, pattern)
		if err != nil {
			return "", fmt.Errorf("failed to list keys: %w", err)
		}
		if len(keys) == 0 {
			return fmt.Sprintf("No keys matching %q", pattern), nil
		}

		var sb strings.Builder
		sb.WriteString(common.Pluralize(len(keys), "key"))
		sb.WriteString(":\n")
		for _, k := range keys {
			sb.WriteString("- ")
			sb.WriteString(k)
			sb.WriteString("\n")
		}
		return strings.TrimRight(sb.String(), "\n"), nil
	}
}

func handleGetVersion(cfg *config.Config) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		driver := cfg.KV.Driver
		if driver == "" {
			driver = "redis"
		}
		target := common.RedactURL(cfg.KV.Redis.URL)
		if driver == "bolt" {
			target = cfg.KV.Bolt.Path
		}
		return fmt.Sprintf("%s\nVersion: %s\nBackend: %s (%s)\nStatus: OK",
			cfg.Server.Name, config.GetFullVersion(), driver, target), nil
	}
}
