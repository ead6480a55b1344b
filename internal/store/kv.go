// Package store persists ledger collections as JSON documents in a
// string key-value store.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Keys under which the ledger collections are stored.
const (
	KeyExpenses = "expenses"
	KeyBudgets  = "budgets"
)

// KV is a string key-value store.
type KV interface {
	// Get returns the value stored under key. ok is false when nothing is stored.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error
}

// Load decodes the JSON value stored under key. It returns def when nothing is
// stored, the read fails, or the stored content does not decode into T.
// Failures are logged at warn level and never returned.
func Load[T any](ctx context.Context, kv KV, key string, def T, logger *slog.Logger) T {
	if logger == nil {
		logger = slog.Default()
	}

	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		logger.Warn("reading stored value, using default", "key", key, "err", err)
		return def
	}
	if !ok || raw == "" || raw == "null" {
		return def
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		logger.Warn("decoding stored value, using default", "key", key, "err", err)
		return def
	}
	return v
}

// Save marshals value as JSON and overwrites whatever is stored under key.
func Save[T any](ctx context.Context, kv KV, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}
