// ABOUTME: Key-value persistence contract used by the note store.
// ABOUTME: Selects and opens a backend (badger, sqlite, redis, memory) from config.

package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/harper/quicknotes/internal/config"
	"github.com/harper/quicknotes/internal/db"
	"github.com/sirupsen/logrus"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Backend stores string values under string keys.
type Backend interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open builds the backend named in cfg.
func Open(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (Backend, error) {
	var (
		b   Backend
		err error
	)
	switch cfg.Backend {
	case config.BackendBadger:
		b, err = OpenBadger(cfg.DataPath(), log)
	case config.BackendSQLite:
		b, err = db.Open(cfg.DataPath())
	case config.BackendRedis:
		b, err = OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
	case config.BackendMemory:
		b = NewMemory()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
