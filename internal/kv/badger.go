// ABOUTME: Badger-backed key-value store on local disk.
// ABOUTME: Default backend; badger diagnostics are routed to the app logger.

package kv

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v3"
	"github.com/sirupsen/logrus"
)

type Badger struct {
	db *badger.DB
}

// OpenBadger opens (creating if needed) a badger database in dir.
func OpenBadger(dir string, log logrus.FieldLogger) (*Badger, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return openBadger(badger.DefaultOptions(dir), log)
}

// OpenBadgerInMemory opens a badger database that lives only in memory.
func OpenBadgerInMemory(log logrus.FieldLogger) (*Badger, error) {
	return openBadger(badger.DefaultOptions("").WithInMemory(true), log)
}

func openBadger(opts badger.Options, log logrus.FieldLogger) (*Badger, error) {
	if log != nil {
		opts = opts.WithLogger(log.WithField("component", "badger"))
	} else {
		opts = opts.WithLogger(nil)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Badger{db: db}, nil
}

func (b *Badger) Get(_ context.Context, key string) (string, bool, error) {
	var val []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(val), true, nil
}

func (b *Badger) Set(_ context.Context, key, value string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
}

func (b *Badger) Close() error {
	return b.db.Close()
}
