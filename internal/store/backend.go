package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// Backend is a durable key-value space split into named collections.
// Records keep the order they were first inserted in; Replace does not move them.
type Backend interface {
	Get(ctx context.Context, coll, key string) ([]byte, error)
	// Insert stores val under key unless the key is taken, in which case it
	// returns ErrConflict. The check and the write are one atomic step.
	Insert(ctx context.Context, coll, key string, val []byte) error
	Replace(ctx context.Context, coll, key string, val []byte) error
	Delete(ctx context.Context, coll, key string) error
	// Scan visits records in insertion order. An absent collection is empty.
	Scan(ctx context.Context, coll string, fn func(key string, val []byte) error) error
	Close() error
}

const (
	DriverMemory   = "memory"
	DriverBolt     = "bolt"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// OpenBackend picks a backend by driver name.
func OpenBackend(ctx context.Context, driver, dsn string) (Backend, error) {
	switch strings.ToLower(driver) {
	case DriverMemory, "":
		return NewMemory(), nil
	case DriverBolt:
		return OpenBolt(dsn)
	case DriverSQLite:
		return OpenSQLite(dsn)
	case DriverPostgres:
		return OpenPostgres(ctx, dsn)
	case DriverRedis:
		return OpenRedis(ctx, dsn)
	}
	return nil, fmt.Errorf("store: unknown driver %q", driver)
}
