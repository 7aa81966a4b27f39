package store

import (
	"context"
	"errors"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errStop = errors.New("stop")

// Collection is a typed view over one named collection of a Backend.
// Records are stored as JSON; keyOf names the storage key of a record.
type Collection[T any] struct {
	name  string
	be    Backend
	keyOf func(T) string
	log   *zap.Logger
}

func NewCollection[T any](be Backend, name string, keyOf func(T) string, log *zap.Logger) *Collection[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Collection[T]{name: name, be: be, keyOf: keyOf, log: log}
}

func (c *Collection[T]) decode(key string, raw []byte) (T, bool) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		c.log.Warn("skipping malformed record",
			zap.String("collection", c.name),
			zap.String("key", key),
			zap.Error(err),
		)
		return v, false
	}
	return v, true
}

// List returns every readable record in insertion order.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	out := []T{}
	err := c.be.Scan(ctx, c.name, func(key string, raw []byte) error {
		if v, ok := c.decode(key, raw); ok {
			out = append(out, v)
		}
		return nil
	})
	return out, err
}

// Append inserts v unless its key is taken (ErrConflict).
func (c *Collection[T]) Append(ctx context.Context, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.be.Insert(ctx, c.name, c.keyOf(v), raw)
}

func (c *Collection[T]) Get(ctx context.Context, key string) (T, error) {
	var zero T
	raw, err := c.be.Get(ctx, c.name, key)
	if err != nil {
		return zero, err
	}
	v, ok := c.decode(key, raw)
	if !ok {
		return zero, ErrNotFound
	}
	return v, nil
}

// FindOne returns the first record, in insertion order, matching pred.
func (c *Collection[T]) FindOne(ctx context.Context, pred func(T) bool) (T, error) {
	var (
		found T
		hit   bool
	)
	err := c.be.Scan(ctx, c.name, func(key string, raw []byte) error {
		v, ok := c.decode(key, raw)
		if ok && pred(v) {
			found, hit = v, true
			return errStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		return found, err
	}
	if !hit {
		return found, ErrNotFound
	}
	return found, nil
}

// Remove deletes every record matching pred and reports how many went.
func (c *Collection[T]) Remove(ctx context.Context, pred func(T) bool) (int, error) {
	var keys []string
	err := c.be.Scan(ctx, c.name, func(key string, raw []byte) error {
		if v, ok := c.decode(key, raw); ok && pred(v) {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	n := 0
	for _, k := range keys {
		switch err := c.be.Delete(ctx, c.name, k); {
		case err == nil:
			n++
		case errors.Is(err, ErrNotFound):
			// someone else got there first
		default:
			return n, err
		}
	}
	return n, nil
}

func (c *Collection[T]) RemoveKey(ctx context.Context, key string) error {
	return c.be.Delete(ctx, c.name, key)
}

// Replace overwrites the record stored under v's key.
func (c *Collection[T]) Replace(ctx context.Context, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.be.Replace(ctx, c.name, c.keyOf(v), raw)
}
