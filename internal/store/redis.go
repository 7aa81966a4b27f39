package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis keeps a collection in three keys: a hash of records, a sorted set
// ordering keys by insertion, and a counter feeding the scores.
type Redis struct {
	client *redis.Client
	prefix string
}

var insertScript = redis.NewScript(`
if redis.call("HSETNX", KEYS[1], ARGV[1], ARGV[2]) == 0 then
	return 0
end
local seq = redis.call("INCR", KEYS[3])
redis.call("ZADD", KEYS[2], seq, ARGV[1])
return 1
`)

var replaceScript = redis.NewScript(`
if redis.call("HEXISTS", KEYS[1], ARGV[1]) == 0 then
	return 0
end
redis.call("HSET", KEYS[1], ARGV[1], ARGV[2])
return 1
`)

// OpenRedis accepts a redis:// URL.
func OpenRedis(ctx context.Context, dsn string) (*Redis, error) {
	opts, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Redis{client: client, prefix: "booking"}, nil
}

func (r *Redis) keys(coll string) (data, order, seq string) {
	base := r.prefix + ":" + coll
	return base, base + ":order", base + ":seq"
}

func (r *Redis) Get(ctx context.Context, coll, key string) ([]byte, error) {
	data, _, _ := r.keys(coll)
	v, err := r.client.HGet(ctx, data, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return v, err
}

func (r *Redis) Insert(ctx context.Context, coll, key string, val []byte) error {
	data, order, seq := r.keys(coll)
	n, err := insertScript.Run(ctx, r.client, []string{data, order, seq}, key, val).Int()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrConflict
	}
	return nil
}

func (r *Redis) Replace(ctx context.Context, coll, key string, val []byte) error {
	data, _, _ := r.keys(coll)
	n, err := replaceScript.Run(ctx, r.client, []string{data}, key, val).Int()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, coll, key string) error {
	data, order, _ := r.keys(coll)
	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.HDel(ctx, data, key)
		pipe.ZRem(ctx, order, key)
		return nil
	})
	if err != nil {
		return err
	}
	if del.Val() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Redis) Scan(ctx context.Context, coll string, fn func(key string, val []byte) error) error {
	data, order, _ := r.keys(coll)
	keys, err := r.client.ZRange(ctx, order, 0, -1).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	vals, err := r.client.HMGet(ctx, data, keys...).Result()
	if err != nil {
		return err
	}
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			// removed between the two reads
			continue
		}
		if err := fn(keys[i], []byte(s)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Redis) Close() error { return r.client.Close() }
