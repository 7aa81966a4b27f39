package store

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Bolt stores each collection as two buckets: coll maps key to record and
// coll.order maps a big-endian sequence number to key.
type Bolt struct {
	db *bolt.DB
}

const orderSuffix = ".order"

func OpenBolt(path string) (*Bolt, error) {
	if path == "" {
		path = "booking.db"
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt: %w", err)
	}
	return &Bolt{db: db}, nil
}

func (b *Bolt) Get(_ context.Context, coll, key string) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bk := tx.Bucket([]byte(coll))
		if bk == nil {
			return ErrNotFound
		}
		v := bk.Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		// values are only valid inside the tx
		out = clone(v)
		return nil
	})
	return out, err
}

func (b *Bolt) Insert(_ context.Context, coll, key string, val []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bk, err := tx.CreateBucketIfNotExists([]byte(coll))
		if err != nil {
			return err
		}
		ord, err := tx.CreateBucketIfNotExists([]byte(coll + orderSuffix))
		if err != nil {
			return err
		}
		if bk.Get([]byte(key)) != nil {
			return ErrConflict
		}
		seq, err := ord.NextSequence()
		if err != nil {
			return err
		}
		if err := ord.Put(itob(seq), []byte(key)); err != nil {
			return err
		}
		return bk.Put([]byte(key), val)
	})
}

func (b *Bolt) Replace(_ context.Context, coll, key string, val []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bk := tx.Bucket([]byte(coll))
		if bk == nil || bk.Get([]byte(key)) == nil {
			return ErrNotFound
		}
		return bk.Put([]byte(key), val)
	})
}

func (b *Bolt) Delete(_ context.Context, coll, key string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bk := tx.Bucket([]byte(coll))
		if bk == nil || bk.Get([]byte(key)) == nil {
			return ErrNotFound
		}
		if err := bk.Delete([]byte(key)); err != nil {
			return err
		}
		ord := tx.Bucket([]byte(coll + orderSuffix))
		if ord == nil {
			return nil
		}
		c := ord.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			if string(v) == key {
				return c.Delete()
			}
		}
		return nil
	})
}

func (b *Bolt) Scan(ctx context.Context, coll string, fn func(key string, val []byte) error) error {
	type kv struct {
		k string
		v []byte
	}
	var recs []kv
	err := b.db.View(func(tx *bolt.Tx) error {
		bk := tx.Bucket([]byte(coll))
		ord := tx.Bucket([]byte(coll + orderSuffix))
		if bk == nil || ord == nil {
			return nil
		}
		return ord.ForEach(func(_, key []byte) error {
			v := bk.Get(key)
			if v == nil {
				return nil
			}
			recs = append(recs, kv{k: string(key), v: clone(v)})
			return nil
		})
	})
	if err != nil {
		return err
	}
	for _, r := range recs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(r.k, r.v); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bolt) Close() error { return b.db.Close() }

func itob(v uint64) []byte {
	out := make([]byte, 8)
	binary.BigEndian.PutUint64(out, v)
	return out
}
