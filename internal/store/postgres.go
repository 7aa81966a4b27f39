package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Postgres struct {
	pool *pgxpool.Pool
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS records (
	seq        BIGSERIAL PRIMARY KEY,
	collection TEXT  NOT NULL,
	key        TEXT  NOT NULL,
	data       BYTEA NOT NULL,
	UNIQUE (collection, key)
)`

func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres schema: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Get(ctx context.Context, coll, key string) ([]byte, error) {
	var data []byte
	err := p.pool.QueryRow(ctx,
		`SELECT data FROM records WHERE collection = $1 AND key = $2`, coll, key,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return data, err
}

func (p *Postgres) Insert(ctx context.Context, coll, key string, val []byte) error {
	tag, err := p.pool.Exec(ctx,
		`INSERT INTO records (collection, key, data) VALUES ($1,$2,$3)
		 ON CONFLICT (collection, key) DO NOTHING`,
		coll, key, val,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrConflict
	}
	return nil
}

func (p *Postgres) Replace(ctx context.Context, coll, key string, val []byte) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE records SET data = $1 WHERE collection = $2 AND key = $3`,
		val, coll, key,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, coll, key string) error {
	tag, err := p.pool.Exec(ctx,
		`DELETE FROM records WHERE collection = $1 AND key = $2`, coll, key)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) Scan(ctx context.Context, coll string, fn func(key string, val []byte) error) error {
	rows, err := p.pool.Query(ctx,
		`SELECT key, data FROM records WHERE collection = $1 ORDER BY seq`, coll)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key  string
			data []byte
		)
		if err := rows.Scan(&key, &data); err != nil {
			return err
		}
		if err := fn(key, data); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
