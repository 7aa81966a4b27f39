package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite" // sqlite driver
)

type SQLite struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLite, error) {
	if path == "" {
		path = "booking.sqlite"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(30 * time.Minute)

	for _, pragma := range []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA cache_size=1000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if err := createSQLiteSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func createSQLiteSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			collection TEXT NOT NULL,
			key TEXT NOT NULL,
			data BLOB NOT NULL,
			UNIQUE (collection, key)
		)
	`)
	return err
}

func (s *SQLite) Get(ctx context.Context, coll, key string) ([]byte, error) {
	const q = `SELECT data FROM records WHERE collection = ? AND key = ?`

	var data []byte
	err := s.db.QueryRowContext(ctx, q, coll, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return data, err
}

func (s *SQLite) Insert(ctx context.Context, coll, key string, val []byte) error {
	const q = `INSERT INTO records (collection, key, data) VALUES (?, ?, ?)
		ON CONFLICT (collection, key) DO NOTHING`

	res, err := s.db.ExecContext(ctx, q, coll, key, val)
	if err != nil {
		return err
	}
	return expectOne(res, ErrConflict)
}

func (s *SQLite) Replace(ctx context.Context, coll, key string, val []byte) error {
	const q = `UPDATE records SET data = ? WHERE collection = ? AND key = ?`

	res, err := s.db.ExecContext(ctx, q, val, coll, key)
	if err != nil {
		return err
	}
	return expectOne(res, ErrNotFound)
}

func (s *SQLite) Delete(ctx context.Context, coll, key string) error {
	const q = `DELETE FROM records WHERE collection = ? AND key = ?`

	res, err := s.db.ExecContext(ctx, q, coll, key)
	if err != nil {
		return err
	}
	return expectOne(res, ErrNotFound)
}

func (s *SQLite) Scan(ctx context.Context, coll string, fn func(key string, val []byte) error) error {
	const q = `SELECT key, data FROM records WHERE collection = ? ORDER BY seq`

	rows, err := s.db.QueryContext(ctx, q, coll)
	if err != nil {
		return err
	}

	// drain first: the single connection must be free before fn runs
	type kv struct {
		k string
		v []byte
	}
	var recs []kv
	for rows.Next() {
		var r kv
		if err := rows.Scan(&r.k, &r.v); err != nil {
			rows.Close()
			return err
		}
		recs = append(recs, r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	for _, r := range recs {
		if err := fn(r.k, r.v); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func expectOne(res sql.Result, otherwise error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return otherwise
	}
	return nil
}
