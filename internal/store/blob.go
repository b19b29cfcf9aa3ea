package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// blobRepo implements BlobRepo over the blobs table.
type blobRepo struct {
	db *sql.DB
}

func (r *blobRepo) Load(ctx context.Context, key Key) ([]byte, bool, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("data").
		From(entsql.Table(BlobsTable.Name)).
		Where(entsql.EQ("name", string(key))).
		Query()

	var blob []byte
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	return blob, true, nil
}

func (r *blobRepo) Save(ctx context.Context, key Key, blob []byte) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(BlobsTable.Name).
		Columns("name", "data", "updated_at").
		Values(string(key), blob, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("name"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
