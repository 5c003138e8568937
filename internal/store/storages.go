package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-crypto-catalog/internal/logger"
)

type Storages struct {
	CatalogRepository CatalogRepository

	db *DB
}

// NewStorages opens the sqlite catalog at dsn and applies the embedded
// migrations.
func NewStorages(ctx context.Context, dsn string, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("connect catalog db: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate catalog db: %w", err)
	}

	return &Storages{
		CatalogRepository: NewCatalogRepository(db, log),
		db:                db,
	}, nil
}

func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
