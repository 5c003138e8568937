package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-crypto-catalog/internal/logger"
	"github.com/MKhiriev/go-crypto-catalog/models"
)

// catalogRepository is the sqlite-backed implementation of
// [CatalogRepository]. Entries live in the "entries" table and their form
// schemas in "entry_fields".
type catalogRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCatalogRepository constructs a [CatalogRepository] backed by db.
func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	logger.Debug().Msg("creating catalog repository")
	return &catalogRepository{
		db:     db,
		logger: logger,
	}
}

// ListEntries loads the entries of category with a second query for their
// fields. An empty category yields an empty, non-nil slice.
func (r *catalogRepository) ListEntries(ctx context.Context, category models.Category) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntriesQuery(category)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.ListEntries").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*catalogRepository.ListEntries").
			Str("category", category.Slug()).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.Entry, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var (
			id    int64
			entry models.Entry
		)
		if err = rows.Scan(&id, &entry.Title, &entry.Content); err != nil {
			log.Err(err).Str("func", "*catalogRepository.ListEntries").Msg("failed to scan entry")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entry.ID = strconv.FormatInt(id, 10)
		entries = append(entries, entry)
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*catalogRepository.ListEntries").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err = r.attachFields(ctx, entries, ids); err != nil {
		return nil, err
	}

	return entries, nil
}

// FindEntry looks an entry up by its title slug.
func (r *catalogRepository) FindEntry(ctx context.Context, category models.Category, slug string) (models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntryQuery(category, slug)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.FindEntry").Msg("failed to create query")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		id    int64
		entry models.Entry
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id, &entry.Title, &entry.Content)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Entry{}, ErrEntryNotFound
	case err != nil:
		log.Err(err).
			Str("func", "*catalogRepository.FindEntry").
			Str("category", category.Slug()).
			Str("slug", slug).
			Msg("failed to scan entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	entry.ID = strconv.FormatInt(id, 10)

	entries := []models.Entry{entry}
	if err = r.attachFields(ctx, entries, []int64{id}); err != nil {
		return models.Entry{}, err
	}

	return entries[0], nil
}

// attachFields fills Schemas of entries, where ids[i] is the row id of
// entries[i].
func (r *catalogRepository) attachFields(ctx context.Context, entries []models.Entry, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	query, args, err := buildSelectFieldsQuery(ids)
	if err != nil {
		log.Err(err).Str("func", "*catalogRepository.attachFields").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*catalogRepository.attachFields").
			Int("entries", len(ids)).
			Msg("failed to execute query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entryID int64
			op      string
			field   models.FieldSchema
		)
		if err = rows.Scan(&entryID, &op, &field.Type, &field.Name, &field.Placeholder, &field.ElementID); err != nil {
			log.Err(err).Str("func", "*catalogRepository.attachFields").Msg("failed to scan field")
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		i, ok := index[entryID]
		if !ok {
			continue
		}
		if entries[i].Schemas == nil {
			entries[i].Schemas = make(map[models.Operation][]models.FieldSchema)
		}
		operation := models.Operation(op)
		entries[i].Schemas[operation] = append(entries[i].Schemas[operation], field)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*catalogRepository.attachFields").Msg("rows iteration error")
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}
