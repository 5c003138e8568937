// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-crypto-catalog/models"
)

const (
	entriesTable = "entries"
	fieldsTable  = "entry_fields"
)

// sqlite uses "?" placeholders.
var catalogQueryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var (
	entryColumns = []string{"entry_id", "title", "content"}
	fieldColumns = []string{"entry_id", "operation", "type", "name", "placeholder", "element_id"}
)

func buildSelectEntriesQuery(category models.Category) (string, []any, error) {
	return catalogQueryBuilder.
		Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"category": category.Slug()}).
		OrderBy("position", "entry_id").
		ToSql()
}

func buildSelectEntryQuery(category models.Category, slug string) (string, []any, error) {
	return catalogQueryBuilder.
		Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"category": category.Slug(), "slug": slug}).
		Limit(1).
		ToSql()
}

// buildSelectFieldsQuery selects the schemas of every entry in entryIDs,
// grouped by entry and operation, in display order.
func buildSelectFieldsQuery(entryIDs []int64) (string, []any, error) {
	return catalogQueryBuilder.
		Select(fieldColumns...).
		From(fieldsTable).
		Where(sq.Eq{"entry_id": entryIDs}).
		OrderBy("entry_id", "operation", "position").
		ToSql()
}
