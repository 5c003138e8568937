package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-crypto-catalog/models"
)

func TestBuildSelectEntriesQuery(t *testing.T) {
	tests := []struct {
		name     string
		category models.Category
		wantArg  string
	}{
		{name: "algorithm", category: models.Algorithm, wantArg: "algorithm"},
		{name: "cryptosystem", category: models.Cryptosystem, wantArg: "cryptosystem"},
		{name: "digital signature", category: models.DigitalSignature, wantArg: "digital_signature"},
		{name: "article", category: models.Article, wantArg: "article"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectEntriesQuery(tt.category)
			require.NoError(t, err)

			assert.Equal(t,
				"SELECT entry_id, title, content FROM entries WHERE category = ? ORDER BY position, entry_id",
				query)
			assert.Equal(t, []any{tt.wantArg}, args)
		})
	}
}

func TestBuildSelectEntryQuery(t *testing.T) {
	query, args, err := buildSelectEntryQuery(models.Cryptosystem, "rsa")
	require.NoError(t, err)

	assert.Contains(t, query, "SELECT entry_id, title, content FROM entries WHERE category = ? AND slug = ?")
	assert.Contains(t, query, "LIMIT 1")
	assert.Equal(t, []any{"cryptosystem", "rsa"}, args)
}

func TestBuildSelectFieldsQuery(t *testing.T) {
	t.Run("several entries", func(t *testing.T) {
		query, args, err := buildSelectFieldsQuery([]int64{4, 5, 6})
		require.NoError(t, err)

		assert.Equal(t,
			"SELECT entry_id, operation, type, name, placeholder, element_id FROM entry_fields "+
				"WHERE entry_id IN (?,?,?) ORDER BY entry_id, operation, position",
			query)
		assert.Equal(t, []any{int64(4), int64(5), int64(6)}, args)
	})

	t.Run("single entry", func(t *testing.T) {
		query, args, err := buildSelectFieldsQuery([]int64{9})
		require.NoError(t, err)

		assert.Contains(t, query, "WHERE entry_id IN (?)")
		assert.Equal(t, []any{int64(9)}, args)
	})
}
