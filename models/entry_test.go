package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rsaEntry() Entry {
	return Entry{
		ID:    "1",
		Title: "RSA",
		Schemas: map[Operation][]FieldSchema{
			OperationDecrypt:   {{Type: FieldTextarea, Name: "encrypted_message", Placeholder: "Encrypted message"}},
			OperationCreateKey: {{Type: FieldNumber, Name: "bits", Placeholder: "Bits"}},
			OperationEncrypt: {
				{Type: FieldNumber, Name: "n", Placeholder: "n"},
				{Type: FieldNumber, Name: "e", Placeholder: "e"},
				{Type: FieldTextarea, Name: "message", Placeholder: "Message"},
			},
			"benchmark": {{Type: FieldNumber, Name: "rounds"}},
		},
	}
}

func TestEntry_Operations_CanonicalOrderFirst(t *testing.T) {
	ops := rsaEntry().Operations(Cryptosystem)
	assert.Equal(t, []Operation{OperationCreateKey, OperationEncrypt, OperationDecrypt, "benchmark"}, ops)
}

func TestEntry_Fields(t *testing.T) {
	e := rsaEntry()

	fields := e.Fields(OperationEncrypt)
	require.Len(t, fields, 3)
	assert.Equal(t, []string{"n", "e", "message"}, []string{fields[0].Name, fields[1].Name, fields[2].Name})

	missing := e.Fields(OperationSign)
	assert.NotNil(t, missing)
	assert.Empty(t, missing)
}


func TestFieldType_Normalize(t *testing.T) {
	assert.Equal(t, FieldNumber, FieldType("Number").Normalize())
	assert.Equal(t, FieldTextarea, FieldType("textarea").Normalize())
	assert.Equal(t, FieldText, FieldType("email").Normalize())
	assert.Equal(t, FieldText, FieldType("").Normalize())
}

func TestCatalogState_GuardsIndexing(t *testing.T) {
	var notLoaded CatalogState
	_, ok := notLoaded.Entry(0)
	assert.False(t, ok)
	assert.Nil(t, notLoaded.Entries())
	assert.Equal(t, 0, notLoaded.Len())

	failed := NewFailedCatalog(errors.New("boom"))
	_, ok = failed.Entry(0)
	assert.False(t, ok)
	assert.Equal(t, CatalogFailed, failed.Status)

	loaded := NewLoadedCatalog([]Entry{rsaEntry()})
	e, ok := loaded.Entry(0)
	require.True(t, ok)
	assert.Equal(t, "RSA", e.Title)

	_, ok = loaded.Entry(1)
	assert.False(t, ok)
	_, ok = loaded.Entry(-1)
	assert.False(t, ok)
}

func TestFormValues(t *testing.T) {
	var v FormValues
	assert.Equal(t, "", v.Get("bits"))

	v1 := v.With("bits", "1024")
	v2 := v1.With("bits", "2048")

	assert.Equal(t, "1024", v1.Get("bits"))
	assert.Equal(t, "2048", v2.Get("bits"))

	all := v2.With("stray", "x").ForFields(rsaEntry().Fields(OperationEncrypt))
	assert.Equal(t, FormValues{"n": "", "e": "", "message": ""}, all)
}
