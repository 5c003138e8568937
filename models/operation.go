package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Operation is an action on a catalog entry. The value is the key the
// service uses in an entry's "fields" mapping (e.g. "create_key").
type Operation string

// Operations declared by the catalog service.
const (
	OperationInput     Operation = "input"
	OperationCreateKey Operation = "create_key"
	OperationEncrypt   Operation = "encrypt"
	OperationDecrypt   Operation = "decrypt"
	OperationSign      Operation = "sign"
	OperationVerify    Operation = "verify"
)

// Label returns the display name: "create_key" becomes "Create Key".
func (o Operation) Label() string {
	words := strings.FieldsFunc(string(o), func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

// Slug returns the URL path segment of the operation key.
func (o Operation) Slug() string {
	return Slugify(string(o))
}
