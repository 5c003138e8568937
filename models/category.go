// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Category is a top-level grouping of the catalog. The set is fixed at
// compile time; entries inside a category are loaded from the service.
type Category int

const (
	// Algorithm groups number-theoretic building blocks (Miller-Rabin,
	// extended Euclide, modular exponentiation, ...). Entries expose a single
	// "input" operation.
	Algorithm Category = iota + 1

	// Cryptosystem groups public-key and classical ciphers. Entries expose
	// create_key, encrypt and decrypt.
	Cryptosystem

	// DigitalSignature groups signature schemes. Entries expose create_key,
	// sign and verify.
	DigitalSignature

	// Article groups blog posts. Entries carry rich-text content and no
	// operations.
	Article
)

// Categories lists every category in menu order.
var Categories = []Category{Algorithm, Cryptosystem, DigitalSignature, Article}

var categoryOperations = map[Category][]Operation{
	Algorithm:        {OperationInput},
	Cryptosystem:     {OperationCreateKey, OperationEncrypt, OperationDecrypt},
	DigitalSignature: {OperationCreateKey, OperationSign, OperationVerify},
}

// Title returns the human-readable category name.
func (c Category) Title() string {
	switch c {
	case Algorithm:
		return "Algorithm"
	case Cryptosystem:
		return "Cryptosystem"
	case DigitalSignature:
		return "Digital Signature"
	case Article:
		return "Article"
	default:
		return "Unknown"
	}
}

// Slug returns the URL path segment of the category.
func (c Category) Slug() string {
	return Slugify(c.Title())
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c >= Algorithm && c <= Article
}

// HasOperations reports whether entries of c declare operation schemas.
func (c Category) HasOperations() bool {
	return c.Valid() && c != Article
}

// Operations returns the canonical operation order for c. Entries may declare
// extra operations; see [Entry.Operations].
func (c Category) Operations() []Operation {
	ops := categoryOperations[c]
	out := make([]Operation, len(ops))
	copy(out, ops)
	return out
}

// CategoryFromSlug resolves a path segment back to a category.
func CategoryFromSlug(slug string) (Category, bool) {
	for _, c := range Categories {
		if c.Slug() == Slugify(slug) {
			return c, true
		}
	}
	return 0, false
}
