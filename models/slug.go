package models

import "strings"

// Slugify turns a title into a lowercase path segment. Surrounding whitespace
// is trimmed and every inner space becomes "_", so "Signature on ElGammal"
// gives "signature_on_elgammal". Slugify is idempotent.
func Slugify(title string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(title)), " ", "_")
}
