package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint derives the deterministic cache key for one extraction
// request: a digest over the content prefixed with the markup flag, so the
// same bytes submitted as HTML and as plain text cache separately.
func Fingerprint(content string, markup bool) string {
	prefix := "text\n\n"
	if markup {
		prefix = "html\n\n"
	}
	h := sha256.Sum256([]byte(prefix + content))
	return hex.EncodeToString(h[:])
}
