package filecache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns the lowercase hex SHA-256 digest of data.
//
// The digest is the cache key: equal content produces equal keys across runs
// and across file renames, so a datasheet saved under a new name still hits
// the cache, while any edit to the bytes forces a fresh upload.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
