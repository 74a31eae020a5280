package ingest

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
)

// Fingerprint computes the dedup hash of a normalized record: non-null
// fields formatted as "name:value", sorted by name, joined with "|" and
// digested. Two records with identical non-null field values collide on
// purpose; the result is a dedup key, not a storage key.
func Fingerprint(fields map[string]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+":"+fields[name])
	}

	sum := md5.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}
