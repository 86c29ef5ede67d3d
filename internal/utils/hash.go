package utils

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for GUID hashing. Changing any of them changes every
// stored hash, so they are fixed.
const (
	guidHashTime    = 1
	guidHashMemory  = 64 * 1024
	guidHashThreads = 4
	guidHashKeyLen  = 32
)

// HashGUID derives the lookup key under which a test GUID is stored. The
// GUID is normalised (trimmed, upper-cased) and hashed with Argon2id using
// hashKey as the salt, so the same GUID always maps to the same hex digest
// while the raw GUID is never persisted.
//
// Example usage:
//
//	hashed := utils.HashGUID("3f2b1c-...", cfg.App.GUIDHashKey)
func HashGUID(guid, hashKey string) string {
	normalized := strings.ToUpper(strings.TrimSpace(guid))
	sum := argon2.IDKey([]byte(normalized), []byte(hashKey), guidHashTime, guidHashMemory, guidHashThreads, guidHashKeyLen)
	return hex.EncodeToString(sum)
}
