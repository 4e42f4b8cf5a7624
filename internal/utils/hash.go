package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"
	"sync"
)

// hasherPool holds HMAC-SHA256 instances keyed with the transport hash key.
// Must be initialized via InitHasherPool before use.
var hasherPool sync.Pool

// InitHasherPool configures the pool used by Hash. Both the server and the
// client call it once at startup when a hash key is configured.
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes the HMAC-SHA256 of data with a hasher from the pool.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashJSON returns the hex HMAC-SHA256 of the JSON encoding of v. The
// sender and the receiver hash their own encoding of the same struct, so
// field order and whitespace of the wire body do not matter.
func HashJSON(v any) (string, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal payload for hashing: %w", err)
	}

	return hex.EncodeToString(Hash(payload)), nil
}
