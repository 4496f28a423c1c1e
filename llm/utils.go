package llm

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"time"
)

const batchIDLen = 24

// newBatchID returns a 12-byte id, hex encoded: a 4-byte unix timestamp
// followed by 8 random bytes. tellm groups one session's completions under it.
func newBatchID(now time.Time) string {
	id := make([]byte, 12)
	binary.BigEndian.PutUint32(id[:4], uint32(now.Unix()))
	_, _ = rand.Read(id[4:])
	return hex.EncodeToString(id)
}

// EnsureBatchID returns s when it is a well formed batch id and a fresh one otherwise.
func EnsureBatchID(s string) string {
	if len(s) == batchIDLen {
		if _, err := hex.DecodeString(s); err == nil {
			return s
		}
	}
	return newBatchID(time.Now())
}
