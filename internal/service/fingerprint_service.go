package service

import (
	"encoding/hex"

	"dashqard-redemption/internal/core/domain"

	"golang.org/x/crypto/blake2b"
)

const fingerprintLen = 16

// Blake2bFingerprinter implements ports.Fingerprinter with keyed BLAKE2b.
// Numbers are normalized to local format first, so +233, 233 and 0 forms of
// one number share a fingerprint.
type Blake2bFingerprinter struct {
	key []byte
}

// NewBlake2bFingerprinter creates a fingerprinter. Keys longer than BLAKE2b's
// 64-byte limit are hashed down to 32 bytes.
func NewBlake2bFingerprinter(key string) *Blake2bFingerprinter {
	k := []byte(key)
	if len(k) > blake2b.Size {
		sum := blake2b.Sum256(k)
		k = sum[:]
	}
	return &Blake2bFingerprinter{key: k}
}

// Fingerprint returns a hex digest of the normalized phone, or "" for an empty number.
func (f *Blake2bFingerprinter) Fingerprint(phone string) string {
	local := domain.ToLocal(phone)
	if local == "" {
		return ""
	}
	h, err := blake2b.New(fingerprintLen, f.key)
	if err != nil {
		// Unreachable: the key is capped at blake2b.Size in the constructor.
		panic(err)
	}
	h.Write([]byte(local))
	return hex.EncodeToString(h.Sum(nil))
}
