package common

import (
	"crypto/rand"
	"encoding/hex"
)

// RandBytes returns size cryptographically random bytes. It panics only if
// the system randomness source is broken, which is unrecoverable anyway.
func RandBytes(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// RandHexString generates a random hexadecimal string from size random
// bytes; the resulting string is twice as long.
func RandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// WipeBytes overwrites the slice with zeros. Used to drop passwords from
// memory after hashing.
func WipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
