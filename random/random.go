// Package random produces short random strings, used as order id
// suffixes so two checkouts in the same millisecond stay distinct.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"time"
)

const charset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var rng *mrand.Rand

func init() {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		rng = mrand.New(mrand.NewSource(time.Now().UnixNano()))
		return
	}
	rng = mrand.New(mrand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
}

// String returns a random string of the given length over an
// uppercase alphanumeric charset.
func String(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rng.Intn(len(charset))]
	}
	return string(b)
}
