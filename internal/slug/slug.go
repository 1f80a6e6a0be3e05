// Package slug generates short URL-safe identifiers for share links and
// slide ids.
package slug

import (
	"crypto/rand"
)

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// New returns a random identifier of n characters drawn from a lowercase
// base36 alphabet. Panics only if the OS random source is unreadable.
func New(n int) string {
	if n <= 0 {
		n = 10
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic("slug: read random bytes: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}

// Share returns a 10-character share slug.
func Share() string {
	return New(10)
}
