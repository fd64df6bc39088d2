package util

import (
	"crypto/rand"
	"io"
)

const charset = "0123456789abcdefghijklmnopqrstuvwxyz"

// maxUnbiased is the largest multiple of len(charset) not above 256.
const maxUnbiased = 256 - 256%len(charset)

// RandStringLC returns a random string of length n made of digits and lower-case letters.
func RandStringLC(n int) string {
	s, err := randString(rand.Reader, n)
	if err != nil {
		panic(err)
	}
	return s
}

// randString maps bytes of r onto charset, skipping bytes at or above maxUnbiased
// so that every character is equally likely.
func randString(r io.Reader, n int) (string, error) {
	out := make([]byte, 0, n)
	buf := make([]byte, n+n/4+1)
	for len(out) < n {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= maxUnbiased {
				continue
			}
			if out = append(out, charset[int(b)%len(charset)]); len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
