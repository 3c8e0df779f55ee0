package auth

import (
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt only reads the first 72 bytes of its input. Passwords are cut
// to that ceiling before hashing and verification, so inputs differing
// only beyond byte 72 hash identically.
const maxPasswordBytes = 72

// HashPassword salts and hashes a password into an opaque string safe
// to persist.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches hash. Any mismatch or
// malformed hash yields false.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password)) == nil
}

// truncatePassword cuts the password to 72 bytes without leaving a
// partial UTF-8 sequence at the end.
func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) <= maxPasswordBytes {
		return b
	}
	b = b[:maxPasswordBytes]
	for len(b) > 0 {
		r, size := utf8.DecodeLastRune(b)
		if r == utf8.RuneError && size <= 1 {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	return b
}
