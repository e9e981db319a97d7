package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest at the given cost. The salt is
// embedded in the digest, so nothing else needs to be stored.
func HashPassword(plaintext string, cost int) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plaintext), cost)
}

// VerifyPassword reports whether plaintext matches the digest. Malformed
// digests simply fail verification.
func VerifyPassword(plaintext string, digest []byte) bool {
	return bcrypt.CompareHashAndPassword(digest, []byte(plaintext)) == nil
}
