package utils

import (
	"crypto/sha256"

	"golang.org/x/crypto/bcrypt"
)

// preHash folds arbitrarily long passwords under bcrypt's 72-byte input limit.
func preHash(pw string) []byte {
	h := sha256.Sum256([]byte(pw))
	return h[:]
}

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(preHash(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword accepts both pre-hashed and legacy direct bcrypt hashes.
func VerifyPassword(pw, hash string) bool {
	if bcrypt.CompareHashAndPassword([]byte(hash), preHash(pw)) == nil {
		return true
	}
	if len(pw) > 72 {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
