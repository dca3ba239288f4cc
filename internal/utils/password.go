// internal/utils/password.go
package utils

import "golang.org/x/crypto/bcrypt"

// The hash is computed once per signup attempt and parked in the staging
// cache, so a high cost never sits on a hot request path.
const bcryptCost = 14

// HashPassword derives the credential hash stored on staged and persisted
// accounts.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether the plaintext matches a stored hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
