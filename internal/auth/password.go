package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor for new hashes.
const PasswordCost = 10

// maxPasswordBytes is bcrypt's input limit. Longer passwords are truncated
// rather than rejected, so only their first 72 bytes are significant.
const maxPasswordBytes = 72

// dummyHash is compared against when no stored hash exists, so a login for
// an unknown user costs the same as one with a wrong password.
var dummyHash = mustHash("dummy-password-for-timing")

func mustHash(password string) []byte {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		panic(err)
	}
	return hashed
}

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// HashPassword returns a salted bcrypt hash of password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncate(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches hashed. The comparison is
// bcrypt's own constant-time one.
func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), truncate(password)) == nil
}

// CheckAbsentPassword spends a full bcrypt comparison and reports false. It
// stands in for CheckPassword when the user does not exist.
func CheckAbsentPassword(password string) bool {
	_ = bcrypt.CompareHashAndPassword(dummyHash, truncate(password))
	return false
}
