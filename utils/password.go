package utils

import (
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CheckPassword compares a stored credential with the password a client
// sent. Legacy accounts store the password in cleartext and are compared
// by equality; values that look like a bcrypt hash are compared with
// bcrypt, so the two schemes can coexist in one users table while old
// accounts migrate.
func CheckPassword(stored, given string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return stored == given
}

// HashPasswordIfEnabled returns the value to store for a new account.
// With HASH_PASSWORDS=true new passwords are bcrypt-hashed; otherwise the
// cleartext is kept for compatibility with the existing seed data.
func HashPasswordIfEnabled(password string) (string, error) {
	if os.Getenv("HASH_PASSWORDS") != "true" {
		return password, nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
