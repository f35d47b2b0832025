// Package auth covers password hashing, session tokens, and Google sign-in.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltLen      = 16
)

// HashPassword derives a scrypt hash and returns it as "hexhash.hexsalt".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)
	key, err := scrypt.Key([]byte(password), []byte(saltHex), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return hex.EncodeToString(key) + "." + saltHex, nil
}

// VerifyPassword checks a supplied password against a stored hash using a
// constant-time comparison.
func VerifyPassword(supplied, stored string) bool {
	parts := strings.SplitN(stored, ".", 2)
	if len(parts) != 2 {
		return false
	}
	storedKey, err := hex.DecodeString(parts[0])
	if err != nil || len(storedKey) != scryptKeyLen {
		return false
	}
	key, err := scrypt.Key([]byte(supplied), []byte(parts[1]), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(storedKey, key) == 1
}

// RandomPassword returns a random hex string for accounts created through
// OAuth, which never log in with a password.
func RandomPassword() string {
	buf := make([]byte, 16)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}
