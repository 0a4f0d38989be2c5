package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultKDFIterations is the PBKDF2 iteration count used when the
	// configuration does not override it. Matches the minimum demanded
	// for slow password hashing.
	DefaultKDFIterations = 100_000

	// saltBytes is the length of per-user password salts.
	saltBytes = 32

	// tokenBytes is the length of raw session tokens before hex
	// encoding, giving 256 bits of entropy.
	tokenBytes = 32

	// hashBytes is the PBKDF2 output length.
	hashBytes = 32
)

// DeriveKey runs PBKDF2-HMAC-SHA256 over the password with the given salt
// and iteration count and returns the derived key hex encoded. The salt
// string is fed to the KDF as-is, without hex decoding, so hashes stored
// by earlier deployments keep verifying.
func DeriveKey(password, salt string, iterations int) string {
	if iterations <= 0 {
		iterations = DefaultKDFIterations
	}

	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, hashBytes, sha256.New)

	return hex.EncodeToString(key)
}

// VerifyKey recomputes the PBKDF2 hash for the password and compares it to
// the stored hex hash in constant time. Returns true only on an exact match.
func VerifyKey(password, salt, storedHashHex string, iterations int) bool {
	derived := DeriveKey(password, salt, iterations)

	return subtle.ConstantTimeCompare([]byte(derived), []byte(storedHashHex)) == 1
}

// NewSalt returns a fresh random password salt, hex encoded.
func NewSalt() (string, error) {
	return randomHex(saltBytes)
}

// NewSessionToken returns a fresh opaque session token with 256 bits of
// entropy, hex encoded.
func NewSessionToken() (string, error) {
	return randomHex(tokenBytes)
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
