package service

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/dtroode/deckhub-server/internal/model"
)

const (
	saltSize = 16
	keySize  = 32
)

// hashPassword derives an argon2id key with a fresh random salt.
func hashPassword(password string, kdf model.KDFParams) (hash, salt []byte, err error) {
	salt = make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return deriveKey(password, salt, kdf), salt, nil
}

// verifyPassword recomputes the key with the stored parameters.
func verifyPassword(password string, user model.User) bool {
	if len(user.PasswordHash) == 0 {
		return false
	}
	key := deriveKey(password, user.PasswordSalt, user.KDF)
	return subtle.ConstantTimeCompare(key, user.PasswordHash) == 1
}

func deriveKey(password string, salt []byte, kdf model.KDFParams) []byte {
	return argon2.IDKey([]byte(password), salt, kdf.Time, kdf.MemKiB, kdf.Threads, keySize)
}
