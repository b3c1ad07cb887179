package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/taskdeck/taskdeck-server/internal/model"
)

// Hasher derives and verifies argon2id password hashes. Derivation
// parameters come from configuration; stored hashes embed the parameters
// they were created with, so changing configuration does not invalidate
// existing credentials.
type Hasher struct {
	time   uint32
	memKiB uint32
	par    uint8
}

// NewHasher creates a Hasher with the given argon2id parameters.
func NewHasher(time, memKiB uint32, par uint8) model.PasswordHasher {
	return &Hasher{time: time, memKiB: memKiB, par: par}
}

const (
	saltLength = 16
	keyLength  = 32
)

// Hash derives a salted argon2id hash and returns it in PHC string form:
// $argon2id$v=19$m=...,t=...,p=...$<salt>$<key>
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, h.time, h.memKiB, h.par, keyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.memKiB, h.time, h.par,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// Verify re-derives the key from the presented password using the
// parameters embedded in encodedHash and compares digests in constant
// time. Any parse failure reports a mismatch.
func (h *Hasher) Verify(password, encodedHash string) bool {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var (
		memKiB, time uint32
		par          uint8
	)
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memKiB, &time, &par); err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return false
	}

	derived := argon2.IDKey([]byte(password), salt, time, memKiB, par, uint32(len(key)))

	return subtle.ConstantTimeCompare(derived, key) == 1
}
