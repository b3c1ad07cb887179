package model

// PasswordHasher derives and verifies one-way password hashes.
// Verify must compare digests in constant time.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) bool
}
