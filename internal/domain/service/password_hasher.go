// Package service defines interfaces for stateless domain capabilities backed
// by infrastructure (identity, relay, publishing, rendering helpers).
package service

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}
