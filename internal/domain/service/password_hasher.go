// Package service defines the domain service contracts implemented by the
// infra layer.
package service

// PasswordHasher is the contract for one-way credential hashing.
type PasswordHasher interface {
	// Hash produces a salted one-way hash of the plaintext password. Equal
	// inputs yield different hashes across calls.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	// A wrong password returns false, never an error.
	Check(password, hash string) bool
}
