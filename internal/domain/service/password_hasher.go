// Package service declares the credential primitives the use cases depend on.
package service

// PasswordHasher turns passwords into stored hashes and checks candidates against them.
// Only the first 72 bytes of a password are significant, on both Hash and Check.
type PasswordHasher interface {
	// Hash returns a salted hash; two calls with the same password differ.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
