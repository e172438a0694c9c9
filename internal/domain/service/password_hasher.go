// Package service declares the domain services the usecases depend on and the
// infrastructure implements: password hashing and token issuing.
package service

// PasswordHasher hashes account passwords and enforces the password policy.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. It never errors so that
	// login does not reveal why a comparison failed.
	Check(password, hash string) bool

	// ValidatePasswordStrength returns ErrPasswordStrength with the unmet rules.
	ValidatePasswordStrength(password string) error
}
