package model

// PasswordHasher produces and verifies salted one-way password digests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password matches digest. Malformed digests
	// yield false, never an error.
	Check(password, digest string) bool
}
