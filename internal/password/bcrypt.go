package password

import "golang.org/x/crypto/bcrypt"

// cost is the fixed bcrypt work factor.
const cost = 10

// Bcrypt implements model.PasswordHasher with salted bcrypt digests.
type Bcrypt struct{}

// NewBcrypt creates a bcrypt-backed password hasher.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{}
}

// Hash produces a salted digest of password. Each call salts independently,
// so equal inputs produce distinct digests.
func (h *Bcrypt) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Check reports whether password produced digest. The comparison is
// constant-time; malformed digests yield false.
func (h *Bcrypt) Check(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
