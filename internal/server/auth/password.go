package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the work factor for password hashing. 10 keeps interactive
// latency acceptable while making offline brute force expensive.
const bcryptCost = 10

// HashPassword produces a salted bcrypt verifier for the plaintext password.
// The verifier embeds its own salt and cost, so no extra bookkeeping is needed.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored verifier.
// A malformed verifier is reported as a mismatch, never as an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
