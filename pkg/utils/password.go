package utils

import "golang.org/x/crypto/bcrypt"

// hashCost stays at the bcrypt default; raise it only together with a
// rehash-on-login strategy.
const hashCost = bcrypt.DefaultCost

// HashPassword returns the bcrypt hash of a plaintext password. bcrypt
// only fails on an out-of-range cost, so the error is swallowed here.
func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), hashCost)
	return string(b)
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
