package auth

import "golang.org/x/crypto/bcrypt"

// PasswordCost is the fixed bcrypt work factor for staff credentials.
const PasswordCost = 10

// dummyHash is compared against when no account matches, so that unknown
// emails and wrong passwords take the same time to reject.
var dummyHash = mustHash("visitor-service-dummy-password")

// HashPassword hashes a plaintext password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// CompareDummy burns one comparison against a fixed hash and always fails.
func CompareDummy(plain string) error {
	if err := ComparePassword(dummyHash, plain); err != nil {
		return err
	}
	return bcrypt.ErrMismatchedHashAndPassword
}

func mustHash(password string) string {
	hashed, err := HashPassword(password)
	if err != nil {
		panic(err)
	}
	return hashed
}
