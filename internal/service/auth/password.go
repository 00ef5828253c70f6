package auth

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/dashsoft/identity-api/internal/config"
)

// Password policy errors.
var (
	ErrPasswordTooShort   = errors.New("password is shorter than the policy minimum")
	ErrMissingUppercase   = errors.New("password must contain an uppercase letter")
	ErrMissingLowercase   = errors.New("password must contain a lowercase letter")
	ErrMissingDigit       = errors.New("password must contain a digit")
	ErrMissingSpecialChar = errors.New("password must contain a special character")
)

// CheckPolicy verifies a candidate password against the configured policy.
// A nil policy accepts anything; the configuration validator has already
// rejected policies weaker than the service minimum.
func CheckPolicy(password string, policy *config.PasswordPolicy) error {
	if policy == nil {
		return nil
	}
	if len(password) < policy.MinLength {
		return ErrPasswordTooShort
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if policy.RequireUppercase && !hasUpper {
		return ErrMissingUppercase
	}
	if policy.RequireLowercase && !hasLower {
		return ErrMissingLowercase
	}
	if policy.RequireDigits && !hasDigit {
		return ErrMissingDigit
	}
	if policy.RequireSpecialChars && !hasSpecial {
		return ErrMissingSpecialChar
	}
	return nil
}

// HashPassword hashes a plaintext password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// PasswordVerifier defines the interface for comparing passwords.
type PasswordVerifier interface {
	// Compare compares a hashed password with its possible plaintext
	// equivalent. Returns nil on success, or an error on mismatch.
	Compare(hashedPassword, password string) error
}

// BcryptVerifier implements PasswordVerifier using bcrypt.
type BcryptVerifier struct{}

// NewBcryptVerifier creates a new BcryptVerifier.
func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{}
}

// Compare implements the PasswordVerifier interface using bcrypt.
func (v *BcryptVerifier) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
