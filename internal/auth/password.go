package auth

import (
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

// Password rule messages, shown together when several rules fail.
const (
	MsgPasswordTooShort = "A senha deve ter pelo menos 8 caracteres"
	MsgPasswordUpper    = "A senha deve ter pelo menos 1 letra maiúscula"
	MsgPasswordNumber   = "A senha deve ter pelo menos 1 número"
	MsgPasswordSpecial  = "A senha deve ter pelo menos 1 caractere especial"
)

var (
	upperChars   = regexp.MustCompile(`[A-Z]`)
	digitChars   = regexp.MustCompile(`[0-9]`)
	specialChars = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// ValidatePassword checks every registration rule and returns the message
// for each one that failed. An empty slice means the password is accepted.
func ValidatePassword(password string) []string {
	var violations []string

	if len(password) < 8 {
		violations = append(violations, MsgPasswordTooShort)
	}
	if !upperChars.MatchString(password) {
		violations = append(violations, MsgPasswordUpper)
	}
	if !digitChars.MatchString(password) {
		violations = append(violations, MsgPasswordNumber)
	}
	if !specialChars.MatchString(password) {
		violations = append(violations, MsgPasswordSpecial)
	}

	return violations
}

// HashPassword produces a bcrypt hash. Accounts created by the current
// registration flow store the password as submitted; this is the upgrade
// path for hashed storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches a bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
