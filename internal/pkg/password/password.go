package password

import (
	"fmt"
	"strings"

	"github.com/quoteshelf/api/internal/domain"
)

// specials is the accepted special-character set.
const specials = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

const minLength = 8

// Validate enforces the registration password policy: at least 8 characters
// with at least one letter, one digit and one special character.
func Validate(pw string) error {
	if len(pw) < minLength {
		return fmt.Errorf("password must be at least %d characters: %w", minLength, domain.ErrWeakPassword)
	}
	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(specials, r):
			hasSpecial = true
		}
	}
	if !hasLetter || !hasDigit || !hasSpecial {
		return fmt.Errorf("password needs a letter, a digit and a special character: %w", domain.ErrWeakPassword)
	}
	return nil
}
