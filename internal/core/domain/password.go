package domain

import (
	"errors"
	"strings"
	"unicode"
)

// passwordSymbols is the punctuation set a new password must draw at least
// one character from.
const passwordSymbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var (
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters")
	ErrPasswordNoUppercase = errors.New("password must contain an uppercase letter")
	ErrPasswordNoLowercase = errors.New("password must contain a lowercase letter")
	ErrPasswordNoSymbol    = errors.New("password must contain a symbol")
	ErrPasswordMismatch    = errors.New("password confirmation does not match")
)

// ValidatePasswordChange checks a candidate password against the account
// policy. Rules run in a fixed order and the first violation is returned
// alone: length, uppercase, lowercase, symbol, confirmation match. The
// current password is never validated locally.
func ValidatePasswordChange(newPassword, confirmation string) error {
	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}
	if !strings.ContainsFunc(newPassword, unicode.IsUpper) {
		return ErrPasswordNoUppercase
	}
	if !strings.ContainsFunc(newPassword, unicode.IsLower) {
		return ErrPasswordNoLowercase
	}
	if !strings.ContainsAny(newPassword, passwordSymbols) {
		return ErrPasswordNoSymbol
	}
	if newPassword != confirmation {
		return ErrPasswordMismatch
	}
	return nil
}
