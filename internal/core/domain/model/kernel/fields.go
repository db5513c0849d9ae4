package kernel

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"bakery/internal/pkg/errs"
)

// RequireText trims value and checks that it is present and at most maxLen characters long.
func RequireText(paramName, value string, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errs.NewValueIsRequiredError(paramName)
	}
	if n := utf8.RuneCountInString(value); n > maxLen {
		return "", errs.NewValueIsOutOfRangeError(paramName+" length", n, 1, maxLen)
	}
	return value, nil
}

// RequirePositiveID checks that a numeric identifier is greater than zero.
func RequirePositiveID(paramName string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

// requireName applies the personal-name rule: 2..maxLen letters or spaces.
func requireName(paramName, value string, maxLen int) (string, error) {
	value, err := RequireText(paramName, value, maxLen)
	if err != nil {
		return "", err
	}
	if n := utf8.RuneCountInString(value); n < MinNameLength {
		return "", errs.NewValueIsOutOfRangeError(paramName+" length", n, MinNameLength, maxLen)
	}
	for _, r := range value {
		if !unicode.IsLetter(r) && r != ' ' {
			return "", errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%q is not a letter", r))
		}
	}
	return value, nil
}
