package teleconf

import (
	"errors"
	"regexp"
	"strings"
)

// phoneRe matches an international phone number: optional leading +,
// first digit 1-9, 7 to 15 digits total.
var phoneRe = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)

// Validation messages are shown verbatim under the prompt, so they
// read as user-facing sentences rather than Go error strings.
var (
	errAPIID    = errors.New("Enter a numeric API ID")
	errAPIHash  = errors.New("API Hash cannot be empty")
	errBotToken = errors.New("Bot Token cannot be empty")
	errPhone    = errors.New("Phone number should contain only digits, optionally starting with a +, and be 7–15 digits long.")
)

// ValidateAPIID accepts a non-empty string of ASCII decimal digits.
// Surrounding whitespace is ignored.
func ValidateAPIID(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errAPIID
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return errAPIID
		}
	}
	return nil
}

// ValidateAPIHash accepts any input with at least one non-whitespace
// character.
func ValidateAPIHash(text string) error {
	if strings.TrimSpace(text) == "" {
		return errAPIHash
	}
	return nil
}

// ValidateBotToken accepts any input with at least one non-whitespace
// character. Telegram's own token format is deliberately not checked
// here; the verify command asks the Bot API instead.
func ValidateBotToken(text string) error {
	if strings.TrimSpace(text) == "" {
		return errBotToken
	}
	return nil
}

// ValidatePhoneNumber accepts an international phone number: digits
// only, optional leading +, no leading zero, 7 to 15 digits.
func ValidatePhoneNumber(text string) error {
	if !phoneRe.MatchString(strings.TrimSpace(text)) {
		return errPhone
	}
	return nil
}
