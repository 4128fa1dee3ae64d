package evaluation

import (
	"regexp"
	"strings"
)

const (
	msgInvalidEmail = "Please enter a valid email address"
	msgInvalidPhone = "Please enter a valid phone number"
)

// RFC-light: one @ with a dot somewhere after it, no embedded whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Digits plus the punctuation phone numbers are written with.
var phonePattern = regexp.MustCompile(`^[0-9\s\-()+]+$`)

// ValidateField checks a single field value and returns the error message, or
// "" when the value is acceptable. Empty-after-trim values are rejected for
// every field; email and phone additionally check their formats.
func ValidateField(name, value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return LabelFor(name) + " is required"
	}

	switch name {
	case FieldEmail:
		if !emailPattern.MatchString(trimmed) {
			return msgInvalidEmail
		}
	case FieldPhone:
		if !phonePattern.MatchString(trimmed) {
			return msgInvalidPhone
		}
	}
	return ""
}

// ValidateAll runs ValidateField over the six required fields and returns the
// error set plus whether any field was empty after trimming.
func ValidateAll(values map[string]string) (errs map[string]string, anyEmpty bool) {
	errs = make(map[string]string)
	for _, name := range FieldNames() {
		value := values[name]
		if strings.TrimSpace(value) == "" {
			anyEmpty = true
		}
		if msg := ValidateField(name, value); msg != "" {
			errs[name] = msg
		}
	}
	return errs, anyEmpty
}
