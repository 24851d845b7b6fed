package errors

import (
	"strings"
	"unicode"
)

// ValidatePersonName validates a person's display name for safety and correctness.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
//
// Historical names may contain almost anything else (diacritics, punctuation,
// non-Latin scripts), so no further restriction is applied.
func ValidatePersonName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "person name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "person name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "person name contains invalid control characters")
		}
	}

	return nil
}

// ValidateFilename validates a derived filename for safety. It ensures the
// name is a simple basename without path components and is not hidden, so a
// filename built from roster input can never escape or shadow its directory.
func ValidateFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidInput, "filename cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidInput, "filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidInput, "filename cannot be a hidden file")
	}

	return nil
}
