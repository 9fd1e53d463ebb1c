package errors

import (
	"strings"
	"unicode"
)

// ValidateLabel validates a single category label for safety and correctness.
// Labels end up in SVG text nodes, DOT identifiers, and log lines, so the
// rules are intentionally conservative:
//   - No empty labels (empty means "missing" and is rejected earlier as
//     NULLS_IN_FRAME)
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidInput, "label cannot be empty")
	}

	if len(label) > 256 {
		return New(ErrCodeInvalidInput, "label too long (max 256 characters)")
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "label contains invalid control characters")
		}
	}

	return nil
}

// ValidateHexColor validates a color specification in #rrggbb form.
// Short #rgb form is accepted as well.
func ValidateHexColor(spec string) error {
	if spec == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}

	if !strings.HasPrefix(spec, "#") {
		return New(ErrCodeInvalidColor, "color must start with '#': %q", spec)
	}

	hex := spec[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return New(ErrCodeInvalidColor, "color must be #rgb or #rrggbb: %q", spec)
	}

	for _, r := range hex {
		isDigit := r >= '0' && r <= '9'
		isLower := r >= 'a' && r <= 'f'
		isUpper := r >= 'A' && r <= 'F'
		if !isDigit && !isLower && !isUpper {
			return New(ErrCodeInvalidColor, "color contains non-hex characters: %q", spec)
		}
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}
