package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidatePath validates a genome or output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateOffset validates a normalization offset.
// The offset is the floor of every normalized weight, so it must be a finite,
// non-negative number.
func ValidateOffset(offset float64) error {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return New(ErrCodeInvalidInput, "offset must be finite, got %v", offset)
	}
	if offset < 0 {
		return New(ErrCodeInvalidInput, "offset must not be negative, got %v", offset)
	}
	return nil
}
