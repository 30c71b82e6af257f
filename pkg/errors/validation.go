package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateItemID validates an item identifier received from a user or request.
// IDs are compared verbatim against the working set, so the rules only guard
// against values that can never match a normalized record:
//   - No empty IDs
//   - No control characters
//   - Maximum length of 256 characters
func ValidateItemID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "item id cannot be empty")
	}
	if len(id) > 256 {
		return New(ErrCodeInvalidInput, "item id too long (max 256 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "item id contains invalid control characters")
		}
	}
	return nil
}

// ValidateCanvas checks that canvas dimensions are finite and positive.
func ValidateCanvas(width, height float64) error {
	if !isPositive(width) {
		return New(ErrCodeInvalidCanvas, "canvas width must be positive, got %v", width)
	}
	if !isPositive(height) {
		return New(ErrCodeInvalidCanvas, "canvas height must be positive, got %v", height)
	}
	return nil
}

// ValidateViewport checks that the physical viewport width is finite and positive.
func ValidateViewport(mm float64) error {
	if !isPositive(mm) {
		return New(ErrCodeInvalidCanvas, "viewport must be a positive number of millimeters, got %v", mm)
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !IsHTTPURL(rawURL) {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// IsHTTPURL reports whether s starts with an http or https scheme.
func IsHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
