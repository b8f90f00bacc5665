package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateChartTitle validates a user-supplied chart title.
//
// The validation rules are intentionally conservative:
//   - No control characters
//   - Maximum length of 256 characters
//
// Empty titles are allowed; charts simply render without one.
func ValidateChartTitle(title string) error {
	if len(title) > 256 {
		return New(ErrCodeInvalidInput, "chart title too long (max 256 characters)")
	}

	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "chart title contains invalid control characters")
		}
	}

	return nil
}

// rangeRefRegex matches A1-style range references with an optional sheet
// qualifier, e.g. "A1:C10", "Sheet1!A1:C10", "'My Sheet'!$B$2:$D$20".
var rangeRefRegex = regexp.MustCompile(`^(('[^'\[\]:*?/\\]+'|[^'!\[\]:*?/\\ ]+)!)?\$?[A-Za-z]{1,3}\$?[0-9]{1,7}(:\$?[A-Za-z]{1,3}\$?[0-9]{1,7})?$`)

// ValidateRangeRef validates an A1-style range reference for safety and
// shape before it is handed to the workbook layer for resolution.
//
// Validation rules:
//   - Reference cannot be empty
//   - Maximum length of 64 characters
//   - Must match A1 notation with an optional sheet qualifier
func ValidateRangeRef(ref string) error {
	if ref == "" {
		return New(ErrCodeInvalidRange, "range reference cannot be empty")
	}

	if len(ref) > 64 {
		return New(ErrCodeInvalidRange, "range reference too long (max 64 characters)")
	}

	if !rangeRefRegex.MatchString(ref) {
		return New(ErrCodeInvalidRange, "invalid range reference: %q", ref)
	}

	return nil
}

// sheetNameInvalidChars are the characters the xlsx format forbids in
// worksheet names.
const sheetNameInvalidChars = `[]:*?/\`

// ValidateSheetName validates a worksheet name against the xlsx naming
// rules.
func ValidateSheetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "sheet name cannot be empty")
	}

	if len(name) > 31 {
		return New(ErrCodeInvalidInput, "sheet name too long (max 31 characters)")
	}

	if strings.ContainsAny(name, sheetNameInvalidChars) {
		return New(ErrCodeInvalidInput, "sheet name contains invalid characters: %q", name)
	}

	return nil
}

// ValidateWorkbookPath validates a workbook file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateWorkbookPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "workbook path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "workbook path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "workbook path contains invalid characters")
		}
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
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// definedNameRegex matches valid xlsx defined names: they must start with
// a letter or underscore and may contain letters, digits, periods, and
// underscores.
var definedNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9._]*$`)

// ValidateDefinedName validates an xlsx defined name.
func ValidateDefinedName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "defined name cannot be empty")
	}

	if len(name) > 255 {
		return New(ErrCodeInvalidInput, "defined name too long (max 255 characters)")
	}

	if !definedNameRegex.MatchString(name) {
		return New(ErrCodeInvalidInput, "invalid defined name: %q", name)
	}

	return nil
}
