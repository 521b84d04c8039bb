// Package errors provides structured error handling for gstanzl.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: Catalog unavailable (missing, unreachable or malformed resource)
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryCatalog indicates the catalog resource could not be loaded.
	CategoryCatalog Category = "CATALOG"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates the session cannot continue.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates operation failed but can continue.
	SeverityError Severity = "ERROR"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "ERR_102_CONFIG_INVALID"

	// Catalog errors (200-299)
	ErrCodeCatalogNotFound  = "ERR_201_CATALOG_NOT_FOUND"
	ErrCodeCatalogFetch     = "ERR_202_CATALOG_FETCH_FAILED"
	ErrCodeCatalogMalformed = "ERR_203_CATALOG_MALFORMED"

	// Internal errors (500-599)
	ErrCodeInternal   = "ERR_501_INTERNAL"
	ErrCodeIndexBuild = "ERR_502_INDEX_BUILD"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// "101" from "ERR_101_CONFIG_NOT_FOUND"
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryCatalog
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
// A catalog that cannot be loaded ends the session: there is nothing to browse.
func severityFromCode(code string) Severity {
	if categoryFromCode(code) == CategoryCatalog {
		return SeverityFatal
	}
	return SeverityError
}
