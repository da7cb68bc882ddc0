// Package diagnostic provides structured errors and warnings for binding
// profile checks.
//
// Key capabilities:
//   - Unknown cast, transformer and pipe names with suggestions
//   - Duplicate field declarations
//   - Malformed rule definitions
package diagnostic
