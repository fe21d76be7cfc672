// Package output provides terminal output utilities for the shopgen CLI.
package output

import "strings"

// Format specifies the output format.
type Format string

const (
	// FormatTable outputs in table format.
	FormatTable Format = "table"

	// FormatJSON outputs in JSON format.
	FormatJSON Format = "json"
)

// String returns the string representation of the output format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the output format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatTable, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseFormat parses a string into a Format.
// Returns FormatTable if the string is empty or invalid.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatTable
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"table", "json"}
}
