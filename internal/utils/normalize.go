// Package utils provides small, reusable helpers shared across layers.
// This file contains Unicode normalization for user-entered journal text.
package utils

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeText trims surrounding whitespace and applies Unicode NFC
// normalization. Korean input arrives from some IMEs in decomposed form
// (NFD), which breaks string equality for catalog names such as cognitive
// distortions; NFC makes those comparisons reliable.
func NormalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
