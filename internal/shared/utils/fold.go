package utils

import (
	"strings"

	"golang.org/x/text/cases"
)

// FoldKey normalizes usernames, emails and organization names for
// case-insensitive comparison and storage in the *_key columns.
// A Caser keeps state, so each call builds its own.
func FoldKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
