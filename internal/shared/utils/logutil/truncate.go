// Package logutil keeps user-supplied text short and private in log lines.
package logutil

import (
	"strings"
	"unicode/utf8"
)

// TruncateForLog keeps the first maxLen runes of s and marks the cut with
// "...". Multi-byte characters are never split.
func TruncateForLog(s string, maxLen int) string {
	if maxLen <= 0 {
		return "..."
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	var b strings.Builder
	n := 0
	for _, r := range s {
		if n == maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	b.WriteString("...")
	return b.String()
}

// MaskEmail keeps the first character of the local part and the domain:
// "alice@example.com" becomes "a***@example.com".
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(strings.TrimSpace(email), "@")
	if !ok || domain == "" {
		return "***"
	}
	first, _ := utf8.DecodeRuneInString(local)
	if first == utf8.RuneError {
		return "***@" + domain
	}
	return string(first) + "***@" + domain
}
