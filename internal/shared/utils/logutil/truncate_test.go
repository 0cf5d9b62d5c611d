package logutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateForLog(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "short prompt is kept", input: "hello", maxLen: 10, want: "hello"},
		{name: "exact length is kept", input: "hello", maxLen: 5, want: "hello"},
		{name: "long prompt is cut", input: "summarize my account history", maxLen: 9, want: "summarize..."},
		{name: "zero length", input: "hello", maxLen: 0, want: "..."},
		{name: "negative length", input: "", maxLen: -1, want: "..."},
		{name: "empty input", input: "", maxLen: 4, want: ""},
		{name: "multi-byte runes are not split", input: "नमस्ते दुनिया", maxLen: 3, want: "नमस..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateForLog(tt.input, tt.maxLen))
		})
	}
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "alice@example.com", want: "a***@example.com"},
		{input: "  bob@portal.test ", want: "b***@portal.test"},
		{input: "@example.com", want: "***@example.com"},
		{input: "not-an-email", want: "***"},
		{input: "trailing@", want: "***"},
		{input: "", want: "***"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskEmail(tt.input))
		})
	}
}
