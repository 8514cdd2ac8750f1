package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractURLs(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "Empty text",
			text:     "",
			expected: nil,
		},
		{
			name:     "No URLs",
			text:     "please verify your account",
			expected: nil,
		},
		{
			name:     "Single URL",
			text:     "visit http://example.com/login now",
			expected: []string{"http://example.com/login"},
		},
		{
			name:     "Multiple URLs",
			text:     "first https://a.com then http://b.com/x?q=1",
			expected: []string{"https://a.com", "http://b.com/x?q=1"},
		},
		{
			name:     "Duplicates collapsed",
			text:     "http://a.com again http://a.com",
			expected: []string{"http://a.com"},
		},
		{
			name:     "Stops at quotes and brackets",
			text:     `link 'http://evil.com/a' and (https://other.com/b)`,
			expected: []string{"http://evil.com/a", "https://other.com/b"},
		},
		{
			name:     "Scheme-less hosts ignored",
			text:     "go to example.com or www.example.com",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractURLs(tt.text))
		})
	}
}
