package greeting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreet(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ci name", "GitHub Actions", "Hello, GitHub Actions!"},
		{"empty", "", "Hello, !"},
		{"unicode", "世界", "Hello, 世界!"},
		{"punctuation", "a, b!", "Hello, a, b!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Greet(tt.input))
		})
	}
}

func TestGreetDefault(t *testing.T) {
	assert.Equal(t, "Hello, World!", GreetDefault())
}
