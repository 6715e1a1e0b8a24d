package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"currency and unit stripped", "$12.5 USD", "12.50"},
		{"plain integer", "7", "7.00"},
		{"already formatted", "19.99", "19.99"},
		{"thousands separator", "1,234.5", "1234.50"},
		{"whitespace", "  25  ", "25.00"},
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"no digits", "abc", ""},
		{"only junk", "$ USD", ""},
		{"multiple dots unparsable", "1.2.3", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePrice(tt.in))
		})
	}
}
