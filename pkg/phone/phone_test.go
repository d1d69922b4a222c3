package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"0712345678", "+254712345678"},
		{"254712345678", "+254712345678"},
		{"+254712345678", "+254712345678"},
		{"712345678", "+254712345678"},
		{"0712 345 678", "+254712345678"},
		{"0712-345-678", "+254712345678"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.raw), "raw=%q", tt.raw)
	}
}

func TestValidate(t *testing.T) {
	normalized, err := Validate("0712 345 678")
	assert.NoError(t, err)
	assert.Equal(t, "+254712345678", normalized)

	normalized, err = Validate("0110000000")
	assert.NoError(t, err)
	assert.Equal(t, "+254110000000", normalized)

	_, err = Validate("12345")
	assert.ErrorIs(t, err, ErrInvalidPhone)

	_, err = Validate("")
	assert.ErrorIs(t, err, ErrInvalidPhone)
}
