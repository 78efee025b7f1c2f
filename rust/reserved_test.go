package rust

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"wibble", "wibble"},
		{"snake_case", "snake_case"},
		{"type", "r#type"},
		{"match", "r#match"},
		{"async", "r#async"},
		{"self", "self_"},
		{"Self", "Self_"},
		{"super", "super_"},
		{"crate", "crate_"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, escape(tt.in))
		})
	}
}

func TestIsReserved(t *testing.T) {
	assert.True(t, IsReserved("fn"))
	assert.True(t, IsReserved("yield"), "future-reserved words count")
	assert.False(t, IsReserved("wibble"))
}
