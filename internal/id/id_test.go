package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := New()
	b := New()
	assert.Len(t, a, Length)
	assert.NotEqual(t, a, b)
	assert.True(t, Valid(a), "generated id %q should be valid", a)
	assert.Equal(t, byte('4'), a[14], "version nibble")
}

func TestValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"FF04C3DC-F0FE-472E-8737-0F4034C049F0", true},
		{"ff04c3dc-f0fe-472e-8737-0f4034c049f0", true},
		{"FF04C3DCF0FE472E87370F4034C049F0", false},
		{"{FF04C3DC-F0FE-472E-8737-0F4034C049F0}", false},
		{"not-an-id", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Valid(tt.input), "Valid(%q)", tt.input)
	}
}

func TestOrNew(t *testing.T) {
	assert.Equal(t, "abc", OrNew("abc"))
	assert.Len(t, OrNew(""), Length)
}
