package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"national with punctuation", "(512) 555-0134", "+15125550134"},
		{"bare digits", "5125550134", "+15125550134"},
		{"already e164", "+15125550134", "+15125550134"},
		{"with country prefix", "1-512-555-0134", "+15125550134"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Invalid(t *testing.T) {
	for _, input := range []string{"", "123", "not-a-phone"} {
		_, err := Normalize(input)
		assert.Error(t, err, "input %q should not normalize", input)
	}
}

func TestDisplay(t *testing.T) {
	got, err := Display("+15125550134")
	require.NoError(t, err)
	assert.Equal(t, "(512) 555-0134", got)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("(512) 555-0134"))
	assert.False(t, Valid("999"))
	assert.False(t, Valid(""))
}
