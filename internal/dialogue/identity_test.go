package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		identity string
		want     string
	}{
		{"ravi.k@example.com", "Ravi.k"},
		{"ANNA@example.com", "Anna"},
		{"  li@x.io ", "Li"},
		{"a@b@c", "A"},
		{"noatsign", "Noatsign"},
		{"@example.com", "@example.com"},
		{"élodie@example.fr", "Élodie"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.identity, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.identity))
		})
	}
}

func TestValidIdentity(t *testing.T) {
	assert.True(t, ValidIdentity("a@b.com"))
	assert.True(t, ValidIdentity(" a@b "))
	assert.False(t, ValidIdentity(""))
	assert.False(t, ValidIdentity("   "))
	assert.False(t, ValidIdentity("ab.com"))
}
