package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Alice", "alice"},
		{"  bob  ", "bob"},
		{"MiXeD_42", "mixed_42"},
		{"already", "already"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeUsername(tt.in))
	}
}

// Two registrations differing only in case normalize to the same stored
// username, so the second one collides instead of creating a sibling.
func TestNormalizeUsernameCollapsesCaseVariants(t *testing.T) {
	assert.Equal(t, NormalizeUsername("Alice"), NormalizeUsername("aLiCe"))
}
