package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPassword(t *testing.T) {
	cases := []struct {
		pwd  string
		want bool
	}{
		{"Abc123", true},
		{"Secret1", true},
		{"Ab1", false},           // too short
		{"abcdef1", false},       // no uppercase
		{"ABCDEF1", false},       // no lowercase
		{"Abcdefg", false},       // no digit
		{"", false},
		{strings.Repeat("Ab1", 40), false}, // too long
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidPassword(tc.pwd), "password %q", tc.pwd)
	}
}
