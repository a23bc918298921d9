package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckValidEmail(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"a.b+tag@sub.domain.org",
	}
	for _, email := range valid {
		assert.True(t, CheckValidEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"no-at-sign",
		"two@@example.com",
		"spaces in@example.com",
		"missing@tld",
	}
	for _, email := range invalid {
		assert.False(t, CheckValidEmail(email), "expected %q to be invalid", email)
	}
}

func TestCheckPasswordStrength(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Str0ng!pass", true},
		{"Aa1!Aa1!", true},
		{"short1!", false},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoDigits!!", false},
		{"NoSpecial11", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CheckPasswordStrength(tc.password), "password %q", tc.password)
	}
}
