package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		sep      string
		expected []string
	}{
		{"tags", "a, b", ",", []string{"a", "b"}},
		{"blank tags dropped", " ,a,, b ,", ",", []string{"a", "b"}},
		{"empty input", "", ",", []string{}},
		{"links", "http://a\r\n\nhttp://b \n", "\n", []string{"http://a", "http://b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitList(tt.raw, tt.sep))
		})
	}
}

func TestCallerIdentity(t *testing.T) {
	tests := []struct {
		name         string
		forwardedFor string
		remoteAddr   string
		expected     string
	}{
		{"first forwarded entry", " 1.2.3.4 , 10.0.0.1", "10.0.0.2:5555", "1.2.3.4"},
		{"single forwarded entry", "5.6.7.8", "", "5.6.7.8"},
		{"blank forwarded falls back", " , 9.9.9.9", "10.0.0.2:5555", "10.0.0.2"},
		{"direct ipv4", "", "192.168.1.10:40000", "192.168.1.10"},
		{"direct ipv6", "", "[::1]:40000", "::1"},
		{"address without port", "", "192.168.1.10", "192.168.1.10"},
		{"nothing known", "", "", UnknownIdentity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CallerIdentity(tt.forwardedFor, tt.remoteAddr))
		})
	}
}

func TestValidator(t *testing.T) {
	v := NewValidator()

	type form struct {
		Title string `validate:"max=3"`
	}

	assert.NoError(t, v.Struct(form{Title: "abc"}))
	assert.Error(t, v.Struct(form{Title: "abcd"}))
	assert.NoError(t, v.Var("ééé", "max=3"), "length counts characters, not bytes")
	assert.Error(t, v.Var("abcd", "max=3"))
}
