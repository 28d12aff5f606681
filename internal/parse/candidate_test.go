package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCandidate(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantValid  bool
		wantLocal  string
		wantDomain string
	}{
		{"valid simple", "user@example.com", true, "user", "example.com"},
		{"valid with plus", "user+tag@example.com", true, "user+tag", "example.com"},
		{"trims whitespace", "  user@example.com  ", true, "user", "example.com"},
		{"lowercases domain", "user@EXAMPLE.COM", true, "user", "example.com"},
		{"keeps local case", "User@example.com", true, "User", "example.com"},
		{"valid subdomain", "user@mail.example.co.uk", true, "user", "mail.example.co.uk"},
		{"empty", "", false, "", ""},
		{"whitespace only", "   ", false, "", ""},
		{"no at sign", "userexample.com", false, "", ""},
		{"no dot after at", "user@example", false, "", ""},
		{"no domain", "user@", false, "", ""},
		{"no local", "@example.com", false, "", ""},
		{"embedded space", "user name@example.com", false, "", ""},
		{"double at", "user@host@example.com", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCandidate(tt.in)
			assert.Equal(t, tt.wantValid, c.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.wantLocal, c.Local)
				assert.Equal(t, tt.wantDomain, c.Domain)
			}
		})
	}
}

func TestNewCandidate_IDN(t *testing.T) {
	c := NewCandidate("user@münchen.de")
	assert.True(t, c.Valid)
	assert.Equal(t, "münchen.de", c.Domain)
	assert.Equal(t, "xn--mnchen-3ya.de", c.DomainASCII)

	// ASCII domains pass through unchanged
	c = NewCandidate("user@example.org")
	assert.Equal(t, "example.org", c.DomainASCII)
}
