package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optimode/formrelay/check"
)

func TestTypoSuggestion(t *testing.T) {
	tests := []struct {
		domain string
		want   string
	}{
		{"gmial.com", "gmail.com"},
		{"gmal.com", "gmail.com"},
		{"hotmial.com", "hotmail.com"},
		{"GMIAL.COM", "gmail.com"},
		{"gmail.com", ""},      // exact match is not a typo
		{"mycompany.io", ""},   // nothing close
	}

	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			assert.Equal(t, tt.want, check.TypoSuggestion(tt.domain))
		})
	}
}
