package formrelay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optimode/formrelay"
	"github.com/optimode/formrelay/types"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		reason   string
		wantCode string
	}{
		{types.ReasonEmpty, "email_missing"},
		{types.ReasonInvalidFormat, "email_invalid_format"},
		{types.ReasonInvalidLocal, "email_invalid_format"},
		{types.ReasonInvalidDomain, "email_invalid_format"},
		{types.ReasonLocalTooLong, "email_too_long"},
		{types.ReasonDomainTooLong, "email_too_long"},
		{types.ReasonBlockedDomain, "email_blocked_domain"},
		{types.ReasonDisposable, "email_disposable"},
		{types.ReasonRoleAccount, "email_role_or_test"},
		{types.ReasonTestAddress, "email_role_or_test"},
		{types.ReasonNoMailServers, "email_domain_unverified"},
		{types.ReasonDNSLookupError, "email_domain_unverified"},
		{types.ReasonNumericDomain, "email_unacceptable"}, // no table row matches
		{"some future reason", "email_unacceptable"},
		{"", "email_unacceptable"},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			m := formrelay.UserMessage(tt.reason)
			assert.Equal(t, tt.wantCode, m.Code)
			assert.Equal(t, "email", m.Field)
			assert.NotEmpty(t, m.Message)
		})
	}
}

// Every reason the filter can produce must map to a known code.
func TestUserMessage_Total(t *testing.T) {
	allReasons := []string{
		types.ReasonEmpty,
		types.ReasonInvalidFormat,
		types.ReasonLocalTooLong,
		types.ReasonDomainTooLong,
		types.ReasonInvalidLocal,
		types.ReasonInvalidDomain,
		types.ReasonBlockedDomain,
		types.ReasonDisposable,
		types.ReasonRoleAccount,
		types.ReasonTestAddress,
		types.ReasonNumericDomain,
		types.ReasonNoMailServers,
		types.ReasonDNSLookupError,
	}

	knownCodes := map[string]bool{
		"email_missing":           true,
		"email_invalid_format":    true,
		"email_too_long":          true,
		"email_blocked_domain":    true,
		"email_disposable":        true,
		"email_role_or_test":      true,
		"email_domain_unverified": true,
		"email_unacceptable":      true,
	}

	for _, reason := range allReasons {
		m := formrelay.UserMessage(reason)
		assert.True(t, knownCodes[m.Code], "reason %q mapped to unknown code %q", reason, m.Code)
		// Stability: the same reason maps the same way every time.
		assert.Equal(t, m, formrelay.UserMessage(reason))
	}
}
