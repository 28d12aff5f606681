package check

import (
	"context"
	"strings"

	"github.com/optimode/formrelay/internal/parse"
	"github.com/optimode/formrelay/types"
)

// SyntaxChecker validates the basic shape of a candidate address:
// non-empty, local@domain.tld form, length limits, and the dot/hyphen
// placement rules for local part and domain.
type SyntaxChecker struct{}

func NewSyntaxChecker() *SyntaxChecker {
	return &SyntaxChecker{}
}

func (c *SyntaxChecker) Check(_ context.Context, cand parse.Candidate) types.RuleResult {
	rule := types.RuleSyntax

	if cand.Raw == "" {
		return types.RuleResult{Rule: rule, Reason: types.ReasonEmpty}
	}

	if !cand.Valid {
		return types.RuleResult{Rule: rule, Reason: types.ReasonInvalidFormat}
	}

	// Length limits (RFC 5321)
	if len(cand.Local) > 64 {
		return types.RuleResult{Rule: rule, Reason: types.ReasonLocalTooLong}
	}
	if len(cand.Domain) > 255 {
		return types.RuleResult{Rule: rule, Reason: types.ReasonDomainTooLong}
	}

	if strings.HasPrefix(cand.Local, ".") || strings.HasSuffix(cand.Local, ".") || strings.Contains(cand.Local, "..") {
		return types.RuleResult{Rule: rule, Reason: types.ReasonInvalidLocal}
	}

	if strings.HasPrefix(cand.Domain, "-") || strings.HasSuffix(cand.Domain, "-") || strings.Contains(cand.Domain, "..") {
		return types.RuleResult{Rule: rule, Reason: types.ReasonInvalidDomain}
	}

	return types.RuleResult{Rule: rule, Passed: true}
}
