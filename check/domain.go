package check

import (
	"context"
	"strings"
	"unicode"

	"github.com/optimode/formrelay/internal/blocklist"
	"github.com/optimode/formrelay/internal/parse"
	"github.com/optimode/formrelay/types"
)

// BlockedDomainChecker rejects example/placeholder domains.
type BlockedDomainChecker struct{}

func NewBlockedDomainChecker() *BlockedDomainChecker {
	return &BlockedDomainChecker{}
}

func (c *BlockedDomainChecker) Check(_ context.Context, cand parse.Candidate) types.RuleResult {
	if blocklist.IsExampleDomain(cand.Domain) {
		return types.RuleResult{Rule: types.RuleBlocked, Reason: types.ReasonBlockedDomain}
	}
	return types.RuleResult{Rule: types.RuleBlocked, Passed: true}
}

// DisposableChecker rejects domains on the disposable-provider blocklist.
// The blocklist is ASCII, so matching uses the ASCII/Punycode domain form.
type DisposableChecker struct{}

func NewDisposableChecker() *DisposableChecker {
	return &DisposableChecker{}
}

func (c *DisposableChecker) Check(_ context.Context, cand parse.Candidate) types.RuleResult {
	if blocklist.IsDisposable(cand.DomainASCII) {
		return types.RuleResult{Rule: types.RuleDisposable, Reason: types.ReasonDisposable}
	}
	return types.RuleResult{Rule: types.RuleDisposable, Passed: true}
}

// NumericDomainChecker rejects domains that consist entirely of digits
// once the dots are removed. Real mail domains always carry a letter
// somewhere; all-numeric ones are keyboard mashing or IP fragments.
type NumericDomainChecker struct{}

func NewNumericDomainChecker() *NumericDomainChecker {
	return &NumericDomainChecker{}
}

func (c *NumericDomainChecker) Check(_ context.Context, cand parse.Candidate) types.RuleResult {
	stripped := strings.ReplaceAll(cand.Domain, ".", "")
	if stripped != "" && allDigits(stripped) {
		return types.RuleResult{Rule: types.RuleDomain, Reason: types.ReasonNumericDomain}
	}
	return types.RuleResult{Rule: types.RuleDomain, Passed: true}
}

func allDigits(s string) bool {
	for _, ch := range s {
		if !unicode.IsDigit(ch) {
			return false
		}
	}
	return true
}
