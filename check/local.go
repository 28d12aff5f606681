package check

import (
	"context"
	"regexp"
	"strings"

	"github.com/optimode/formrelay/internal/blocklist"
	"github.com/optimode/formrelay/internal/parse"
	"github.com/optimode/formrelay/types"
)

// RoleAccountChecker rejects local parts that exactly match a known role
// or test account name (admin, postmaster, noreply, ...).
type RoleAccountChecker struct{}

func NewRoleAccountChecker() *RoleAccountChecker {
	return &RoleAccountChecker{}
}

func (c *RoleAccountChecker) Check(_ context.Context, cand parse.Candidate) types.RuleResult {
	if blocklist.IsRoleAccount(cand.Local) {
		return types.RuleResult{Rule: types.RuleLocalPart, Reason: types.ReasonRoleAccount}
	}
	return types.RuleResult{Rule: types.RuleLocalPart, Passed: true}
}

// testN matches "test" followed by optional digits, e.g. test, test1, test42.
var testN = regexp.MustCompile(`^test\d*$`)

// TestPatternChecker rejects local parts that look like throwaway test
// input: "test" plus optional digits, or anything containing "test" or
// "dummy". The substring match is deliberately broad and will reject
// legitimate local parts such as "contest" - a conservative trade-off.
type TestPatternChecker struct{}

func NewTestPatternChecker() *TestPatternChecker {
	return &TestPatternChecker{}
}

func (c *TestPatternChecker) Check(_ context.Context, cand parse.Candidate) types.RuleResult {
	local := strings.ToLower(cand.Local)
	if testN.MatchString(local) || strings.Contains(local, "test") || strings.Contains(local, "dummy") {
		return types.RuleResult{Rule: types.RuleLocalPart, Reason: types.ReasonTestAddress}
	}
	return types.RuleResult{Rule: types.RuleLocalPart, Passed: true}
}
