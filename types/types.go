// Package types contains the shared types for formrelay.
// This package does not import anything from other formrelay packages
// to avoid circular imports.
package types

// Rule identifies a single acceptability rule in the pipeline.
type Rule = string

const (
	RuleSyntax     Rule = "syntax"
	RuleBlocked    Rule = "blocked"
	RuleDisposable Rule = "disposable"
	RuleLocalPart  Rule = "localpart"
	RuleDomain     Rule = "domain"
	RuleDNS        Rule = "dns"
)

// Rejection reasons. A rejected verdict carries exactly one of these,
// chosen by the first failing rule in pipeline order.
const (
	ReasonEmpty          = "empty"
	ReasonInvalidFormat  = "invalid format"
	ReasonLocalTooLong   = "local part too long"
	ReasonDomainTooLong  = "domain too long"
	ReasonInvalidLocal   = "invalid local"
	ReasonInvalidDomain  = "invalid domain"
	ReasonBlockedDomain  = "blocked domain (example)"
	ReasonDisposable     = "disposable email provider"
	ReasonRoleAccount    = "role or test account blocked"
	ReasonTestAddress    = "test/dummy address blocked"
	ReasonNumericDomain  = "suspicious domain"
	ReasonNoMailServers  = "no mail servers for domain (MX/A/AAAA missing)"
	ReasonDNSLookupError = "domain verification failed"
)

// RuleResult is the outcome of a single rule.
type RuleResult struct {
	Rule   Rule   `json:"rule"`
	Passed bool   `json:"passed"`
	Reason string `json:"reason,omitempty"`
}
