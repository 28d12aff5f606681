package formrelay

import (
	"context"

	"github.com/optimode/formrelay/check"
	"github.com/optimode/formrelay/internal/dnscache"
	"github.com/optimode/formrelay/internal/parse"
	"github.com/optimode/formrelay/types"
)

// rule is the internal interface for all acceptability rules.
// Every check/ package type implements this.
type rule interface {
	Check(ctx context.Context, cand parse.Candidate) types.RuleResult
}

// Filter runs the acceptability rule pipeline. Rules are evaluated in a
// fixed order and the first failing rule determines the rejection reason,
// so a candidate failing several rules always yields the same reason.
// A Filter is immutable after construction and safe for concurrent use.
type Filter struct {
	rules    []rule
	dnsCache *dnscache.Cache
}

// New creates a Filter with the offline rules: shape and length checks,
// example/placeholder domains, disposable providers, role and test
// accounts, and numeric-looking domains. DNS verification is opt-in
// via WithDNS because it is the only rule that touches the network.
func New() *Filter {
	return &Filter{
		rules: []rule{
			check.NewSyntaxChecker(),
			check.NewBlockedDomainChecker(),
			check.NewDisposableChecker(),
			check.NewRoleAccountChecker(),
			check.NewTestPatternChecker(),
			check.NewNumericDomainChecker(),
		},
	}
}

// WithDNS appends mail-server verification to the pipeline: the domain
// must resolve MX records, or failing that A or AAAA records. Lookup
// errors reject the candidate (fail closed). Runs last so that candidates
// rejected by the offline rules never trigger a network call.
// Optionally overrides the default DNSOptions.
func (f *Filter) WithDNS(opts ...DNSOptions) *Filter {
	o := defaultDNSOptions()
	if len(opts) > 0 {
		o = opts[0].withDefaults()
	}
	f.ensureDNSCache(o)
	f.rules = append(f.rules, check.NewDNSChecker(f.dnsCache))
	return f
}

// WithResolver replaces the DNS resolver. Must be called before WithDNS.
// Intended for tests that need deterministic lookups.
func (f *Filter) WithResolver(r dnscache.Resolver, opts ...DNSOptions) *Filter {
	o := defaultDNSOptions()
	if len(opts) > 0 {
		o = opts[0].withDefaults()
	}
	f.dnsCache = dnscache.NewWithResolver(o.Timeout, o.CacheTTL, r)
	return f
}

func (f *Filter) ensureDNSCache(o DNSOptions) {
	if f.dnsCache == nil {
		f.dnsCache = dnscache.New(o.Timeout, o.CacheTTL)
	}
}

// Check runs the rule pipeline on the candidate and returns the verdict.
// The pipeline short-circuits on the first failing rule.
func (f *Filter) Check(ctx context.Context, candidate string) Verdict {
	cand := parse.NewCandidate(candidate)

	for _, r := range f.rules {
		res := r.Check(ctx, cand)
		if !res.Passed {
			return rejected(cand.Raw, res)
		}
	}

	return accepted(cand.Raw)
}

// Suggest returns a likely intended domain when the candidate's domain
// looks like a typo of a known provider ("gmial.com" -> "gmail.com"),
// or "" otherwise. Purely advisory: it never influences Check.
func Suggest(candidate string) string {
	cand := parse.NewCandidate(candidate)
	if !cand.Valid {
		return ""
	}
	suggestion := check.TypoSuggestion(cand.Domain)
	if suggestion == "" {
		return ""
	}
	return cand.Local + "@" + suggestion
}
