package check

import (
	"context"

	"github.com/optimode/formrelay/internal/dnscache"
	"github.com/optimode/formrelay/internal/parse"
	"github.com/optimode/formrelay/types"
)

// DNSChecker verifies that a domain can receive mail: it requires at least
// one MX record, falling back to A and then AAAA records when the MX set
// is empty. Lookup errors (network failure, timeout, NXDOMAIN) fail closed -
// they reject the candidate rather than skipping the check.
type DNSChecker struct {
	cache *dnscache.Cache
}

// NewDNSChecker creates a DNS checker backed by the given lookup cache.
// The cache's resolver is injectable, which is how tests avoid the network.
func NewDNSChecker(cache *dnscache.Cache) *DNSChecker {
	return &DNSChecker{cache: cache}
}

func (c *DNSChecker) Check(_ context.Context, cand parse.Candidate) types.RuleResult {
	rule := types.RuleDNS

	mx, err := c.cache.LookupMX(cand.DomainASCII)
	if err != nil {
		return types.RuleResult{Rule: rule, Reason: types.ReasonDNSLookupError}
	}
	if len(mx) > 0 {
		return types.RuleResult{Rule: rule, Passed: true}
	}

	for _, network := range []string{"ip4", "ip6"} {
		ips, err := c.cache.LookupIP(network, cand.DomainASCII)
		if err != nil {
			return types.RuleResult{Rule: rule, Reason: types.ReasonDNSLookupError}
		}
		if len(ips) > 0 {
			return types.RuleResult{Rule: rule, Passed: true}
		}
	}

	return types.RuleResult{Rule: rule, Reason: types.ReasonNoMailServers}
}
