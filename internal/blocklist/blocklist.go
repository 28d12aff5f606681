// Package blocklist holds the static address blocklists: known disposable
// email providers, role-account local parts, and example/placeholder domains.
// All sets are immutable after package init.
package blocklist

import "strings"

// IsDisposable returns whether the given domain is a known disposable domain.
func IsDisposable(domain string) bool {
	_, ok := disposableSet[strings.ToLower(domain)]
	return ok
}

// roleAccounts are local parts conventionally used for automated or
// departmental mailboxes rather than individuals.
var roleAccounts = map[string]struct{}{
	"abuse":          {},
	"admin":          {},
	"administrator":  {},
	"contact":        {},
	"demo":           {},
	"donotreply":     {},
	"dummy":          {},
	"hostmaster":     {},
	"info":           {},
	"mailer-daemon":  {},
	"marketing":      {},
	"no-reply":       {},
	"noreply":        {},
	"postmaster":     {},
	"root":           {},
	"sales":          {},
	"security":       {},
	"support":        {},
	"sysadmin":       {},
	"test":           {},
	"testing":        {},
	"webmaster":      {},
}

// IsRoleAccount returns whether the local part exactly matches a known
// role or test account name (case-insensitive).
func IsRoleAccount(local string) bool {
	_, ok := roleAccounts[strings.ToLower(local)]
	return ok
}

// exampleDomains are placeholder domains that never belong to a real inbox.
var exampleDomains = map[string]struct{}{
	"example.com":           {},
	"example.org":           {},
	"example.net":           {},
	"example.edu":           {},
	"test.com":              {},
	"test.org":              {},
	"test.net":              {},
	"sample.com":            {},
	"placeholder.com":       {},
	"localhost":             {},
	"localhost.localdomain": {},
}

// IsExampleDomain returns whether the domain is a placeholder domain
// (case-insensitive), either by exact match or by containing "example".
func IsExampleDomain(domain string) bool {
	domain = strings.ToLower(domain)
	if _, ok := exampleDomains[domain]; ok {
		return true
	}
	return strings.Contains(domain, "example")
}
