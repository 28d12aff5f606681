package parse

import (
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

// Candidate is the internal representation of a submitted email address.
// The check/ packages receive this as parameter.
type Candidate struct {
	Raw         string // the original, trimmed input
	Local       string // the part before the first @
	Domain      string // the part after the first @, lowercased
	DomainASCII string // Domain in ASCII/Punycode form (for DNS and blocklists)
	Valid       bool   // false if Raw is not local@domain.tld shaped
}

// local@domain.tld shaped, no embedded whitespace and no second @.
var shape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NewCandidate splits the given address into a local part and a domain
// on the first @. If the input is not local@domain.tld shaped, Valid=false
// but Raw is always populated. Internationalized domains are carried in
// both Unicode and ASCII/Punycode form.
func NewCandidate(raw string) Candidate {
	raw = strings.TrimSpace(raw)

	if !shape.MatchString(raw) {
		return Candidate{Raw: raw, Valid: false}
	}

	at := strings.Index(raw, "@")
	local, domain := raw[:at], raw[at+1:]
	if local == "" || domain == "" {
		return Candidate{Raw: raw, Valid: false}
	}

	domain = strings.ToLower(domain)
	ascii := domain
	if hasNonASCII(domain) {
		a, err := idna.Lookup.ToASCII(domain)
		if err != nil {
			// Keep the Unicode form; DNS lookups for it will fail
			// the same way an NXDOMAIN would.
			a = domain
		}
		ascii = a
	}

	return Candidate{
		Raw:         raw,
		Local:       local,
		Domain:      domain,
		DomainASCII: ascii,
		Valid:       true,
	}
}

func hasNonASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return true
		}
	}
	return false
}
