package check

import (
	"strings"

	"github.com/optimode/formrelay/internal/levenshtein"
)

// knownProviders is the list of known major email providers used for
// typo detection. If a submitted domain is within the distance threshold
// of one of these, the corrected domain is suggested to the caller.
// A suggestion never affects the accept/reject verdict.
var knownProviders = []string{
	"gmail.com", "googlemail.com",
	"yahoo.com", "yahoo.co.uk", "yahoo.fr", "yahoo.de",
	"outlook.com", "hotmail.com", "hotmail.co.uk", "live.com",
	"icloud.com", "me.com", "mac.com",
	"protonmail.com", "proton.me",
	"aol.com",
	"zoho.com",
	"yandex.com", "yandex.ru",
	"mail.com",
	"gmx.com", "gmx.net", "gmx.de",
	"fastmail.com",
	"tutanota.com",
}

// defaultTypoThreshold is the maximum Levenshtein distance for a
// domain to count as a likely typo of a known provider.
const defaultTypoThreshold = 2

// TypoSuggestion returns the known provider closest to the given domain,
// or "" when the domain is an exact match or no provider is close enough.
func TypoSuggestion(domain string) string {
	domain = strings.ToLower(domain)

	bestDist := defaultTypoThreshold + 1
	bestMatch := ""

	for _, provider := range knownProviders {
		if domain == provider {
			return "" // exact match, no typo
		}
		dist := levenshtein.Distance(domain, provider)
		if dist <= defaultTypoThreshold && dist < bestDist {
			bestDist = dist
			bestMatch = provider
		}
	}

	return bestMatch
}
