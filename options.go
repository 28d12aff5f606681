package formrelay

import "time"

// DNSOptions configures the DNS verification rule.
type DNSOptions struct {
	// Timeout is the maximum time for a single lookup. Default: 5s
	Timeout time.Duration
	// CacheTTL is how long lookup results are reused. Default: 5m
	CacheTTL time.Duration
}

func defaultDNSOptions() DNSOptions {
	return DNSOptions{
		Timeout:  5 * time.Second,
		CacheTTL: 5 * time.Minute,
	}
}

// withDefaults fills zero fields so callers can set only what they care
// about.
func (o DNSOptions) withDefaults() DNSOptions {
	def := defaultDNSOptions()
	if o.Timeout == 0 {
		o.Timeout = def.Timeout
	}
	if o.CacheTTL == 0 {
		o.CacheTTL = def.CacheTTL
	}
	return o
}
