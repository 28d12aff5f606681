// Package dnscache provides a thread-safe, TTL-based cache for DNS lookups
// with singleflight deduplication for concurrent requests to the same domain.
// It caches MX and address-record lookups separately.
package dnscache

import (
	"context"
	"net"
	"sync"
	"time"
)

// Resolver is the subset of net.Resolver the cache needs.
// Injectable for testing.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIP(ctx context.Context, network, host string) ([]net.IP, error)
}

// Cache is a thread-safe DNS lookup cache.
// Concurrent lookups for the same key are deduplicated:
// only one actual DNS query is performed, and all waiters receive the result.
type Cache struct {
	mu            sync.Mutex
	entries       map[string]*entry
	cacheTTL      time.Duration
	lookupTimeout time.Duration
	resolver      Resolver
}

type entry struct {
	mx      []*net.MX
	ips     []net.IP
	err     error
	expires time.Time
	done    chan struct{} // closed when lookup is complete
}

// New creates a DNS cache with the given lookup timeout and cache TTL.
func New(lookupTimeout, cacheTTL time.Duration) *Cache {
	return &Cache{
		entries:       make(map[string]*entry),
		cacheTTL:      cacheTTL,
		lookupTimeout: lookupTimeout,
		resolver:      &net.Resolver{},
	}
}

// NewWithResolver creates a DNS cache with a custom resolver (for testing).
func NewWithResolver(lookupTimeout, cacheTTL time.Duration, r Resolver) *Cache {
	c := New(lookupTimeout, cacheTTL)
	c.resolver = r
	return c
}

// LookupMX returns MX records for the domain, using the cache when possible.
func (c *Cache) LookupMX(domain string) ([]*net.MX, error) {
	e := c.lookup("mx:"+domain, func(ctx context.Context, e *entry) {
		e.mx, e.err = c.resolver.LookupMX(ctx, domain)
	})
	return copyMX(e.mx), e.err
}

// LookupIP returns address records for the domain, using the cache when
// possible. network is "ip4" for A records or "ip6" for AAAA records.
func (c *Cache) LookupIP(network, domain string) ([]net.IP, error) {
	e := c.lookup(network+":"+domain, func(ctx context.Context, e *entry) {
		e.ips, e.err = c.resolver.LookupIP(ctx, network, domain)
	})
	return copyIPs(e.ips), e.err
}

// lookup returns the cache entry for key, performing fn under singleflight
// when the entry is missing or expired.
func (c *Cache) lookup(key string, fn func(context.Context, *entry)) *entry {
	c.mu.Lock()

	if e, ok := c.entries[key]; ok {
		select {
		case <-e.done:
			// Completed entry - check if still valid
			if time.Now().Before(e.expires) {
				c.mu.Unlock()
				return e
			}
			// Expired, fall through to refresh
		default:
			// Lookup in progress - wait for it
			c.mu.Unlock()
			<-e.done
			return e
		}
	}

	// Start new lookup
	e := &entry{done: make(chan struct{})}
	c.entries[key] = e
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), c.lookupTimeout)
	defer cancel()

	fn(ctx, e)
	e.expires = time.Now().Add(c.cacheTTL)
	close(e.done)

	return e
}

// Len returns the number of entries in the cache (for diagnostics).
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// copyMX returns a deep copy of MX records to prevent callers from
// mutating cached data (e.g., via sort.Slice).
func copyMX(records []*net.MX) []*net.MX {
	if records == nil {
		return nil
	}
	out := make([]*net.MX, len(records))
	for i, r := range records {
		cp := *r
		out[i] = &cp
	}
	return out
}

func copyIPs(ips []net.IP) []net.IP {
	if ips == nil {
		return nil
	}
	out := make([]net.IP, len(ips))
	copy(out, ips)
	return out
}
