package goquery

import (
	"net/url"
	"sort"
	"strings"
)

// HackerNewsHost is the host pattern of the built-in Hacker News rule.
const HackerNewsHost = "ycombinator.com"

// Registry maps host patterns to site-specific strategies. A pattern
// matches its own host and every subdomain of it, so "ycombinator.com"
// covers "news.ycombinator.com".
type Registry struct {
	sites map[string]Strategy
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		sites: make(map[string]Strategy),
	}
}

// NewDefaultRegistry creates a Registry with the built-in site rules.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(HackerNewsHost, NewHackerNewsStrategy())
	return r
}

// Register adds a strategy for a host pattern.
// If a strategy is already registered for the pattern, it is replaced.
func (r *Registry) Register(host string, strategy Strategy) {
	r.sites[normalizeHost(host)] = strategy
}

// Get returns the strategy registered for exactly this host pattern.
// Returns nil if no strategy is registered.
func (r *Registry) Get(host string) Strategy {
	return r.sites[normalizeHost(host)]
}

// GetForURL returns the strategy whose pattern matches the URL's host,
// preferring the most specific pattern. Returns nil if the URL cannot be
// parsed or no pattern matches.
func (r *Registry) GetForURL(rawURL string) Strategy {
	if rawURL == "" {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}

	host := normalizeHost(u.Hostname())
	for host != "" {
		if s, ok := r.sites[host]; ok {
			return s
		}
		i := strings.IndexByte(host, '.')
		if i < 0 {
			break
		}
		host = host[i+1:]
	}
	return nil
}

// List returns all registered host patterns in sorted order.
func (r *Registry) List() []string {
	hosts := make([]string, 0, len(r.sites))
	for h := range r.sites {
		hosts = append(hosts, h)
	}
	sort.Strings(hosts)
	return hosts
}

func normalizeHost(host string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")
}
