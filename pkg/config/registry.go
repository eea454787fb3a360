package config

// SiteRegistry is an in-memory registry of static per-domain overrides,
// built once at startup from numveil.yaml. Read-only after construction,
// safe for concurrent use.
type SiteRegistry struct {
	overrides map[string]SiteOverride
}

// NewSiteRegistry creates a registry from the given overrides map.
// A nil map yields an empty registry.
func NewSiteRegistry(overrides map[string]SiteOverride) *SiteRegistry {
	if overrides == nil {
		overrides = map[string]SiteOverride{}
	}
	return &SiteRegistry{overrides: overrides}
}

// Get returns the static override for domain, if one exists.
func (r *SiteRegistry) Get(domain string) (SiteOverride, bool) {
	o, ok := r.overrides[domain]
	return o, ok
}

// Domains returns the domains that carry a static override.
func (r *SiteRegistry) Domains() []string {
	domains := make([]string, 0, len(r.overrides))
	for d := range r.overrides {
		domains = append(domains, d)
	}
	return domains
}
