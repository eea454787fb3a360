package config

import (
	"fmt"
	"strings"
)

// ValidateDomain checks a site domain key. Keys must be bare lowercase
// hostnames: the extension reports location.hostname, so keys carrying
// schemes, paths, or ports would never match a lookup.
func ValidateDomain(domain string) error {
	if domain == "" {
		return fmt.Errorf("domain must not be empty")
	}
	if strings.Contains(domain, "://") {
		return fmt.Errorf("domain %q must not include a scheme", domain)
	}
	if strings.ContainsAny(domain, "/:") {
		return fmt.Errorf("domain %q must not include a path or port", domain)
	}
	if domain != strings.ToLower(domain) {
		return fmt.Errorf("domain %q must be lowercase", domain)
	}
	if strings.ContainsAny(domain, " \t") {
		return fmt.Errorf("domain %q must not contain whitespace", domain)
	}
	return nil
}

// validateSites checks every per-domain override key.
func validateSites(sites map[string]SiteOverride) error {
	for domain := range sites {
		if err := ValidateDomain(domain); err != nil {
			return fmt.Errorf("site override: %w", err)
		}
	}
	return nil
}
