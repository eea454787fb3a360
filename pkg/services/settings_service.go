// Package services implements the domain services between the HTTP/gRPC
// surfaces and the storage and masking layers.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/numveil/numveil/ent"
	"github.com/numveil/numveil/ent/sitesetting"
	"github.com/numveil/numveil/pkg/config"
	"github.com/numveil/numveil/pkg/masking"
)

// UpsertSettingInput contains the domain-level data for storing a site
// setting. Transformed from the HTTP request by the handler.
type UpsertSettingInput struct {
	Domain        string
	Enabled       bool
	HideMagnitude bool
}

// SettingsService owns the per-site settings store and resolves the
// effective masking configuration for a domain. Resolution layers, most
// specific last:
//
//	built-in defaults → static numveil.yaml override → stored setting
//
// A stored setting specifies every field, so when one exists it wins
// wholesale; the static override layer resolves field by field.
type SettingsService struct {
	client   *ent.Client
	sites    *config.SiteRegistry
	defaults config.Defaults
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(client *ent.Client, cfg *config.Config) *SettingsService {
	if client == nil {
		panic("NewSettingsService: client must not be nil")
	}
	if cfg == nil {
		panic("NewSettingsService: cfg must not be nil")
	}
	return &SettingsService{
		client:   client,
		sites:    cfg.Sites,
		defaults: cfg.Defaults,
	}
}

// Resolve returns the effective masking configuration for a domain.
// Unknown domains resolve to the defaults — resolution is total, never an
// error path for a missing row.
func (s *SettingsService) Resolve(ctx context.Context, domain string) (masking.Config, error) {
	effective := s.defaults.MaskingConfig()

	domain = NormalizeDomain(domain)
	if domain == "" {
		return effective, nil
	}

	if override, ok := s.sites.Get(domain); ok {
		effective = override.Apply(effective)
	}

	stored, err := s.client.SiteSetting.Query().
		Where(sitesetting.DomainEQ(domain)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return effective, nil
		}
		return effective, fmt.Errorf("failed to query setting for %q: %w", domain, err)
	}

	return masking.Config{
		Enabled:       stored.Enabled,
		HideMagnitude: stored.HideMagnitude,
	}, nil
}

// Get returns the stored setting for a domain, or ErrNotFound.
func (s *SettingsService) Get(ctx context.Context, domain string) (*ent.SiteSetting, error) {
	domain = NormalizeDomain(domain)
	if err := config.ValidateDomain(domain); err != nil {
		return nil, NewValidationError("domain", err.Error())
	}

	setting, err := s.client.SiteSetting.Query().
		Where(sitesetting.DomainEQ(domain)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query setting for %q: %w", domain, err)
	}
	return setting, nil
}

// List returns all stored settings ordered by domain.
func (s *SettingsService) List(ctx context.Context) ([]*ent.SiteSetting, error) {
	settings, err := s.client.SiteSetting.Query().
		Order(ent.Asc(sitesetting.FieldDomain)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

// Upsert stores a site setting, creating or updating the row for the
// domain.
func (s *SettingsService) Upsert(ctx context.Context, input UpsertSettingInput) (*ent.SiteSetting, error) {
	domain := NormalizeDomain(input.Domain)
	if err := config.ValidateDomain(domain); err != nil {
		return nil, NewValidationError("domain", err.Error())
	}

	existing, err := s.client.SiteSetting.Query().
		Where(sitesetting.DomainEQ(domain)).
		Only(ctx)
	switch {
	case err == nil:
		updated, err := existing.Update().
			SetEnabled(input.Enabled).
			SetHideMagnitude(input.HideMagnitude).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update setting for %q: %w", domain, err)
		}
		return updated, nil
	case ent.IsNotFound(err):
		created, err := s.client.SiteSetting.Create().
			SetDomain(domain).
			SetEnabled(input.Enabled).
			SetHideMagnitude(input.HideMagnitude).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create setting for %q: %w", domain, err)
		}
		return created, nil
	default:
		return nil, fmt.Errorf("failed to query setting for %q: %w", domain, err)
	}
}

// Delete removes the stored setting for a domain. The domain falls back to
// its static override or the defaults afterwards.
func (s *SettingsService) Delete(ctx context.Context, domain string) error {
	domain = NormalizeDomain(domain)
	if err := config.ValidateDomain(domain); err != nil {
		return NewValidationError("domain", err.Error())
	}

	n, err := s.client.SiteSetting.Delete().
		Where(sitesetting.DomainEQ(domain)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete setting for %q: %w", domain, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// NormalizeDomain lowercases and trims a reported hostname so lookups and
// stored rows agree on a canonical key.
func NormalizeDomain(domain string) string {
	return strings.ToLower(strings.TrimSpace(domain))
}
