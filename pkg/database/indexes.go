package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateLookupIndexes creates the functional indexes Ent schemas cannot
// express. Settings lookups key on lower(domain) so that a mixed-case
// hostname reported by an older extension build still hits the index.
func CreateLookupIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_site_settings_domain_lower
		ON site_settings (lower(domain))`)
	if err != nil {
		return fmt.Errorf("failed to create lower(domain) index: %w", err)
	}

	return nil
}
