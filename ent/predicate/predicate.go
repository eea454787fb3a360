// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// SiteSetting is the predicate function for sitesetting builders.
type SiteSetting func(*sql.Selector)
