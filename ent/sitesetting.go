// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/numveil/numveil/ent/sitesetting"
)

// SiteSetting is the model entity for the SiteSetting schema.
type SiteSetting struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Bare lowercase hostname, as reported by the extension
	Domain string `json:"domain,omitempty"`
	// Whether masking runs at all for this site
	Enabled bool `json:"enabled,omitempty"`
	// Fixed-width placeholder policy instead of character-preserving
	HideMagnitude bool `json:"hide_magnitude,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SiteSetting) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sitesetting.FieldEnabled, sitesetting.FieldHideMagnitude:
			values[i] = new(sql.NullBool)
		case sitesetting.FieldID:
			values[i] = new(sql.NullInt64)
		case sitesetting.FieldDomain:
			values[i] = new(sql.NullString)
		case sitesetting.FieldCreatedAt, sitesetting.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SiteSetting fields.
func (_m *SiteSetting) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sitesetting.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sitesetting.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case sitesetting.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case sitesetting.FieldHideMagnitude:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field hide_magnitude", values[i])
			} else if value.Valid {
				_m.HideMagnitude = value.Bool
			}
		case sitesetting.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sitesetting.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SiteSetting.
// This includes values selected through modifiers, order, etc.
func (_m *SiteSetting) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SiteSetting.
// Note that you need to call SiteSetting.Unwrap() before calling this method if this SiteSetting
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SiteSetting) Update() *SiteSettingUpdateOne {
	return NewSiteSettingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SiteSetting entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SiteSetting) Unwrap() *SiteSetting {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SiteSetting is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SiteSetting) String() string {
	var builder strings.Builder
	builder.WriteString("SiteSetting(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("hide_magnitude=")
	builder.WriteString(fmt.Sprintf("%v", _m.HideMagnitude))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SiteSettings is a parsable slice of SiteSetting.
type SiteSettings []*SiteSetting
