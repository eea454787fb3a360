// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SiteSettingsColumns holds the columns for the "site_settings" table.
	SiteSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "domain", Type: field.TypeString, Unique: true},
		{Name: "enabled", Type: field.TypeBool, Default: false},
		{Name: "hide_magnitude", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SiteSettingsTable holds the schema information for the "site_settings" table.
	SiteSettingsTable = &schema.Table{
		Name:       "site_settings",
		Columns:    SiteSettingsColumns,
		PrimaryKey: []*schema.Column{SiteSettingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sitesetting_domain",
				Unique:  true,
				Columns: []*schema.Column{SiteSettingsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SiteSettingsTable,
	}
)

func init() {
	SiteSettingsTable.Annotation = &entsql.Annotation{
		Table: "site_settings",
	}
}
