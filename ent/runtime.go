// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/numveil/numveil/ent/schema"
	"github.com/numveil/numveil/ent/sitesetting"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	sitesettingFields := schema.SiteSetting{}.Fields()
	_ = sitesettingFields
	// sitesettingDescDomain is the schema descriptor for domain field.
	sitesettingDescDomain := sitesettingFields[0].Descriptor()
	// sitesetting.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	sitesetting.DomainValidator = sitesettingDescDomain.Validators[0].(func(string) error)
	// sitesettingDescEnabled is the schema descriptor for enabled field.
	sitesettingDescEnabled := sitesettingFields[1].Descriptor()
	// sitesetting.DefaultEnabled holds the default value on creation for the enabled field.
	sitesetting.DefaultEnabled = sitesettingDescEnabled.Default.(bool)
	// sitesettingDescHideMagnitude is the schema descriptor for hide_magnitude field.
	sitesettingDescHideMagnitude := sitesettingFields[2].Descriptor()
	// sitesetting.DefaultHideMagnitude holds the default value on creation for the hide_magnitude field.
	sitesetting.DefaultHideMagnitude = sitesettingDescHideMagnitude.Default.(bool)
	// sitesettingDescCreatedAt is the schema descriptor for created_at field.
	sitesettingDescCreatedAt := sitesettingFields[3].Descriptor()
	// sitesetting.DefaultCreatedAt holds the default value on creation for the created_at field.
	sitesetting.DefaultCreatedAt = sitesettingDescCreatedAt.Default.(func() time.Time)
	// sitesettingDescUpdatedAt is the schema descriptor for updated_at field.
	sitesettingDescUpdatedAt := sitesettingFields[4].Descriptor()
	// sitesetting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sitesetting.DefaultUpdatedAt = sitesettingDescUpdatedAt.Default.(func() time.Time)
	// sitesetting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sitesetting.UpdateDefaultUpdatedAt = sitesettingDescUpdatedAt.UpdateDefault.(func() time.Time)
}
