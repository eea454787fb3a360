// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/numveil/numveil/ent/sitesetting"
)

// SiteSettingCreate is the builder for creating a SiteSetting entity.
type SiteSettingCreate struct {
	config
	mutation *SiteSettingMutation
	hooks    []Hook
}

// SetDomain sets the "domain" field.
func (_c *SiteSettingCreate) SetDomain(v string) *SiteSettingCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *SiteSettingCreate) SetEnabled(v bool) *SiteSettingCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *SiteSettingCreate) SetNillableEnabled(v *bool) *SiteSettingCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetHideMagnitude sets the "hide_magnitude" field.
func (_c *SiteSettingCreate) SetHideMagnitude(v bool) *SiteSettingCreate {
	_c.mutation.SetHideMagnitude(v)
	return _c
}

// SetNillableHideMagnitude sets the "hide_magnitude" field if the given value is not nil.
func (_c *SiteSettingCreate) SetNillableHideMagnitude(v *bool) *SiteSettingCreate {
	if v != nil {
		_c.SetHideMagnitude(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SiteSettingCreate) SetCreatedAt(v time.Time) *SiteSettingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SiteSettingCreate) SetNillableCreatedAt(v *time.Time) *SiteSettingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SiteSettingCreate) SetUpdatedAt(v time.Time) *SiteSettingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SiteSettingCreate) SetNillableUpdatedAt(v *time.Time) *SiteSettingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SiteSettingMutation object of the builder.
func (_c *SiteSettingCreate) Mutation() *SiteSettingMutation {
	return _c.mutation
}

// Save creates the SiteSetting in the database.
func (_c *SiteSettingCreate) Save(ctx context.Context) (*SiteSetting, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SiteSettingCreate) SaveX(ctx context.Context) *SiteSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SiteSettingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SiteSettingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SiteSettingCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := sitesetting.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.HideMagnitude(); !ok {
		v := sitesetting.DefaultHideMagnitude
		_c.mutation.SetHideMagnitude(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sitesetting.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sitesetting.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SiteSettingCreate) check() error {
	if _, ok := _c.mutation.Domain(); !ok {
		return &ValidationError{Name: "domain", err: errors.New(`ent: missing required field "SiteSetting.domain"`)}
	}
	if v, ok := _c.mutation.Domain(); ok {
		if err := sitesetting.DomainValidator(v); err != nil {
			return &ValidationError{Name: "domain", err: fmt.Errorf(`ent: validator failed for field "SiteSetting.domain": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "SiteSetting.enabled"`)}
	}
	if _, ok := _c.mutation.HideMagnitude(); !ok {
		return &ValidationError{Name: "hide_magnitude", err: errors.New(`ent: missing required field "SiteSetting.hide_magnitude"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SiteSetting.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SiteSetting.updated_at"`)}
	}
	return nil
}

func (_c *SiteSettingCreate) sqlSave(ctx context.Context) (*SiteSetting, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SiteSettingCreate) createSpec() (*SiteSetting, *sqlgraph.CreateSpec) {
	var (
		_node = &SiteSetting{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sitesetting.Table, sqlgraph.NewFieldSpec(sitesetting.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(sitesetting.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(sitesetting.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.HideMagnitude(); ok {
		_spec.SetField(sitesetting.FieldHideMagnitude, field.TypeBool, value)
		_node.HideMagnitude = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sitesetting.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sitesetting.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SiteSettingCreateBulk is the builder for creating many SiteSetting entities in bulk.
type SiteSettingCreateBulk struct {
	config
	err      error
	builders []*SiteSettingCreate
}

// Save creates the SiteSetting entities in the database.
func (_c *SiteSettingCreateBulk) Save(ctx context.Context) ([]*SiteSetting, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SiteSetting, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SiteSettingMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SiteSettingCreateBulk) SaveX(ctx context.Context) []*SiteSetting {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SiteSettingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SiteSettingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
