// Package scenario applies named sets of field overrides to household entities without
// ever mutating the entities or the overrides.
package scenario

import (
	"encoding/json"
	"slices"

	"github.com/etnz/finengine"
	"github.com/etnz/finengine/date"
	"github.com/etnz/finengine/household"
)

// FieldOverride replaces the value of one entity field.
type FieldOverride struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// EntityOverride groups the field overrides of one entity.
type EntityOverride struct {
	EntityID string           `json:"entityId"`
	Target   household.Target `json:"targetType"`
	Fields   []FieldOverride  `json:"fields"`
}

// Scenario is a named, ordered set of entity overrides.
type Scenario struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	IsBaseline  bool             `json:"isBaseline"`
	Overrides   []EntityOverride `json:"overrides"`
}

// Validate reports the first invalid override: an empty entity id or an unknown target type.
func (o EntityOverride) Validate() error {
	if o.EntityID == "" {
		return finengine.Invalidf("override has an empty entity id")
	}
	if !o.Target.Valid() {
		return finengine.Invalidf("override of %q has an unknown target type %q", o.EntityID, o.Target)
	}
	return nil
}

// Validate checks every override of s.
func (s Scenario) Validate() error {
	for _, o := range s.Overrides {
		if err := o.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Fields returns the sorted whitelist of overridable fields for a target type.
func Fields(t household.Target) []string {
	switch t {
	case household.TargetAsset:
		return household.AssetFields
	case household.TargetLiability:
		return household.LiabilityFields
	case household.TargetCashFlowItem:
		return household.CashFlowItemFields
	default:
		return nil
	}
}

// IsOverridable reports whether field is whitelisted for the target type.
func IsOverridable(t household.Target, field string) bool {
	_, found := slices.BinarySearch(Fields(t), field)
	return found
}

// cloneValue copies the override values that share memory.
func cloneValue(v any) any {
	switch x := v.(type) {
	case *date.Date:
		if x == nil {
			return x
		}
		d := *x
		return &d
	case []string:
		return append([]string(nil), x...)
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = cloneValue(e)
		}
		return res
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			res[k] = cloneValue(e)
		}
		return res
	case json.RawMessage:
		return append(json.RawMessage(nil), x...)
	default:
		return v
	}
}

func (o EntityOverride) clone() EntityOverride {
	fields := make([]FieldOverride, len(o.Fields))
	for i, f := range o.Fields {
		fields[i] = FieldOverride{Field: f.Field, Value: cloneValue(f.Value)}
	}
	o.Fields = fields
	return o
}

// Clone returns a deep copy of s.
func (s Scenario) Clone() Scenario {
	overrides := make([]EntityOverride, len(s.Overrides))
	for i, o := range s.Overrides {
		overrides[i] = o.clone()
	}
	s.Overrides = overrides
	return s
}
