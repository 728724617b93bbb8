package scenario

import (
	"fmt"
	"slices"

	"github.com/etnz/finengine"
	"github.com/etnz/finengine/household"
)

// Entity is implemented by the pointer of every overridable household entity.
type Entity[T any] interface {
	*T
	Clone() T
	EntityID() string
	Target() household.Target
	Set(field string, value any) error
}

// Applied is the result of applying overrides to one entity.
type Applied[T any] struct {
	Entity        T        `json:"entity"`
	AppliedFields []string `json:"appliedFields"` // sorted alphabetically
	IsModified    bool     `json:"isModified"`
}

// ApplyOverrides returns a deep copy of base with the overrides targeting entityID applied.
//
// Only overrides with the same target type as base are considered. Field names missing
// from the target whitelist are skipped. When several overrides set the same field,
// the last one in the list wins. Fields are then applied in alphabetical order.
// Any malformed override fails the call, even when it targets another entity.
// Neither base nor overrides are modified, and the returned entity shares no memory
// with them.
func ApplyOverrides[T any, P Entity[T]](base T, entityID string, overrides []EntityOverride) (Applied[T], error) {
	if entityID == "" {
		return Applied[T]{}, finengine.Invalidf("empty entity id")
	}
	result := P(&base).Clone()
	target := P(&result).Target()
	log := finengine.Log("scenario")

	values := make(map[string]any)
	for _, o := range overrides {
		if err := o.Validate(); err != nil {
			return Applied[T]{}, err
		}
		if o.EntityID != entityID || o.Target != target {
			continue
		}
		for _, f := range o.Fields {
			if !IsOverridable(target, f.Field) {
				log.WithField("entity", entityID).Debugf("skipping unknown %s field %q", target, f.Field)
				continue
			}
			values[f.Field] = f.Value
		}
	}

	fields := make([]string, 0, len(values))
	for f := range values {
		fields = append(fields, f)
	}
	slices.Sort(fields)

	for _, f := range fields {
		if err := P(&result).Set(f, cloneValue(values[f])); err != nil {
			return Applied[T]{}, fmt.Errorf("cannot override %s %q: %w", target, entityID, err)
		}
	}
	return Applied[T]{Entity: result, AppliedFields: fields, IsModified: len(fields) > 0}, nil
}

// ApplyScenarioToEntities applies s to every entity, preserving the input order.
func ApplyScenarioToEntities[T any, P Entity[T]](entities []T, s Scenario) ([]Applied[T], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	res := make([]Applied[T], len(entities))
	for i := range entities {
		id := P(&entities[i]).EntityID()
		a, err := ApplyOverrides[T, P](entities[i], id, s.Overrides)
		if err != nil {
			return nil, err
		}
		res[i] = a
	}
	return res, nil
}

// ApplyToSnapshot returns a deep copy of snapshot with s applied to every entity.
func ApplyToSnapshot(s Scenario, snapshot household.Snapshot) (household.Snapshot, error) {
	assets, err := ApplyScenarioToEntities(snapshot.Assets, s)
	if err != nil {
		return household.Snapshot{}, err
	}
	liabilities, err := ApplyScenarioToEntities(snapshot.Liabilities, s)
	if err != nil {
		return household.Snapshot{}, err
	}
	cashFlows, err := ApplyScenarioToEntities(snapshot.CashFlows, s)
	if err != nil {
		return household.Snapshot{}, err
	}
	return household.Snapshot{
		Assets:      entitiesOf(assets),
		Liabilities: entitiesOf(liabilities),
		CashFlows:   entitiesOf(cashFlows),
	}, nil
}

func entitiesOf[T any](applied []Applied[T]) []T {
	if applied == nil {
		return nil
	}
	res := make([]T, len(applied))
	for i, a := range applied {
		res[i] = a.Entity
	}
	return res
}
