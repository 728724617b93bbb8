package scenario

// MergeScenarios returns a new scenario with the identity of overlay and the overrides of
// both.
//
// For an entity present in both, overlay field values win, base-only fields are kept in
// their base position and overlay-only fields are appended. Entities only present in
// base keep their position; entities only present in overlay come after them. The
// result is never a baseline. Neither input is modified.
func MergeScenarios(base, overlay Scenario) Scenario {
	type key struct {
		target string
		id     string
	}
	keyOf := func(o EntityOverride) key { return key{string(o.Target), o.EntityID} }

	merged := make([]EntityOverride, 0, len(base.Overrides)+len(overlay.Overrides))
	index := make(map[key]int)
	for _, o := range base.Overrides {
		k := keyOf(o)
		if i, ok := index[k]; ok {
			merged[i] = mergeOverride(merged[i], o)
			continue
		}
		index[k] = len(merged)
		merged = append(merged, o.clone())
	}
	for _, o := range overlay.Overrides {
		k := keyOf(o)
		if i, ok := index[k]; ok {
			merged[i] = mergeOverride(merged[i], o)
			continue
		}
		index[k] = len(merged)
		merged = append(merged, o.clone())
	}

	return Scenario{
		ID:          overlay.ID,
		Name:        overlay.Name,
		Description: overlay.Description,
		IsBaseline:  false,
		Overrides:   merged,
	}
}

// mergeOverride returns a copy of dst where the fields of src replace or extend its fields.
func mergeOverride(dst, src EntityOverride) EntityOverride {
	res := dst.clone()
	for _, f := range src.Fields {
		replaced := false
		for i := range res.Fields {
			if res.Fields[i].Field == f.Field {
				res.Fields[i].Value = cloneValue(f.Value)
				replaced = true
			}
		}
		if !replaced {
			res.Fields = append(res.Fields, FieldOverride{Field: f.Field, Value: cloneValue(f.Value)})
		}
	}
	return res
}
