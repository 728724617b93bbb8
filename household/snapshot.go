package household

// Snapshot is the set of entities a projection runs on.
type Snapshot struct {
	Assets      []Asset        `json:"assets"`
	Liabilities []Liability    `json:"liabilities"`
	CashFlows   []CashFlowItem `json:"cashFlowItems"`
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Assets:      cloneAll(s.Assets, Asset.Clone),
		Liabilities: cloneAll(s.Liabilities, Liability.Clone),
		CashFlows:   cloneAll(s.CashFlows, CashFlowItem.Clone),
	}
}

func cloneAll[T any](items []T, clone func(T) T) []T {
	if items == nil {
		return nil
	}
	res := make([]T, len(items))
	for i, it := range items {
		res[i] = clone(it)
	}
	return res
}

// Validate checks every entity of s and that ids are unique per entity type.
func (s Snapshot) Validate() error {
	if err := validateAll(s.Assets, Asset.Validate, Asset.EntityID); err != nil {
		return err
	}
	if err := validateAll(s.Liabilities, Liability.Validate, Liability.EntityID); err != nil {
		return err
	}
	return validateAll(s.CashFlows, CashFlowItem.Validate, CashFlowItem.EntityID)
}

func validateAll[T any](items []T, validate func(T) error, id func(T) string) error {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if err := validate(it); err != nil {
			return err
		}
		if seen[id(it)] {
			return invalidDuplicate(id(it))
		}
		seen[id(it)] = true
	}
	return nil
}
