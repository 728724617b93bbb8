package insights

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/etnz/finengine"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

// Threshold keys.
const (
	ThresholdInfo          = "info"    // percent
	ThresholdWarning       = "warning" // percent
	ThresholdAlert         = "alert"   // percent
	ThresholdAlertMonths   = "alertMonths"
	ThresholdWarningMonths = "warningMonths"
	ThresholdLagPercent    = "lagPercent" // share of the expected progress under which a goal lags
	ThresholdMinimumSaving = "minimumSavingsCents"
)

// RuleConfig configures one rule.
type RuleConfig struct {
	Enabled       bool                       `json:"enabled"`
	Priority      int                        `json:"priority"`
	Thresholds    map[string]decimal.Decimal `json:"thresholds"`
	ExtraPayments []finengine.Cents          `json:"extraPaymentsCents,omitempty"` // interest-savings only
}

// threshold returns the threshold named key, zero when it is missing.
func (r RuleConfig) threshold(key string) decimal.Decimal { return r.Thresholds[key] }

func (r RuleConfig) clone() RuleConfig {
	r.Thresholds = maps.Clone(r.Thresholds)
	r.ExtraPayments = slices.Clone(r.ExtraPayments)
	return r
}

// Configuration configures every rule.
type Configuration struct {
	Rules map[RuleID]RuleConfig `json:"rules"`
}

// Rule returns the configuration of id. Unconfigured rules are disabled.
func (c Configuration) Rule(id RuleID) RuleConfig { return c.Rules[id] }

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// DefaultConfiguration returns the configuration used when a caller sets nothing.
func DefaultConfiguration() Configuration {
	return Configuration{Rules: map[RuleID]RuleConfig{
		HousingCostRatio: {Enabled: true, Priority: 1, Thresholds: map[string]decimal.Decimal{
			ThresholdInfo: d(28), ThresholdWarning: d(36), ThresholdAlert: d(45),
		}},
		DebtToIncome: {Enabled: true, Priority: 2, Thresholds: map[string]decimal.Decimal{
			ThresholdInfo: d(36), ThresholdWarning: d(43), ThresholdAlert: d(50),
		}},
		EmergencyFund: {Enabled: true, Priority: 3, Thresholds: map[string]decimal.Decimal{
			ThresholdAlertMonths: d(3), ThresholdWarningMonths: d(6),
		}},
		GoalProgress: {Enabled: true, Priority: 4, Thresholds: map[string]decimal.Decimal{
			ThresholdLagPercent: d(80),
		}},
		InterestSavingsPotential: {Enabled: true, Priority: 5, Thresholds: map[string]decimal.Decimal{
			ThresholdMinimumSaving: d(100000),
		}, ExtraPayments: []finengine.Cents{finengine.C(10000), finengine.C(25000), finengine.C(50000)}},
	}}
}

// RuleOverride changes the fields of a rule configuration that it sets.
type RuleOverride struct {
	Enabled       *bool                      `json:"enabled,omitempty"`
	Priority      *int                       `json:"priority,omitempty"`
	Thresholds    map[string]decimal.Decimal `json:"thresholds,omitempty"`
	ExtraPayments []finengine.Cents          `json:"extraPaymentsCents,omitempty"`
}

// Merge returns a copy of defaults where each override replaces the fields it sets.
// Thresholds merge key by key. Overrides of rules missing from defaults start from a
// disabled rule. Neither argument is modified.
func Merge(defaults Configuration, overrides map[RuleID]RuleOverride) Configuration {
	res := Configuration{Rules: make(map[RuleID]RuleConfig, len(defaults.Rules))}
	for id, r := range defaults.Rules {
		res.Rules[id] = r.clone()
	}
	for id, o := range overrides {
		r := res.Rules[id]
		if o.Enabled != nil {
			r.Enabled = *o.Enabled
		}
		if o.Priority != nil {
			r.Priority = *o.Priority
		}
		if len(o.Thresholds) > 0 {
			if r.Thresholds == nil {
				r.Thresholds = make(map[string]decimal.Decimal, len(o.Thresholds))
			}
			maps.Copy(r.Thresholds, o.Thresholds)
		}
		if o.ExtraPayments != nil {
			r.ExtraPayments = slices.Clone(o.ExtraPayments)
		}
		res.Rules[id] = r
	}
	return res
}

// fileOverride is the YAML form of a RuleOverride.
type fileOverride struct {
	Enabled       *bool             `yaml:"enabled"`
	Priority      *int              `yaml:"priority"`
	Thresholds    map[string]string `yaml:"thresholds"` // scalars kept as written
	ExtraPayments []int64           `yaml:"extraPaymentsCents"`
}

// ParseOverrides reads rule overrides from YAML:
//
//	rules:
//	  emergency-fund:
//	    thresholds:
//	      warningMonths: 4
//	  interest-savings:
//	    enabled: false
func ParseOverrides(r io.Reader) (map[RuleID]RuleOverride, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var file struct {
		Rules map[string]fileOverride `yaml:"rules"`
	}
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("%w: rule configuration: %v", finengine.ErrInvalidInput, err)
	}
	res := make(map[RuleID]RuleOverride, len(file.Rules))
	for name, f := range file.Rules {
		id := RuleID(name)
		if !slices.Contains(Rules, id) {
			return nil, finengine.Invalidf("unknown rule %q", name)
		}
		o := RuleOverride{Enabled: f.Enabled, Priority: f.Priority}
		if len(f.Thresholds) > 0 {
			o.Thresholds = make(map[string]decimal.Decimal, len(f.Thresholds))
			for k, v := range f.Thresholds {
				t, err := decimal.NewFromString(v)
				if err != nil {
					return nil, finengine.Invalidf("rule %s: threshold %s: %q is not a number", name, k, v)
				}
				o.Thresholds[k] = t
			}
		}
		for _, v := range f.ExtraPayments {
			c, err := finengine.NewCents(v)
			if err != nil {
				return nil, fmt.Errorf("rule %s: %w", name, err)
			}
			o.ExtraPayments = append(o.ExtraPayments, c)
		}
		res[id] = o
	}
	return res, nil
}

// LoadConfiguration returns the default configuration merged with the YAML overrides
// read from r.
func LoadConfiguration(r io.Reader) (Configuration, error) {
	overrides, err := ParseOverrides(r)
	if err != nil {
		return Configuration{}, err
	}
	return Merge(DefaultConfiguration(), overrides), nil
}
