// Package methodology defines the declarative configuration driving a
// calculation run: which KPIs are evaluated, their weights, benchmark
// ranges per scenario, confidence discounts, and the multi-year
// realization curve. Configs are validated eagerly at load time and
// treated as immutable afterwards.
package methodology

import (
	"math"

	"github.com/rotisserie/eris"

	"github.com/sells-group/roi-cli/internal/kpi"
	"github.com/sells-group/roi-cli/internal/model"
)

// weightSumTolerance is how far enabled KPI weights may drift from 1.0.
const weightSumTolerance = 0.01

// BenchmarkRanges holds scenario-specific benchmark values for a KPI.
type BenchmarkRanges struct {
	Conservative float64 `yaml:"conservative" json:"conservative"`
	Moderate     float64 `yaml:"moderate" json:"moderate"`
	Aggressive   float64 `yaml:"aggressive" json:"aggressive"`
}

// ForScenario returns the benchmark value for the given band. The
// scenario set is closed, so the switch is exhaustive; unknown values
// fall back to conservative.
func (b BenchmarkRanges) ForScenario(s model.Scenario) float64 {
	switch s {
	case model.ScenarioModerate:
		return b.Moderate
	case model.ScenarioAggressive:
		return b.Aggressive
	default:
		return b.Conservative
	}
}

// KPIConfig configures a single KPI within a methodology.
type KPIConfig struct {
	ID                 string          `yaml:"id" json:"id"`
	Label              string          `yaml:"label,omitempty" json:"label,omitempty"`
	Weight             float64         `yaml:"weight" json:"weight"`
	Formula            string          `yaml:"formula" json:"formula"` // human-readable description
	Inputs             []string        `yaml:"inputs" json:"inputs"`
	BenchmarkRanges    BenchmarkRanges `yaml:"benchmark_ranges" json:"benchmark_ranges"`
	BenchmarkSource    string          `yaml:"benchmark_source" json:"benchmark_source"`
	BenchmarkSourceURL string          `yaml:"benchmark_source_url,omitempty" json:"benchmark_source_url,omitempty"`
	Enabled            *bool           `yaml:"enabled,omitempty" json:"enabled"`
}

// IsEnabled reports whether the KPI participates in calculation.
// Unset defaults to enabled.
func (k KPIConfig) IsEnabled() bool {
	return k.Enabled == nil || *k.Enabled
}

// ConfidenceDiscounts maps each confidence tier to the multiplier
// applied to raw KPI impacts.
type ConfidenceDiscounts struct {
	CompanyReported   float64 `yaml:"company_reported" json:"company_reported"`
	IndustryBenchmark float64 `yaml:"industry_benchmark" json:"industry_benchmark"`
	CrossIndustry     float64 `yaml:"cross_industry" json:"cross_industry"`
	Estimated         float64 `yaml:"estimated" json:"estimated"`
}

// DefaultConfidenceDiscounts returns the fixed default multipliers.
func DefaultConfidenceDiscounts() ConfidenceDiscounts {
	return ConfidenceDiscounts{
		CompanyReported:   1.0,
		IndustryBenchmark: 0.8,
		CrossIndustry:     0.6,
		Estimated:         0.4,
	}
}

// ForTier returns the discount multiplier for a confidence tier.
// Unknown tiers get the estimated discount.
func (d ConfidenceDiscounts) ForTier(t model.ConfidenceTier) float64 {
	switch t {
	case model.TierCompanyReported:
		return d.CompanyReported
	case model.TierIndustryBenchmark:
		return d.IndustryBenchmark
	case model.TierCrossIndustry:
		return d.CrossIndustry
	default:
		return d.Estimated
	}
}

// Config is the top-level methodology configuration.
type Config struct {
	ID                   string               `yaml:"id" json:"id"`
	Name                 string               `yaml:"name" json:"name"`
	Version              string               `yaml:"version" json:"version"`
	ApplicableIndustries []string             `yaml:"applicable_industries" json:"applicable_industries"`
	ServiceType          string               `yaml:"service_type" json:"service_type"`
	KPIs                 []KPIConfig          `yaml:"kpis" json:"kpis"`
	RealizationCurve     []float64            `yaml:"realization_curve" json:"realization_curve"`
	ConfidenceDiscounts  *ConfidenceDiscounts `yaml:"confidence_discounts,omitempty" json:"confidence_discounts"`
	Enabled              *bool                `yaml:"enabled,omitempty" json:"enabled"`
}

// EnabledKPIs returns the KPIs that participate in calculation.
func (c *Config) EnabledKPIs() []KPIConfig {
	var out []KPIConfig
	for _, k := range c.KPIs {
		if k.IsEnabled() {
			out = append(out, k)
		}
	}
	return out
}

// TotalWeight sums the weights of enabled KPIs.
func (c *Config) TotalWeight() float64 {
	total := 0.0
	for _, k := range c.EnabledKPIs() {
		total += k.Weight
	}
	return total
}

// RequiredInputs returns the deduplicated set of record field keys
// required by enabled KPIs.
func (c *Config) RequiredInputs() map[string]struct{} {
	inputs := make(map[string]struct{})
	for _, k := range c.EnabledKPIs() {
		for _, in := range k.Inputs {
			inputs[in] = struct{}{}
		}
	}
	return inputs
}

// Discounts returns the configured confidence discounts, falling back
// to the fixed defaults when the config omits them.
func (c *Config) Discounts() ConfidenceDiscounts {
	if c.ConfidenceDiscounts == nil {
		return DefaultConfidenceDiscounts()
	}
	return *c.ConfidenceDiscounts
}

// Validate checks every configuration invariant, resolving KPI ids
// against the given registry. Any violation is fatal: the config is
// rejected, never silently corrected.
func (c *Config) Validate(registry *kpi.Registry) error {
	if c.ID == "" {
		return eris.New("methodology: id is required")
	}
	if len(c.KPIs) == 0 {
		return eris.New("methodology: at least one KPI is required")
	}

	for i, k := range c.KPIs {
		if k.ID == "" {
			return eris.Errorf("methodology: kpis[%d] has no id", i)
		}
		if !registry.Has(k.ID) {
			return eris.Errorf("methodology: KPI %q is not registered in the KPI library", k.ID)
		}
		if k.Weight < 0 || k.Weight > 1.0 {
			return eris.Errorf("methodology: KPI %q weight must be 0-1.0, got %v", k.ID, k.Weight)
		}
		b := k.BenchmarkRanges
		if b.Conservative < 0 {
			return eris.Errorf("methodology: KPI %q conservative benchmark must be >= 0", k.ID)
		}
		if !(b.Conservative <= b.Moderate && b.Moderate <= b.Aggressive) {
			return eris.Errorf(
				"methodology: KPI %q benchmark ranges must be ordered: conservative (%v) <= moderate (%v) <= aggressive (%v)",
				k.ID, b.Conservative, b.Moderate, b.Aggressive,
			)
		}
	}

	if enabled := c.EnabledKPIs(); len(enabled) > 0 {
		total := c.TotalWeight()
		if math.Abs(total-1.0) > weightSumTolerance {
			return eris.Errorf("methodology: enabled KPI weights must sum to ~1.0, got %.3f", total)
		}
	}

	if len(c.RealizationCurve) == 0 {
		return eris.New("methodology: realization_curve must have at least one year")
	}
	for i, pct := range c.RealizationCurve {
		if pct <= 0 || pct > 1.0 {
			return eris.Errorf("methodology: realization_curve[%d] must be between 0 (exclusive) and 1.0, got %v", i, pct)
		}
		if i > 0 && pct < c.RealizationCurve[i-1] {
			return eris.Errorf(
				"methodology: realization_curve must be non-decreasing: year %d (%v) > year %d (%v)",
				i, c.RealizationCurve[i-1], i+1, pct,
			)
		}
	}

	d := c.Discounts()
	for name, v := range map[string]float64{
		"company_reported":   d.CompanyReported,
		"industry_benchmark": d.IndustryBenchmark,
		"cross_industry":     d.CrossIndustry,
		"estimated":          d.Estimated,
	} {
		if v < 0 || v > 1.0 {
			return eris.Errorf("methodology: confidence_discounts.%s must be 0-1.0, got %v", name, v)
		}
	}

	return nil
}
