package calc

import (
	"time"

	"github.com/sells-group/roi-cli/internal/model"
)

// YearProjection is one forward year of the realization curve applied
// to a scenario's unweighted total.
type YearProjection struct {
	Year                  int     `json:"year"`
	RealizationPercentage float64 `json:"realization_percentage"`
	ProjectedImpact       float64 `json:"projected_impact"`
	CumulativeImpact      float64 `json:"cumulative_impact"`
}

// KPIAuditEntry is the complete record of one KPI's evaluation within a
// scenario, whether it computed or was skipped.
type KPIAuditEntry struct {
	KPIID              string                          `json:"kpi_id"`
	KPILabel           string                          `json:"kpi_label"`
	FormulaDescription string                          `json:"formula_description"`
	InputsUsed         map[string]float64              `json:"inputs_used"`
	InputTiers         map[string]model.ConfidenceTier `json:"input_tiers"`
	BenchmarkValue     float64                         `json:"benchmark_value"`
	BenchmarkSource    string                          `json:"benchmark_source"`
	RawImpact          float64                         `json:"raw_impact"`
	ConfidenceDiscount float64                         `json:"confidence_discount"`
	AdjustedImpact     float64                         `json:"adjusted_impact"`
	Weight             float64                         `json:"weight"`
	WeightedImpact     float64                         `json:"weighted_impact"`
	Category           string                          `json:"category"`
	Skipped            bool                            `json:"skipped"`
	SkipReason         string                          `json:"skip_reason,omitempty"`
}

// ScenarioResult holds one scenario's full evaluation: per-KPI audit
// entries, aggregates, and the multi-year projection. ROI fields are
// nil when engagement cost is absent or non-positive; nil means "not
// computable", which is distinct from a real 0%.
type ScenarioResult struct {
	Scenario                    model.Scenario     `json:"scenario"`
	KPIResults                  []KPIAuditEntry    `json:"kpi_results"`
	TotalAnnualImpact           float64            `json:"total_annual_impact"`
	TotalAnnualImpactUnweighted float64            `json:"total_annual_impact_unweighted"`
	ImpactByCategory            map[string]float64 `json:"impact_by_category"`
	YearProjections             []YearProjection   `json:"year_projections"`
	Cumulative3YrImpact         float64            `json:"cumulative_3yr_impact"`
	ROIPercentage               *float64           `json:"roi_percentage,omitempty"`
	ROIMultiple                 *float64           `json:"roi_multiple,omitempty"`
	EngagementCost              *float64           `json:"engagement_cost,omitempty"`
	SkippedKPIs                 []string           `json:"skipped_kpis"`
}

// CalculationResult is the full output tree of one calculation run:
// one ScenarioResult per scenario plus run-level data quality metadata.
// GeneratedAt and ID are metadata only and never affect computed values.
type CalculationResult struct {
	ID                 string                            `json:"id"`
	CompanyName        string                            `json:"company_name"`
	Industry           string                            `json:"industry"`
	MethodologyID      string                            `json:"methodology_id"`
	MethodologyVersion string                            `json:"methodology_version"`
	Scenarios          map[model.Scenario]ScenarioResult `json:"scenarios"`
	DataCompleteness   float64                           `json:"data_completeness"`
	MissingInputs      []string                          `json:"missing_inputs"`
	AvailableInputs    []string                          `json:"available_inputs"`
	Warnings           []string                          `json:"warnings"`
	GeneratedAt        time.Time                         `json:"generated_at"`
}
