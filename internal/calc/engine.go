// Package calc evaluates a methodology's weighted KPI formulas against a
// reconciled company record, producing three-scenario multi-year ROI
// projections with a full audit trail.
package calc

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/roi-cli/internal/kpi"
	"github.com/sells-group/roi-cli/internal/methodology"
	"github.com/sells-group/roi-cli/internal/model"
)

// Engine runs ROI calculations. It is stateless: every call is
// independently reentrant and safe to invoke in parallel for different
// companies.
type Engine struct {
	registry *kpi.Registry
}

// NewEngine creates an engine bound to a KPI formula registry.
func NewEngine(registry *kpi.Registry) *Engine {
	return &Engine{registry: registry}
}

// Calculate runs the full ROI calculation across all three scenarios.
// The methodology must already have passed validation. Calculate never
// fails for data-quality reasons: missing inputs, unregistered KPIs and
// formula domain errors all surface as skipped audit entries and
// warnings, never as an error.
func (e *Engine) Calculate(record *model.CompanyRecord, m *methodology.Config) *CalculationResult {
	required := m.RequiredInputs()
	available := make(map[string]struct{})
	for _, f := range record.AvailableFields() {
		available[f] = struct{}{}
	}

	var missing, present []string
	for f := range required {
		if _, ok := available[f]; ok {
			present = append(present, f)
		} else {
			missing = append(missing, f)
		}
	}
	sort.Strings(missing)
	sort.Strings(present)

	completeness := 1.0
	if len(required) > 0 {
		completeness = float64(len(present)) / float64(len(required))
	}

	var warnings []string
	if len(missing) > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"Missing inputs: %v. KPIs requiring these will be skipped.", missing,
		))
	}

	scenarios := make(map[model.Scenario]ScenarioResult, len(model.Scenarios))
	for _, s := range model.Scenarios {
		scenarios[s] = e.runScenario(record, m, s)
	}

	zap.L().Debug("calc: run complete",
		zap.String("company", record.CompanyName),
		zap.String("methodology", m.ID),
		zap.Float64("completeness", completeness),
	)

	return &CalculationResult{
		ID:                 uuid.NewString(),
		CompanyName:        record.CompanyName,
		Industry:           record.Industry,
		MethodologyID:      m.ID,
		MethodologyVersion: m.Version,
		Scenarios:          scenarios,
		DataCompleteness:   completeness,
		MissingInputs:      missing,
		AvailableInputs:    present,
		Warnings:           warnings,
		GeneratedAt:        time.Now().UTC(),
	}
}

// runScenario evaluates every enabled KPI for one scenario and
// aggregates the results.
func (e *Engine) runScenario(record *model.CompanyRecord, m *methodology.Config, scenario model.Scenario) ScenarioResult {
	var entries []KPIAuditEntry
	var skipped []string

	for _, kc := range m.EnabledKPIs() {
		entry := e.evaluateKPI(record, kc, m, scenario)
		entries = append(entries, entry)
		if entry.Skipped {
			skipped = append(skipped, entry.KPIID)
		}
	}

	totalUnweighted := 0.0
	totalWeighted := 0.0
	byCategory := make(map[string]float64)
	for _, entry := range entries {
		if entry.Skipped {
			continue
		}
		totalUnweighted += entry.AdjustedImpact
		totalWeighted += entry.WeightedImpact
		byCategory[entry.Category] += entry.AdjustedImpact
	}

	projections := projectMultiYear(totalUnweighted, m.RealizationCurve)
	cumulative := 0.0
	if len(projections) > 0 {
		cumulative = projections[len(projections)-1].CumulativeImpact
	}

	var roiPct, roiMult, engCost *float64
	if dp := record.Get("engagement_cost"); dp != nil {
		if cost, ok := dp.NumericValue(); ok && cost > 0 {
			pct := (totalUnweighted - cost) / cost * 100
			mult := totalUnweighted / cost
			roiPct, roiMult, engCost = &pct, &mult, &cost
		}
	}

	return ScenarioResult{
		Scenario:                    scenario,
		KPIResults:                  entries,
		TotalAnnualImpact:           totalWeighted,
		TotalAnnualImpactUnweighted: totalUnweighted,
		ImpactByCategory:            byCategory,
		YearProjections:             projections,
		Cumulative3YrImpact:         cumulative,
		ROIPercentage:               roiPct,
		ROIMultiple:                 roiMult,
		EngagementCost:              engCost,
		SkippedKPIs:                 skipped,
	}
}

// evaluateKPI computes a single KPI's audit entry for one scenario.
// Every failure mode becomes a skipped entry; nothing escapes.
func (e *Engine) evaluateKPI(record *model.CompanyRecord, kc methodology.KPIConfig, m *methodology.Config, scenario model.Scenario) KPIAuditEntry {
	def, ok := e.registry.Get(kc.ID)
	if !ok {
		return skippedEntry(kc, fmt.Sprintf("KPI %q not found in registry", kc.ID))
	}

	inputs := make(map[string]float64, len(def.RequiredInputs))
	tiers := make(map[string]model.ConfidenceTier, len(def.RequiredInputs))
	var missing []string
	for _, field := range def.RequiredInputs {
		dp := record.Get(field)
		if dp == nil {
			missing = append(missing, field)
			continue
		}
		v, numeric := dp.NumericValue()
		if !numeric {
			return skippedEntry(kc, fmt.Sprintf("Input %q has non-numeric value %v", field, dp.Value))
		}
		inputs[field] = v
		tiers[field] = dp.ConfidenceTier
	}
	if len(missing) > 0 {
		return skippedEntry(kc, fmt.Sprintf("Missing required inputs: %v", missing))
	}

	benchmark := kc.BenchmarkRanges.ForScenario(scenario)

	rawImpact, err := def.Formula(inputs, benchmark)
	if err != nil {
		return skippedEntry(kc, fmt.Sprintf("Formula error: %s", err.Error()))
	}

	// The weakest input governs the whole KPI.
	discount := minDiscount(tiers, m.Discounts())
	adjusted := rawImpact * discount

	label := kc.Label
	if label == "" {
		label = def.Label
	}

	return KPIAuditEntry{
		KPIID:              kc.ID,
		KPILabel:           label,
		FormulaDescription: kc.Formula,
		InputsUsed:         inputs,
		InputTiers:         tiers,
		BenchmarkValue:     benchmark,
		BenchmarkSource:    kc.BenchmarkSource,
		RawImpact:          rawImpact,
		ConfidenceDiscount: discount,
		AdjustedImpact:     adjusted,
		Weight:             kc.Weight,
		WeightedImpact:     adjusted * kc.Weight,
		Category:           def.Category,
	}
}

// minDiscount returns the smallest discount multiplier across input
// tiers, or the estimated discount for the degenerate zero-input case.
func minDiscount(tiers map[string]model.ConfidenceTier, d methodology.ConfidenceDiscounts) float64 {
	if len(tiers) == 0 {
		return d.Estimated
	}
	lowest := math.Inf(1)
	for _, tier := range tiers {
		if m := d.ForTier(tier); m < lowest {
			lowest = m
		}
	}
	return lowest
}

// projectMultiYear applies the realization curve to the steady-state
// annual impact, accumulating year by year.
func projectMultiYear(totalAnnualImpact float64, curve []float64) []YearProjection {
	projections := make([]YearProjection, 0, len(curve))
	cumulative := 0.0
	for i, pct := range curve {
		yearImpact := totalAnnualImpact * pct
		cumulative += yearImpact
		projections = append(projections, YearProjection{
			Year:                  i + 1,
			RealizationPercentage: pct,
			ProjectedImpact:       yearImpact,
			CumulativeImpact:      cumulative,
		})
	}
	return projections
}

// skippedEntry builds the audit entry for a KPI that could not compute.
func skippedEntry(kc methodology.KPIConfig, reason string) KPIAuditEntry {
	label := kc.Label
	if label == "" {
		label = kc.ID
	}
	return KPIAuditEntry{
		KPIID:              kc.ID,
		KPILabel:           label,
		FormulaDescription: kc.Formula,
		InputsUsed:         map[string]float64{},
		InputTiers:         map[string]model.ConfidenceTier{},
		BenchmarkSource:    kc.BenchmarkSource,
		Weight:             kc.Weight,
		Category:           "unknown",
		Skipped:            true,
		SkipReason:         reason,
	}
}
