package model

import (
	"encoding/json"
	"strconv"
	"time"
)

// ConfidenceTier ranks how trustworthy a data point's source is.
// The rank ordering below is the single source of truth for merge
// tie-breaks and confidence discount magnitude.
type ConfidenceTier string

const (
	TierEstimated         ConfidenceTier = "estimated"
	TierCrossIndustry     ConfidenceTier = "cross_industry"
	TierIndustryBenchmark ConfidenceTier = "industry_benchmark"
	TierCompanyReported   ConfidenceTier = "company_reported"
)

// tierRanks orders tiers lowest to highest trust.
var tierRanks = map[ConfidenceTier]int{
	TierEstimated:         0,
	TierCrossIndustry:     1,
	TierIndustryBenchmark: 2,
	TierCompanyReported:   3,
}

// Rank returns the tier's position in the trust ordering (0 = lowest).
// Unknown tiers rank below estimated.
func (t ConfidenceTier) Rank() int {
	if r, ok := tierRanks[t]; ok {
		return r
	}
	return -1
}

// SourceType identifies where a data point came from.
type SourceType string

const (
	SourceSECFiling        SourceType = "sec_filing"
	SourceFinancialMetrics SourceType = "financial_metrics"
	SourceEarnings         SourceType = "earnings"
	SourceIncomeStatement  SourceType = "income_statement"
	SourceBalanceSheet     SourceType = "balance_sheet"
	SourceCrunchbase       SourceType = "crunchbase_scrape"
	SourcePitchbook        SourceType = "pitchbook_scrape"
	SourceWebBenchmark     SourceType = "websearch_benchmark"
	SourceIndustryReport   SourceType = "websearch_industry_report"
	SourceManualOverride   SourceType = "manual_override"
)

// Freshness is a coarse staleness indicator for a data point.
type Freshness string

const (
	FreshnessGreen  Freshness = "green"
	FreshnessYellow Freshness = "yellow"
	FreshnessRed    Freshness = "red"
)

// SourceAttribution tracks the provenance of a data point. It never
// carries calculation logic.
type SourceAttribution struct {
	SourceType         SourceType `json:"source_type"`
	SourceURL          string     `json:"source_url,omitempty"`
	SourceLabel        string     `json:"source_label,omitempty"`
	RetrievalTimestamp time.Time  `json:"retrieval_timestamp"`
	DataDate           string     `json:"data_date,omitempty"`
	Query              string     `json:"query,omitempty"`
	RawValue           any        `json:"raw_value,omitempty"`
}

// DataPoint is a single observed value with full audit metadata.
// A DataPoint is immutable once created: merge decisions select between
// points, they never rewrite one in place.
type DataPoint struct {
	Value           any               `json:"value"`
	ConfidenceTier  ConfidenceTier    `json:"confidence_tier"`
	ConfidenceScore float64           `json:"confidence_score"`
	Source          SourceAttribution `json:"source"`
	Freshness       Freshness         `json:"freshness"`
	Notes           string            `json:"notes,omitempty"`
	IsOverride      bool              `json:"is_override,omitempty"`
	OverrideReason  string            `json:"override_reason,omitempty"`
}

// NumericValue returns the point's value as a float64. The second return
// is false for string and other non-numeric values.
func (dp *DataPoint) NumericValue() (float64, bool) {
	switch v := dp.Value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
