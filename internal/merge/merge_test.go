package merge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/roi-cli/internal/model"
)

func dp(value any, tier model.ConfidenceTier, src model.SourceType) *model.DataPoint {
	return &model.DataPoint{
		Value:           value,
		ConfidenceTier:  tier,
		ConfidenceScore: 0.9,
		Source: model.SourceAttribution{
			SourceType:         src,
			RetrievalTimestamp: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		Freshness: model.FreshnessGreen,
	}
}

func record(fields map[string]*model.DataPoint) *model.CompanyRecord {
	rec := &model.CompanyRecord{CompanyName: "Acme", Industry: "ecommerce"}
	for f, v := range fields {
		rec.Set(f, v)
	}
	return rec
}

func TestMerge_PrimaryOnly(t *testing.T) {
	primary := record(map[string]*model.DataPoint{
		"annual_revenue": dp(100_000_000.0, model.TierCompanyReported, model.SourceSECFiling),
	})

	merged, conflicts := Merge(primary)

	assert.Empty(t, conflicts)
	assert.Equal(t, "Acme", merged.CompanyName)
	assert.Equal(t, "ecommerce", merged.Industry)
	require.NotNil(t, merged.AnnualRevenue)
	assert.Equal(t, 100_000_000.0, merged.AnnualRevenue.Value)
}

func TestMerge_GapFillNoConflict(t *testing.T) {
	primary := record(map[string]*model.DataPoint{
		"annual_revenue": dp(100_000_000.0, model.TierCompanyReported, model.SourceSECFiling),
	})
	secondary := record(map[string]*model.DataPoint{
		"customer_count": dp(50_000.0, model.TierEstimated, model.SourceWebBenchmark),
	})

	merged, conflicts := Merge(primary, secondary)

	assert.Empty(t, conflicts)
	require.NotNil(t, merged.CustomerCount)
	assert.Equal(t, 50_000.0, merged.CustomerCount.Value)
}

func TestMerge_TwentyPercentDiscrepancyFlagged(t *testing.T) {
	// 100M vs 80M is exactly a 20% relative discrepancy: above the 10%
	// threshold, so the conflict is flagged regardless of the winner.
	primary := record(map[string]*model.DataPoint{
		"annual_revenue": dp(100_000_000.0, model.TierCompanyReported, model.SourceSECFiling),
	})
	secondary := record(map[string]*model.DataPoint{
		"annual_revenue": dp(80_000_000.0, model.TierIndustryBenchmark, model.SourceWebBenchmark),
	})

	merged, conflicts := Merge(primary, secondary)

	require.NotNil(t, merged.AnnualRevenue)
	assert.Equal(t, 100_000_000.0, merged.AnnualRevenue.Value)
	require.Len(t, conflicts, 1)
	c := conflicts[0]
	assert.Equal(t, "annual_revenue", c.FieldName)
	assert.True(t, c.FlaggedForReview)
	assert.Equal(t, 100_000_000.0, c.ChosenValue)
	assert.Equal(t, model.TierCompanyReported, c.PrimaryTier)
	assert.Equal(t, model.TierIndustryBenchmark, c.SecondaryTier)
	assert.Contains(t, c.Resolution, "company_reported")
}

func TestMerge_FivePercentDiscrepancyNotFlagged(t *testing.T) {
	primary := record(map[string]*model.DataPoint{
		"annual_revenue": dp(100_000_000.0, model.TierCompanyReported, model.SourceSECFiling),
	})
	secondary := record(map[string]*model.DataPoint{
		"annual_revenue": dp(95_000_000.0, model.TierIndustryBenchmark, model.SourceWebBenchmark),
	})

	_, conflicts := Merge(primary, secondary)

	require.Len(t, conflicts, 1)
	assert.False(t, conflicts[0].FlaggedForReview)
}

func TestMerge_AgreementStillRecordsConflict(t *testing.T) {
	// A conflict entry is recorded whenever both sides had a value,
	// even when the values agree exactly.
	primary := record(map[string]*model.DataPoint{
		"customer_count": dp(50_000.0, model.TierCompanyReported, model.SourceSECFiling),
	})
	secondary := record(map[string]*model.DataPoint{
		"customer_count": dp(50_000.0, model.TierEstimated, model.SourceWebBenchmark),
	})

	_, conflicts := Merge(primary, secondary)

	require.Len(t, conflicts, 1)
	assert.False(t, conflicts[0].FlaggedForReview)
}

func TestMerge_HigherTierSecondaryWins(t *testing.T) {
	primary := record(map[string]*model.DataPoint{
		"annual_revenue": dp(80_000_000.0, model.TierEstimated, model.SourceWebBenchmark),
	})
	secondary := record(map[string]*model.DataPoint{
		"annual_revenue": dp(100_000_000.0, model.TierCompanyReported, model.SourceSECFiling),
	})

	merged, conflicts := Merge(primary, secondary)

	require.NotNil(t, merged.AnnualRevenue)
	assert.Equal(t, 100_000_000.0, merged.AnnualRevenue.Value)
	require.Len(t, conflicts, 1)
	assert.True(t, conflicts[0].FlaggedForReview)
}

func TestMerge_TieKeepsFirstWriter(t *testing.T) {
	// Same tier on both sides: the currently-merged value wins. A later
	// secondary can only overturn an earlier one via tier rank, never
	// via recency.
	primary := record(map[string]*model.DataPoint{
		"annual_revenue": dp(100_000_000.0, model.TierIndustryBenchmark, model.SourceWebBenchmark),
	})
	secondary := record(map[string]*model.DataPoint{
		"annual_revenue": dp(95_000_000.0, model.TierIndustryBenchmark, model.SourceIndustryReport),
	})

	merged, _ := Merge(primary, secondary)

	require.NotNil(t, merged.AnnualRevenue)
	assert.Equal(t, 100_000_000.0, merged.AnnualRevenue.Value)
}

func TestMerge_TieOrderSensitivity(t *testing.T) {
	a := record(map[string]*model.DataPoint{
		"annual_revenue": dp(100.0, model.TierIndustryBenchmark, model.SourceWebBenchmark),
	})
	b := record(map[string]*model.DataPoint{
		"annual_revenue": dp(200.0, model.TierIndustryBenchmark, model.SourceIndustryReport),
	})

	mergedAB, _ := Merge(a, b)
	mergedBA, _ := Merge(b, a)

	assert.Equal(t, 100.0, mergedAB.AnnualRevenue.Value)
	assert.Equal(t, 200.0, mergedBA.AnnualRevenue.Value)
}

func TestMerge_SequentialFoldEqualsPairwise(t *testing.T) {
	// merge(merge(a,b), c) == merge(a,b,c) when records touch
	// independent fields.
	a := record(map[string]*model.DataPoint{
		"annual_revenue": dp(100_000_000.0, model.TierCompanyReported, model.SourceSECFiling),
	})
	b := record(map[string]*model.DataPoint{
		"customer_count": dp(50_000.0, model.TierIndustryBenchmark, model.SourceWebBenchmark),
	})
	c := record(map[string]*model.DataPoint{
		"current_nps": dp(42.0, model.TierEstimated, model.SourceIndustryReport),
	})

	ab, _ := Merge(a, b)
	nested, _ := Merge(ab, c)
	flat, _ := Merge(a, b, c)

	for _, field := range model.DataFields {
		assert.Equal(t, flat.Get(field), nested.Get(field), field)
	}
}

func TestMerge_NonNumericSkipsDiscrepancyCheck(t *testing.T) {
	primary := record(map[string]*model.DataPoint{
		"estimated_valuation": dp("undisclosed", model.TierCompanyReported, model.SourceCrunchbase),
	})
	secondary := record(map[string]*model.DataPoint{
		"estimated_valuation": dp(2_000_000_000.0, model.TierEstimated, model.SourceWebBenchmark),
	})

	merged, conflicts := Merge(primary, secondary)

	require.Len(t, conflicts, 1)
	assert.False(t, conflicts[0].FlaggedForReview)
	assert.Equal(t, "undisclosed", merged.EstimatedValuation.Value)
}

func TestMerge_BothZeroNotFlagged(t *testing.T) {
	primary := record(map[string]*model.DataPoint{
		"net_income": dp(0.0, model.TierCompanyReported, model.SourceSECFiling),
	})
	secondary := record(map[string]*model.DataPoint{
		"net_income": dp(0.0, model.TierIndustryBenchmark, model.SourceWebBenchmark),
	})

	_, conflicts := Merge(primary, secondary)

	require.Len(t, conflicts, 1)
	assert.False(t, conflicts[0].FlaggedForReview)
}

func TestMerge_AbsentEverywhereStaysAbsent(t *testing.T) {
	merged, _ := Merge(record(nil), record(nil))
	assert.Nil(t, merged.OnlineRevenue)
	assert.Empty(t, merged.AvailableFields())
}

func TestMerge_OneConflictPerFieldPerSecondary(t *testing.T) {
	primary := record(map[string]*model.DataPoint{
		"annual_revenue": dp(100.0, model.TierCompanyReported, model.SourceSECFiling),
		"customer_count": dp(10.0, model.TierCompanyReported, model.SourceSECFiling),
	})
	s1 := record(map[string]*model.DataPoint{
		"annual_revenue": dp(90.0, model.TierIndustryBenchmark, model.SourceWebBenchmark),
	})
	s2 := record(map[string]*model.DataPoint{
		"annual_revenue": dp(95.0, model.TierEstimated, model.SourceIndustryReport),
		"customer_count": dp(12.0, model.TierEstimated, model.SourceIndustryReport),
	})

	_, conflicts := Merge(primary, s1, s2)

	assert.Len(t, conflicts, 3)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	primary := record(map[string]*model.DataPoint{
		"annual_revenue": dp(100.0, model.TierEstimated, model.SourceWebBenchmark),
	})
	secondary := record(map[string]*model.DataPoint{
		"annual_revenue": dp(200.0, model.TierCompanyReported, model.SourceSECFiling),
	})

	Merge(primary, secondary)

	assert.Equal(t, 100.0, primary.AnnualRevenue.Value)
	assert.Equal(t, 200.0, secondary.AnnualRevenue.Value)
}
