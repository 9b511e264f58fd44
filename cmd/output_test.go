package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/roi-cli/internal/merge"
	"github.com/sells-group/roi-cli/internal/model"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "$40,000,000", money(40_000_000))
	assert.Equal(t, "$0", money(0))
}

func TestPrintConflictsTable(t *testing.T) {
	conflicts := []merge.ConflictEntry{
		{
			FieldName:        "annual_revenue",
			PrimaryValue:     100_000_000.0,
			PrimaryTier:      model.TierCompanyReported,
			SecondaryValue:   80_000_000.0,
			SecondaryTier:    model.TierIndustryBenchmark,
			Resolution:       "Chose company_reported (rank 3) over industry_benchmark (rank 2)",
			ChosenValue:      100_000_000.0,
			FlaggedForReview: true,
		},
	}

	var sb strings.Builder
	printConflictsTable(&sb, conflicts)

	out := sb.String()
	assert.Contains(t, out, "annual_revenue")
	assert.Contains(t, out, "FLAGGED")
	assert.Contains(t, out, "company_reported")
}

func TestPrintConflictsTable_Empty(t *testing.T) {
	var sb strings.Builder
	printConflictsTable(&sb, nil)
	assert.Contains(t, sb.String(), "No conflicts")
}

func TestPrintMergedTable(t *testing.T) {
	rec := &model.CompanyRecord{CompanyName: "Acme", Industry: "retail"}
	require.True(t, rec.Set("annual_revenue", &model.DataPoint{
		Value:          100_000_000.0,
		ConfidenceTier: model.TierCompanyReported,
		Source:         model.SourceAttribution{SourceType: model.SourceSECFiling},
	}))

	var sb strings.Builder
	printMergedTable(&sb, rec)

	out := sb.String()
	assert.Contains(t, out, "Acme (retail)")
	assert.Contains(t, out, "annual_revenue")
	assert.Contains(t, out, "sec_filing")
}
