// Package merge reconciles partially-overlapping company records from
// multiple sources into one authoritative record, keeping a complete
// conflict audit trail.
package merge

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/sells-group/roi-cli/internal/model"
)

// discrepancyThreshold is the relative difference above which a numeric
// conflict is flagged for review.
const discrepancyThreshold = 0.10

// ConflictEntry records how two data sources disagreeing on one field
// were reconciled.
type ConflictEntry struct {
	FieldName        string               `json:"field_name"`
	PrimaryValue     any                  `json:"primary_value"`
	PrimarySource    string               `json:"primary_source"`
	PrimaryTier      model.ConfidenceTier `json:"primary_tier"`
	SecondaryValue   any                  `json:"secondary_value"`
	SecondarySource  string               `json:"secondary_source"`
	SecondaryTier    model.ConfidenceTier `json:"secondary_tier"`
	Resolution       string               `json:"resolution"`
	ChosenValue      any                  `json:"chosen_value"`
	FlaggedForReview bool                 `json:"flagged_for_review"`
}

// Merge combines a primary record and zero or more secondaries into one
// record. Per field, the higher confidence tier wins; on a tier tie the
// currently-merged value is kept (first writer wins). A conflict entry
// is recorded whenever both sides had a value, and numeric values more
// than 10% apart are flagged for review regardless of which side wins.
//
// Secondaries are folded sequentially in input order: a later secondary
// can overturn an earlier one only via tier rank, never via recency.
func Merge(primary *model.CompanyRecord, secondaries ...*model.CompanyRecord) (*model.CompanyRecord, []ConflictEntry) {
	merged := &model.CompanyRecord{
		CompanyName: primary.CompanyName,
		Industry:    primary.Industry,
	}
	var conflicts []ConflictEntry

	for _, field := range model.DataFields {
		if dp := primary.Get(field); dp != nil {
			merged.Set(field, dp)
		}
	}

	for _, secondary := range secondaries {
		for _, field := range model.DataFields {
			secDP := secondary.Get(field)
			if secDP == nil {
				continue
			}

			existing := merged.Get(field)
			if existing == nil {
				// Gap fill, no conflict.
				merged.Set(field, secDP)
				continue
			}

			winner := pickWinner(existing, secDP)
			loser := secDP
			if winner == secDP {
				loser = existing
			}

			flagged := false
			if v1, ok1 := existing.NumericValue(); ok1 {
				if v2, ok2 := secDP.NumericValue(); ok2 {
					flagged = discrepancyPct(v1, v2) > discrepancyThreshold
				}
			}

			conflicts = append(conflicts, ConflictEntry{
				FieldName:       field,
				PrimaryValue:    existing.Value,
				PrimarySource:   string(existing.Source.SourceType),
				PrimaryTier:     existing.ConfidenceTier,
				SecondaryValue:  secDP.Value,
				SecondarySource: string(secDP.Source.SourceType),
				SecondaryTier:   secDP.ConfidenceTier,
				Resolution: fmt.Sprintf(
					"Chose %s (rank %d) over %s (rank %d)",
					winner.ConfidenceTier, winner.ConfidenceTier.Rank(),
					loser.ConfidenceTier, loser.ConfidenceTier.Rank(),
				),
				ChosenValue:      winner.Value,
				FlaggedForReview: flagged,
			})
			merged.Set(field, winner)

			if flagged {
				zap.L().Debug("merge: discrepancy flagged for review",
					zap.String("company", primary.CompanyName),
					zap.String("field", field),
				)
			}
		}
	}

	return merged, conflicts
}

// pickWinner returns the DataPoint with the higher confidence tier.
// Ties keep a: the currently-merged value wins.
func pickWinner(a, b *model.DataPoint) *model.DataPoint {
	if a.ConfidenceTier.Rank() >= b.ConfidenceTier.Rank() {
		return a
	}
	return b
}

// discrepancyPct computes |a-b| / max(|a|,|b|), defined as 0 when both
// values are exactly zero.
func discrepancyPct(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	denom := math.Max(math.Abs(a), math.Abs(b))
	if denom == 0 {
		return 0
	}
	return math.Abs(a-b) / denom
}
