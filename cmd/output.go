package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/roi-cli/internal/calc"
	"github.com/sells-group/roi-cli/internal/merge"
	"github.com/sells-group/roi-cli/internal/methodology"
	"github.com/sells-group/roi-cli/internal/model"
)

var printer = message.NewPrinter(language.English)

// money renders a dollar figure with thousands separators.
func money(v float64) string {
	return printer.Sprintf("$%.0f", v)
}

func printResultTable(w io.Writer, result *calc.CalculationResult) {
	fmt.Fprintf(w, "%s (%s) — methodology %s v%s\n",
		result.CompanyName, result.Industry, result.MethodologyID, result.MethodologyVersion)
	fmt.Fprintf(w, "Data completeness: %.0f%%\n", result.DataCompleteness*100)
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
	fmt.Fprintln(w)

	for _, scenario := range model.Scenarios {
		sr, ok := result.Scenarios[scenario]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "== %s ==\n", scenario)

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "KPI\tRAW\tDISCOUNT\tADJUSTED\tWEIGHTED\tSTATUS")
		for _, entry := range sr.KPIResults {
			if entry.Skipped {
				fmt.Fprintf(tw, "%s\t-\t-\t-\t-\tskipped: %s\n", entry.KPIID, entry.SkipReason)
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%s\tok\n",
				entry.KPIID, money(entry.RawImpact), entry.ConfidenceDiscount,
				money(entry.AdjustedImpact), money(entry.WeightedImpact))
		}
		tw.Flush()

		fmt.Fprintf(w, "Total annual impact: %s unweighted, %s weighted\n",
			money(sr.TotalAnnualImpactUnweighted), money(sr.TotalAnnualImpact))
		for _, yp := range sr.YearProjections {
			fmt.Fprintf(w, "  Year %d (%.0f%% realized): %s, cumulative %s\n",
				yp.Year, yp.RealizationPercentage*100, money(yp.ProjectedImpact), money(yp.CumulativeImpact))
		}
		if sr.ROIPercentage != nil && sr.ROIMultiple != nil {
			fmt.Fprintf(w, "ROI: %.1f%% (%.2fx on %s engagement cost)\n",
				*sr.ROIPercentage, *sr.ROIMultiple, money(*sr.EngagementCost))
		} else {
			fmt.Fprintln(w, "ROI: not computable (no engagement cost)")
		}
		fmt.Fprintln(w)
	}
}

func printConflictsTable(w io.Writer, conflicts []merge.ConflictEntry) {
	if len(conflicts) == 0 {
		fmt.Fprintln(w, "No conflicts.")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tKEPT\tOVER\tRESOLUTION\tREVIEW")
	for _, c := range conflicts {
		review := ""
		if c.FlaggedForReview {
			review = "FLAGGED"
		}
		fmt.Fprintf(tw, "%s\t%v\t%v\t%s\t%s\n",
			c.FieldName, c.ChosenValue, c.SecondaryValue, c.Resolution, review)
	}
	tw.Flush()
}

func printMergedTable(w io.Writer, rec *model.CompanyRecord) {
	fmt.Fprintf(w, "%s (%s)\n", rec.CompanyName, rec.Industry)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE\tTIER\tSOURCE")
	for _, field := range model.DataFields {
		dp := rec.Get(field)
		if dp == nil {
			continue
		}
		fmt.Fprintf(tw, "%s\t%v\t%s\t%s\n",
			field, dp.Value, dp.ConfidenceTier, dp.Source.SourceType)
	}
	tw.Flush()
	fmt.Fprintf(w, "Completeness: %.0f%%\n\n", rec.CompletenessScore()*100)
}

func printMethodologyTable(w io.Writer, m *methodology.Config) {
	fmt.Fprintf(w, "%s v%s — %s\n", m.ID, m.Version, m.Name)
	fmt.Fprintf(w, "Realization curve: %v\n", m.RealizationCurve)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KPI\tWEIGHT\tCONSERVATIVE\tMODERATE\tAGGRESSIVE\tENABLED")
	for _, k := range m.KPIs {
		fmt.Fprintf(tw, "%s\t%.2f\t%v\t%v\t%v\t%t\n",
			k.ID, k.Weight,
			k.BenchmarkRanges.Conservative, k.BenchmarkRanges.Moderate, k.BenchmarkRanges.Aggressive,
			k.IsEnabled())
	}
	tw.Flush()
}
