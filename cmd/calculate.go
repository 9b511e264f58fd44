package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/roi-cli/internal/calc"
	"github.com/sells-group/roi-cli/internal/kpi"
	"github.com/sells-group/roi-cli/internal/merge"
	"github.com/sells-group/roi-cli/internal/methodology"
	"github.com/sells-group/roi-cli/internal/record"
)

var calculateCmd = &cobra.Command{
	Use:   "calculate <record.json> [secondary.json...]",
	Short: "Run the ROI calculation for a company",
	Long: `Run the full three-scenario ROI calculation for a company.

The first file is the primary record. Any additional files are secondary
records merged in before calculation; conflicts are resolved by
confidence tier and reported alongside the result.

Examples:
  # Calculate from a single reconciled record
  roi calculate acme.json

  # Merge filing data with scraped benchmarks first, then calculate
  roi calculate acme_filings.json acme_benchmarks.json --output json

  # Use a specific methodology file
  roi calculate acme.json --methodology configs/experience_transformation_v1.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCalculate,
}

func init() {
	f := calculateCmd.Flags()
	f.String("methodology", "", "methodology YAML path (overrides config)")
	f.String("output", "", "output format: table or json (overrides config)")

	rootCmd.AddCommand(calculateCmd)
}

func runCalculate(cmd *cobra.Command, args []string) error {
	methodologyPath, _ := cmd.Flags().GetString("methodology")
	if methodologyPath == "" {
		methodologyPath = cfg.Methodology.Path
	}
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = cfg.Output.Format
	}

	registry := kpi.DefaultRegistry()
	m, err := methodology.Load(methodologyPath, registry)
	if err != nil {
		return err
	}

	records, err := record.LoadAll(args)
	if err != nil {
		return err
	}

	rec := records[0]
	var conflicts []merge.ConflictEntry
	if len(records) > 1 {
		rec, conflicts = merge.Merge(records[0], records[1:]...)
		zap.L().Info("calculate: merged records",
			zap.String("company", rec.CompanyName),
			zap.Int("secondaries", len(records)-1),
			zap.Int("conflicts", len(conflicts)),
		)
	}

	engine := calc.NewEngine(registry)
	result := engine.Calculate(rec, m)

	switch format {
	case "json":
		out := struct {
			Result    *calc.CalculationResult `json:"result"`
			Conflicts []merge.ConflictEntry   `json:"conflicts,omitempty"`
		}{result, conflicts}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return eris.Wrap(err, "calculate: encode result")
		}
	case "table":
		printResultTable(os.Stdout, result)
		if len(conflicts) > 0 {
			fmt.Fprintln(os.Stdout)
			printConflictsTable(os.Stdout, conflicts)
		}
	default:
		return eris.Errorf("calculate: unknown output format %q", format)
	}

	return nil
}
