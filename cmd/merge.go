package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/roi-cli/internal/merge"
	"github.com/sells-group/roi-cli/internal/model"
	"github.com/sells-group/roi-cli/internal/record"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <primary.json> <secondary.json> [more.json...]",
	Short: "Merge company records from multiple sources",
	Long: `Merge a primary company record with one or more secondary records.

Per field, the higher confidence tier wins; ties keep the value already
merged. Numeric disagreements above 10% are flagged for review. The
merged record and the full conflict trail are printed.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMerge,
}

func init() {
	f := mergeCmd.Flags()
	f.String("output", "", "output format: table or json (overrides config)")

	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = cfg.Output.Format
	}

	records, err := record.LoadAll(args)
	if err != nil {
		return err
	}

	merged, conflicts := merge.Merge(records[0], records[1:]...)

	switch format {
	case "json":
		out := struct {
			Merged    *model.CompanyRecord  `json:"merged"`
			Conflicts []merge.ConflictEntry `json:"conflicts"`
		}{merged, conflicts}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return eris.Wrap(err, "merge: encode result")
		}
	case "table":
		printMergedTable(os.Stdout, merged)
		printConflictsTable(os.Stdout, conflicts)
	default:
		return eris.Errorf("merge: unknown output format %q", format)
	}

	return nil
}
