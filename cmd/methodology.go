package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/roi-cli/internal/kpi"
	"github.com/sells-group/roi-cli/internal/methodology"
)

var methodologyCmd = &cobra.Command{
	Use:   "methodology",
	Short: "Inspect and validate methodology configs",
}

var methodologyValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a methodology config against the KPI library",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.Methodology.Path
		if len(args) > 0 {
			path = args[0]
		}
		m, err := methodology.Load(path, kpi.DefaultRegistry())
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "OK: %s (%s v%s), %d KPIs enabled, total weight %.3f, %d-year curve\n",
			path, m.ID, m.Version, len(m.EnabledKPIs()), m.TotalWeight(), len(m.RealizationCurve))
		return nil
	},
}

var methodologyShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Show a methodology's KPIs, weights, and benchmark ranges",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.Methodology.Path
		if len(args) > 0 {
			path = args[0]
		}
		m, err := methodology.Load(path, kpi.DefaultRegistry())
		if err != nil {
			return err
		}
		printMethodologyTable(os.Stdout, m)
		return nil
	},
}

func init() {
	methodologyCmd.AddCommand(methodologyValidateCmd)
	methodologyCmd.AddCommand(methodologyShowCmd)
	rootCmd.AddCommand(methodologyCmd)
}
