package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	cfgpkg "churnprep/internal/config"
	"churnprep/dataset"
	"churnprep/report"
)

var flagPlotFile string

var profileCmd = &cobra.Command{
	Use:   "profile <input.csv>",
	Short: "Summarize a raw churn dataset",
	Long: `Profile reads a raw dataset and prints its row count, label balance and
the cardinality of each categorical column. With --plot it also renders
the class balance as a PNG bar chart.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := cfgpkg.LoadSchema(cfg.SchemaFile)
		if err != nil {
			return err
		}

		table, err := dataset.LoadFile(args[0], schema)
		if err != nil {
			return err
		}
		p, err := report.Build(table, schema)
		if err != nil {
			return err
		}

		fmt.Printf("rows: %d\n", p.Rows)
		fmt.Println("label balance:")
		labels := make([]string, 0, len(p.LabelCounts))
		for v := range p.LabelCounts {
			labels = append(labels, v)
		}
		sort.Strings(labels)
		for _, v := range labels {
			fmt.Printf("  %s: %d\n", v, p.LabelCounts[v])
		}
		fmt.Println("categorical cardinality:")
		cols := make([]string, 0, len(p.Cardinality))
		for c := range p.Cardinality {
			cols = append(cols, c)
		}
		sort.Strings(cols)
		for _, c := range cols {
			fmt.Printf("  %s: %d\n", c, p.Cardinality[c])
		}

		if flagPlotFile != "" {
			f, err := os.Create(flagPlotFile)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := p.RenderClassBalance(f); err != nil {
				return err
			}
			fmt.Printf("wrote class balance plot to %s\n", flagPlotFile)
		}
		return nil
	},
}

func init() {
	profileCmd.Flags().StringVar(&flagPlotFile, "plot", "", "write a class balance PNG to this path")
	rootCmd.AddCommand(profileCmd)
}
