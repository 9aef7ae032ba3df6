package cmd

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	cfgpkg "churnprep/internal/config"
	"churnprep/prepare"
)

var (
	flagOutDir         string
	flagTrainFile      string
	flagValidationFile string
	flagTestFile       string
)

var prepareCmd = &cobra.Command{
	Use:   "prepare <input.csv>",
	Short: "Clean, encode and split a raw churn dataset",
	Long: `Prepare reads a raw delimited churn dataset, drops the identifier and
redundant derived columns, one-hot encodes the categorical features,
collapses the churn indicator into a binary label placed first, shuffles
with the configured seed and writes train (70%), validation (20%) and
test (10%) files. All three files are written, or none are.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := cfgpkg.LoadSchema(cfg.SchemaFile)
		if err != nil {
			return err
		}

		outDir := cfg.OutDir
		if cmd.Flags().Changed("out-dir") {
			outDir = flagOutDir
		}

		pipeline := prepare.New(schema, cfg.Seed, slog.Default())
		_, err = pipeline.RunFile(args[0], prepare.OutputPaths{
			Train:      filepath.Join(outDir, flagTrainFile),
			Validation: filepath.Join(outDir, flagValidationFile),
			Test:       filepath.Join(outDir, flagTestFile),
		})
		return err
	},
}

func init() {
	prepareCmd.Flags().StringVar(&flagOutDir, "out-dir", ".", "directory for the split files (overrides config)")
	prepareCmd.Flags().StringVar(&flagTrainFile, "train-file", "train.csv", "train split file name")
	prepareCmd.Flags().StringVar(&flagValidationFile, "validation-file", "validation.csv", "validation split file name")
	prepareCmd.Flags().StringVar(&flagTestFile, "test-file", "test.csv", "test split file name")
	rootCmd.AddCommand(prepareCmd)
}
