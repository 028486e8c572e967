package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ppiankov/rulegen/internal/pipeline"
	"github.com/ppiankov/rulegen/internal/watch"
	"github.com/spf13/cobra"
)

var (
	noCache  bool
	watchFor bool
	debounce time.Duration
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Rebuild rules.json and the n8n snippet from the workbook",
	Long: `Generate reads every row of the workbook sheet, normalizes it into a
rule, merges rules by code and writes both artifacts.

- Codes are upper-cased and trimmed; rows without a code are skipped
- Codes containing spaces are also registered without them
- Later rows overwrite earlier rows with the same code
- Rows with neither disposition nor rating default to an archived,
  dissatisfied rule

Example:
  rulegen generate
  rulegen generate --input "Copy of LSA_Updated_Signal.xlsx" --out-dir rules
  rulegen generate --watch`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	// Source flags
	generateCmd.Flags().StringP("input", "i", "", "workbook path")
	generateCmd.Flags().String("sheet", "", "worksheet name")

	// Output flags
	generateCmd.Flags().StringP("out-dir", "o", "", "output directory")
	generateCmd.Flags().String("json-file", "", "JSON artifact file name")
	generateCmd.Flags().String("snippet-file", "", "JS snippet file name")
	generateCmd.Flags().String("const-name", "", "constant declared in the JS snippet")

	generateCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the parsed-row cache")
	generateCmd.Flags().BoolVarP(&watchFor, "watch", "w", false, "keep running and rebuild when the workbook changes")
	generateCmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "quiet period before a watch rebuild")

	bindFlag("source.path", generateCmd.Flags().Lookup("input"))
	bindFlag("source.sheet", generateCmd.Flags().Lookup("sheet"))
	bindFlag("output.dir", generateCmd.Flags().Lookup("out-dir"))
	bindFlag("output.json_file", generateCmd.Flags().Lookup("json-file"))
	bindFlag("output.snippet_file", generateCmd.Flags().Lookup("snippet-file"))
	bindFlag("output.const_name", generateCmd.Flags().Lookup("const-name"))
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noCache {
		cfg.Cache.Enabled = false
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := pipeline.NewPipeline(cfg, cmd.OutOrStdout())

	if _, err := p.Run(ctx); err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	if !watchFor {
		return nil
	}

	return watch.New(cfg.Source.Path, debounce).Run(ctx, func(ctx context.Context) error {
		_, err := p.Run(ctx)
		return err
	})
}
