package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gospec/internal/logging"
	"github.com/yaklabco/gospec/pkg/extract"
)

func newExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <file>...",
		Short: "Print the specification text of single files",
		Long: `Run the comment extractor on each file and print the result, without a
manifest or template. Useful to check how a source file will read once
included in a specification.

Examples:
  gospec extract src/overview.rs
  gospec extract lib/a.py lib/b.ml`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: runExtract,
	}

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	loaded, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}
	styles := stderrStyles(cmd, loaded.Config)
	ctx := logging.WithLogger(commandContext(cmd), logging.Default())

	for _, path := range args {
		text, err := extract.File(ctx, path)
		if err != nil {
			return reportError(cmd, styles, err)
		}
		if _, err := fmt.Fprint(cmd.OutOrStdout(), text); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	return nil
}
