package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gospec/internal/logging"
	"github.com/yaklabco/gospec/pkg/build"
	"github.com/yaklabco/gospec/pkg/config"
)

// buildFlags holds the flags shared by build and watch.
type buildFlags struct {
	specification string
	output        string
	format        string
	jobs          int
	debounce      time.Duration
}

func (f *buildFlags) overrides() *config.Config {
	return &config.Config{
		Specification: f.specification,
		Format:        config.OutputFormat(f.format),
		Output:        f.output,
		Jobs:          f.jobs,
		Debounce:      f.debounce,
	}
}

func addBuildFlags(cmd *cobra.Command, flags *buildFlags) {
	cmd.Flags().StringVarP(&flags.specification, "specification-path", "s", "",
		"path to the manifest (default Specification.toml)")
	cmd.Flags().StringVarP(&flags.output, "output-file", "o", "",
		"output file (default specification.md or specification.html)")
	cmd.Flags().StringVarP(&flags.format, "output-format", "f", "",
		"output format: markdown, respec (default markdown)")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of files extracted in parallel (0 = auto)")
}

func newBuildCommand() *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the specification",
		Long: `Read the manifest, extract the specification comments of every listed
file, render the template and write the document.

Examples:
  gospec build                          Build specification.md from Specification.toml
  gospec build -f respec                Build a ReSpec page, specification.html
  gospec build -s spec/Specification.toml -o docs/spec.md`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, flags)
		},
	}

	addBuildFlags(cmd, flags)

	return cmd
}

func runBuild(cmd *cobra.Command, flags *buildFlags) error {
	loaded, err := resolveConfig(cmd, flags.overrides())
	if err != nil {
		return err
	}
	cfg := loaded.Config

	ctx := logging.WithLogger(commandContext(cmd), logging.Default())
	styles := stderrStyles(cmd, cfg)

	result, err := build.New().Build(ctx, build.OptionsFromConfig(cfg))
	if err != nil {
		err = reportError(cmd, styles, err)
		fmt.Fprint(cmd.ErrOrStderr(), styles.FormatBuildFailure(cfg.Specification))
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), stdoutStyles(cmd, cfg).FormatBuildSummary(result))
	return nil
}
