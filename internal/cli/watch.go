package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gospec/internal/logging"
	"github.com/yaklabco/gospec/pkg/build"
	"github.com/yaklabco/gospec/pkg/watch"
)

func newWatchCommand() *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the specification on every change",
		Long: `Build the specification, then rebuild it whenever the manifest, the
template or one of the listed source files changes. Files added to or removed
from the manifest are picked up on the next rebuild. Stop with Ctrl-C.

Examples:
  gospec watch                     Watch Specification.toml and its sources
  gospec watch -f respec --debounce 1s`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd, flags)
		},
	}

	addBuildFlags(cmd, flags)
	cmd.Flags().DurationVar(&flags.debounce, "debounce", 0,
		"quiet period before rebuilding (default 500ms)")

	return cmd
}

func runWatch(cmd *cobra.Command, flags *buildFlags) error {
	loaded, err := resolveConfig(cmd, flags.overrides())
	if err != nil {
		return err
	}
	cfg := loaded.Config

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithLogger(ctx, logging.NewInteractive())

	builder := build.New()
	opts := build.OptionsFromConfig(cfg)
	errStyles := stderrStyles(cmd, cfg)
	outStyles := stdoutStyles(cmd, cfg)

	rebuild := func(ctx context.Context) ([]string, error) {
		result, err := builder.Build(ctx, opts)
		var watched []string
		if result != nil {
			watched = result.Watched
		}
		if err != nil {
			fmt.Fprint(cmd.ErrOrStderr(), errStyles.FormatError(err))
			return watched, err
		}
		fmt.Fprint(cmd.OutOrStdout(), outStyles.FormatBuildSummary(result))
		return watched, nil
	}

	err = watch.Run(ctx, watch.Options{Debounce: cfg.Debounce}, rebuild)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReported, err)
	}
	return nil
}
