package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gospec/internal/configloader"
	"github.com/yaklabco/gospec/internal/logging"
	"github.com/yaklabco/gospec/internal/ui/pretty"
	"github.com/yaklabco/gospec/pkg/config"
)

// commandContext returns the command's context, never nil.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// resolveConfig layers config files and environment variables under the
// values set by flags.
func resolveConfig(cmd *cobra.Command, overrides *config.Config) (*configloader.LoadResult, error) {
	logger := logging.Default()

	if overrides == nil {
		overrides = &config.Config{}
	}
	if cmd.Flags().Changed("color") {
		color, err := cmd.Flags().GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		overrides.Color = config.ColorMode(color)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(commandContext(cmd), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    overrides,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, result.LoadedFrom)
	}
	logger.Debug("configuration loaded",
		logging.FieldManifest, result.Config.Specification,
		logging.FieldFormat, result.Config.Format,
		logging.FieldJobs, result.Config.Jobs,
	)

	return result, nil
}

// stderrStyles returns diagnostic styles for the command's error stream.
func stderrStyles(cmd *cobra.Command, cfg *config.Config) *pretty.Styles {
	return pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), cmd.ErrOrStderr()))
}

// stdoutStyles returns styles for the command's output stream.
func stdoutStyles(cmd *cobra.Command, cfg *config.Config) *pretty.Styles {
	return pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), cmd.OutOrStdout()))
}

// reportError prints err to stderr and marks it as reported.
func reportError(cmd *cobra.Command, styles *pretty.Styles, err error) error {
	fmt.Fprint(cmd.ErrOrStderr(), styles.FormatError(err))
	return fmt.Errorf("%w: %w", ErrReported, err)
}

func newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Print the configuration gospec would use in the current directory, after
merging the user config, the project .gospec.yml, --config and GOSPEC_*
environment variables.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := resolveConfig(cmd, nil)
			if err != nil {
				return err
			}
			return printConfig(cmd, result)
		},
	}
}

func printConfig(cmd *cobra.Command, result *configloader.LoadResult) error {
	out := cmd.OutOrStdout()

	content, err := result.Config.ToYAML()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "# loaded from:")
	if len(result.LoadedFrom) == 0 {
		fmt.Fprintln(out, "#   (defaults)")
	}
	for _, path := range result.LoadedFrom {
		fmt.Fprintln(out, "#   "+path)
	}
	fmt.Fprintln(out, "#")
	fmt.Fprintln(out, "# environment:")

	vars := configloader.ListEnvVars()
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "#   %-22s %s\n", name, vars[name])
	}

	_, err = out.Write(content)
	return err
}
