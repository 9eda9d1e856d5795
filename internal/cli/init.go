package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gospec/internal/logging"
	"github.com/yaklabco/gospec/pkg/scaffold"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force bool
	name  string
}

func newNewCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new specification in a new directory",
		Long: `Create the directory <name> with a default Specification.toml manifest and
a specification_template.md page template.

Examples:
  gospec new consensus`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.name = filepath.Base(args[0])
			return runInit(cmd, args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite an existing specification")

	return cmd
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Create a new specification in an existing directory",
		Long: `Write a default Specification.toml manifest and specification_template.md
page template into path (default: the current directory). The specification
is named after the directory unless --name is given.

Examples:
  gospec init                      Initialize the current directory
  gospec init spec --name kimchi   Initialize ./spec as "kimchi"
  gospec init --force              Overwrite an existing manifest and template`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(cmd, dir, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite an existing specification")
	cmd.Flags().StringVar(&flags.name, "name", "", "Specification name (default: directory name)")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, flags *initFlags) error {
	logger := logging.NewInteractive()
	ctx := commandContext(cmd)

	result, err := scaffold.Init(ctx, dir, flags.name, flags.force)
	if errors.Is(err, scaffold.ErrSpecExists) && !flags.force && isInteractive() {
		overwrite, promptErr := promptOverwrite(cmd.OutOrStdout(), os.Stdin, dir)
		if promptErr != nil {
			return promptErr
		}
		if overwrite {
			logger.Warn("overwriting existing specification", logging.FieldPath, dir)
			result, err = scaffold.Init(ctx, dir, flags.name, true)
		}
	}
	if err != nil {
		if errors.Is(err, scaffold.ErrSpecExists) {
			return fmt.Errorf("%w; use --force to overwrite", err)
		}
		return err
	}

	logger.Info("created specification",
		logging.FieldPath, result.Dir,
		logging.FieldManifest, filepath.Base(result.Manifest),
		logging.FieldTemplate, filepath.Base(result.Template),
	)
	logger.Info("list source files under [sections] and run 'gospec build'")

	return nil
}

// promptOverwrite asks whether an existing specification may be replaced.
func promptOverwrite(out io.Writer, in io.Reader, dir string) (bool, error) {
	if _, err := fmt.Fprintf(out, "A specification already exists in %s. Overwrite? [y/N] ", dir); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read response: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// isInteractive returns true if stdin is a terminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
