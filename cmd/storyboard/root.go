package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/storyboard/internal/repo"
	"github.com/mesh-intelligence/storyboard/internal/ui"
	"github.com/mesh-intelligence/storyboard/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
}

var flags rootFlags

// NewRootCmd creates the top-level "storyboard" command with global flags and
// all subcommands registered. Running it with no subcommand starts the
// interactive session.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "storyboard",
		Short: "A terminal tracker for epics and stories",
		Long: "Storyboard tracks epics and their stories through a menu-driven\n" +
			"terminal interface backed by a pluggable storage backend.",
		RunE: runInteractive,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: .storyboard-db)")

	root.AddCommand(newInitCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(exitCode(NewRootCmd().Execute()))
}

// exitCode maps a command execution result to a process exit code: storage
// and filesystem failures are system errors, everything else is a user error.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrIO):
		return exitSysError
	default:
		return exitUserError
	}
}

// runInteractive opens the configured store and drives the page loop until
// the user exits.
func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	st, closeStore, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeStore()

	r := repo.New(st, repo.GeneratorFor(cfg.IDScheme))

	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	prompts := ui.DefaultPrompts(reader, out)
	nav := ui.NewNavigator(r, prompts)

	return ui.Run(nav, reader, out)
}
