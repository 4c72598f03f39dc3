package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/storyboard/internal/paths"
	"github.com/mesh-intelligence/storyboard/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend  string `yaml:"backend"`
	DataDir  string `yaml:"data_dir,omitempty"`
	IDScheme string `yaml:"id_scheme,omitempty"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize storyboard storage",
		Long:  "Create configuration and data directories, then initialize an empty state.",
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	if err := ensureConfigDir(configDir); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	if err := writeConfigIfMissing(configFilePath(configDir), cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	// Lay down an empty state through the configured backend.
	st, closeStore, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer closeStore()
	if _, err := st.Load(); err != nil {
		return fmt.Errorf("verify storage: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Storyboard initialized successfully")
	return nil
}

// writeConfigIfMissing creates config.yaml with the resolved values if the
// file does not exist. If it already exists, the function returns nil
// (idempotent).
func writeConfigIfMissing(path string, cfg types.Config) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	out := configFile{
		Backend:  cfg.Backend,
		DataDir:  cfg.DataDir,
		IDScheme: cfg.IDScheme,
	}
	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
