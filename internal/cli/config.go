package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/codecloak/internal/config"
	"github.com/dshills/codecloak/internal/output"
)

var (
	flagConfigFormat   string
	flagConfigForce    bool
	flagConfigFileOnly bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage codecloak configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with every default spelled out",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		switch _, statErr := os.Stat(path); {
		case statErr == nil && !flagConfigForce:
			fmt.Fprintf(cmd.ErrOrStderr(), "Config file already exists at %s (use --force to replace it)\n", path)
			return nil
		case statErr != nil && !errors.Is(statErr, fs.ErrNotExist):
			return statErr
		}

		if err := config.Save(initialConfig()); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set one key in the config file. Keys use the JSON field names, e.g.
stringFormat, languageId, preserveFrameworkHooks, store.backend.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		err := updateConfigFile(func(cfg *config.Config) error {
			return config.SetField(cfg, key, value)
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		load := func() (config.Config, error) { return config.Load(nil) }
		if flagConfigFileOnly {
			load = config.LoadFile
		}
		cfg, err := load()
		if err != nil {
			return err
		}
		return output.WriteValue(cmd.OutOrStdout(), flagConfigFormat, cfg)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// initialConfig is the default config with the pointer switches set, so a
// fresh file documents them.
func initialConfig() config.Config {
	cfg := config.Default()
	preserve, redactSecrets := true, true
	cfg.PreserveFrameworkHooks = &preserve
	cfg.Privacy.RedactSecrets = &redactSecrets
	return cfg
}

// updateConfigFile applies edit to the file layer only, so values coming
// from the environment are never written back.
func updateConfigFile(edit func(*config.Config) error) error {
	cfg, err := config.LoadFile()
	if err != nil {
		return err
	}
	if err := edit(&cfg); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

func init() {
	configInitCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Replace an existing config file")
	configShowCmd.Flags().StringVar(&flagConfigFormat, "format", "json", "Output format (json, yaml)")
	configShowCmd.Flags().BoolVar(&flagConfigFileOnly, "file", false, "Show only what the config file sets")
	configCmd.AddCommand(configInitCmd, configSetCmd, configShowCmd, configPathCmd)
}
