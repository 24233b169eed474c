package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/codecloak/internal/output"
	"github.com/dshills/codecloak/internal/store"
)

var flagContextFormat string

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Manage the stored cloak context",
}

var contextShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored cloak context",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(nil)
		if err != nil {
			fail(cmd, ExitUsageError, err)
			return nil
		}
		svc, closeStore, err := openService(cfg)
		if err != nil {
			fail(cmd, ExitRuntimeError, err)
			return nil
		}
		defer closeStore()

		env, err := svc.Context(cmd.Context())
		if errors.Is(err, store.ErrNoContext) {
			fmt.Fprintln(cmd.ErrOrStderr(), NoContextMessage)
			exitCode = ExitNoContext
			return nil
		}
		if err != nil {
			fail(cmd, ExitRuntimeError, err)
			return nil
		}
		if err := output.WriteValue(cmd.OutOrStdout(), flagContextFormat, env); err != nil {
			fail(cmd, ExitUsageError, err)
		}
		return nil
	},
}

var contextClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored cloak context",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(nil)
		if err != nil {
			fail(cmd, ExitUsageError, err)
			return nil
		}
		svc, closeStore, err := openService(cfg)
		if err != nil {
			fail(cmd, ExitRuntimeError, err)
			return nil
		}
		defer closeStore()

		if err := svc.ClearContext(cmd.Context()); err != nil {
			fail(cmd, ExitRuntimeError, fmt.Errorf("clearing context: %w", err))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Cloak context cleared.")
		return nil
	},
}

var contextStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show context store statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(nil)
		if err != nil {
			fail(cmd, ExitUsageError, err)
			return nil
		}
		svc, closeStore, err := openService(cfg)
		if err != nil {
			fail(cmd, ExitRuntimeError, err)
			return nil
		}
		defer closeStore()

		stats, err := svc.ContextStats(cmd.Context())
		if err != nil {
			fail(cmd, ExitRuntimeError, fmt.Errorf("reading context stats: %w", err))
			return nil
		}
		if err := output.WriteValue(cmd.OutOrStdout(), flagContextFormat, stats); err != nil {
			fail(cmd, ExitUsageError, err)
		}
		return nil
	},
}

func init() {
	contextCmd.PersistentFlags().StringVar(&flagContextFormat, "format", "json", "Output format (json, yaml)")
	contextCmd.AddCommand(contextShowCmd)
	contextCmd.AddCommand(contextClearCmd)
	contextCmd.AddCommand(contextStatsCmd)
}
