package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/codecloak/internal/config"
	"github.com/dshills/codecloak/internal/logging"
	"github.com/dshills/codecloak/internal/service"
	"github.com/dshills/codecloak/internal/store"
)

const version = "0.3.0"

// Exit codes
const (
	ExitSuccess      = 0
	ExitUsageError   = 2
	ExitNoContext    = 3
	ExitRuntimeError = 4
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "codecloak",
	Short: "Reversible code cloaking for sharing snippets",
	Long: "CodeCloak abbreviates identifiers and masks string literals before code is pasted into " +
		"an external tool, and restores the original names in whatever comes back.",
	SilenceUsage: true,
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(cloakCmd)
	rootCmd.AddCommand(decloakCmd)
	rootCmd.AddCommand(keywordsCmd)
	rootCmd.AddCommand(contextCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// fail prints err to stderr and records code as the exit code.
func fail(cmd *cobra.Command, code int, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	exitCode = code
}

// loadConfig loads the effective config and installs the logger it asks for.
func loadConfig(overrides map[string]string) (config.Config, error) {
	cfg, err := config.Load(overrides)
	if err != nil {
		return config.Config{}, err
	}
	if _, err := logging.Setup(os.Stderr, cfg.LogLevel, flagVerbose); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	return cfg, nil
}

// openService opens the configured context store and wraps it in a
// Service. The returned func closes the store.
func openService(cfg config.Config) (*service.Service, func(), error) {
	backend, location := cfg.StoreLocation()
	st, err := store.Open(backend, location, cfg.Store.TTLSeconds)
	if err != nil {
		return nil, nil, fmt.Errorf("opening context store: %w", err)
	}
	svc := service.New(cfg, st)
	svc.SetKeywordSaver(func(lang, name string) error {
		_, err := config.PersistKeyword(lang, name)
		return err
	})
	return svc, func() { st.Close() }, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print codecloak version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "codecloak version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug details to stderr")
}
