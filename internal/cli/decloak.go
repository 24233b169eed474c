package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dshills/codecloak/internal/cloak"
	"github.com/dshills/codecloak/internal/source"
	"github.com/dshills/codecloak/internal/store"
)

// NoContextMessage is printed when decloak has nothing to restore with.
const NoContextMessage = "No cloak context found. Run cloak first."

// Decloak flags
var (
	flagDecloakFile string
	flagContextFile string
	flagDecloakOut  string
)

var decloakCmd = &cobra.Command{
	Use:   "decloak",
	Short: "Restore original names in text produced from a cloaked snippet",
	Args:  cobra.NoArgs,
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

		ctx := cmd.Context()
		var override *cloak.Context
		if flagContextFile != "" {
			data, err := source.Read(ctx, flagContextFile, cmd.InOrStdin())
			if err != nil {
				fail(cmd, ExitRuntimeError, err)
				return nil
			}
			c, err := parseContext([]byte(data))
			if err != nil {
				fail(cmd, ExitUsageError, err)
				return nil
			}
			override = &c
		}

		text, err := source.Read(ctx, flagDecloakFile, cmd.InOrStdin())
		if err != nil {
			fail(cmd, ExitRuntimeError, err)
			return nil
		}

		out, err := svc.Decloak(ctx, text, override)
		if errors.Is(err, store.ErrNoContext) {
			fmt.Fprintln(cmd.ErrOrStderr(), NoContextMessage)
			exitCode = ExitNoContext
			return nil
		}
		if err != nil {
			fail(cmd, ExitRuntimeError, err)
			return nil
		}

		if err := source.Write(ctx, flagDecloakOut, out.Restored, cmd.OutOrStdout()); err != nil {
			fail(cmd, ExitRuntimeError, err)
		}
		return nil
	},
}

// contextFile accepts either a bare cloak context or a stored envelope, in
// JSON or YAML.
type contextFile struct {
	Context       *cloak.Context    `yaml:"context"`
	IdentifierMap map[string]string `yaml:"identifierMap"`
	StringMap     map[string]string `yaml:"stringMap"`
	LanguageID    string            `yaml:"languageId"`
}

func parseContext(data []byte) (cloak.Context, error) {
	var f contextFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return cloak.Context{}, fmt.Errorf("parsing context file: %w", err)
	}
	if f.Context != nil {
		return *f.Context, nil
	}
	if f.IdentifierMap == nil && f.StringMap == nil {
		return cloak.Context{}, errors.New("parsing context file: no identifierMap or stringMap found")
	}
	return cloak.Context{
		IdentifierMap: f.IdentifierMap,
		StringMap:     f.StringMap,
		LanguageID:    f.LanguageID,
	}, nil
}

func init() {
	decloakCmd.Flags().StringVarP(&flagDecloakFile, "file", "f", "", "Read from a file or URL instead of stdin")
	decloakCmd.Flags().StringVarP(&flagContextFile, "context", "c", "", "Use a context saved by 'context show' instead of the stored one")
	decloakCmd.Flags().StringVarP(&flagDecloakOut, "out", "o", "", "Output file path or URL (default: stdout)")
}
