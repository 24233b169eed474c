package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/codecloak/internal/output"
	"github.com/dshills/codecloak/internal/redact"
	"github.com/dshills/codecloak/internal/service"
	"github.com/dshills/codecloak/internal/source"
)

// Cloak flags
var (
	flagLang         string
	flagFile         string
	flagStringFormat string
	flagNoHooks      bool
	flagOut          string
	flagNoStore      bool
	flagNoRedact     bool
	flagPrintContext bool
)

var cloakCmd = &cobra.Command{
	Use:   "cloak",
	Short: "Cloak a snippet read from stdin or --file",
	Long: "Cloak abbreviates identifiers and masks string literals, writes the result to stdout " +
		"(or --out), and keeps the reverse mapping so a later decloak can restore the original names.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(buildOverrides())
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
		text, err := source.Read(ctx, flagFile, cmd.InOrStdin())
		if err != nil {
			fail(cmd, ExitRuntimeError, err)
			return nil
		}

		in := service.CloakInput{
			Text:       text,
			LanguageID: flagLang,
			Path:       flagFile,
			NoStore:    flagNoStore,
			NoRedact:   flagNoRedact,
		}
		if flagNoHooks {
			preserve := false
			in.PreserveFrameworkHooks = &preserve
		}
		if flagNoRedact {
			fmt.Fprintln(cmd.ErrOrStderr(), "WARNING: secret redaction is disabled")
		}

		out, err := svc.Cloak(ctx, in)
		if err != nil {
			code := ExitRuntimeError
			if service.IsValidationError(err) || errors.Is(err, redact.ErrPathRedacted) {
				code = ExitUsageError
			}
			fail(cmd, code, err)
			return nil
		}

		if err := source.Write(ctx, flagOut, out.Transformed, cmd.OutOrStdout()); err != nil {
			fail(cmd, ExitRuntimeError, err)
			return nil
		}
		if out.Redactions > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Redacted %d secret(s) from the output\n", out.Redactions)
		}
		if flagPrintContext {
			if err := output.WriteValue(cmd.ErrOrStderr(), "json", out.Context); err != nil {
				fail(cmd, ExitRuntimeError, err)
			}
		}
		return nil
	},
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagStringFormat != "" {
		m["stringFormat"] = flagStringFormat
	}
	if flagAddr != "" {
		m["server.addr"] = flagAddr
	}
	return m
}

func splitComma(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

func init() {
	cloakCmd.Flags().StringVarP(&flagLang, "lang", "l", "", "Language id (javascript, typescript, ruby, jsx, tsx, erb, ...); detected from --file when empty")
	cloakCmd.Flags().StringVarP(&flagFile, "file", "f", "", "Read from a file or URL instead of stdin")
	cloakCmd.Flags().StringVar(&flagStringFormat, "string-format", "", "String masking: placeholder-short, placeholder-long or abbreviate")
	cloakCmd.Flags().BoolVar(&flagNoHooks, "no-hooks", false, "Abbreviate framework hooks such as useState")
	cloakCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file path or URL (default: stdout)")
	cloakCmd.Flags().BoolVar(&flagNoStore, "no-store", false, "Do not save the cloak context")
	cloakCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
	cloakCmd.Flags().BoolVar(&flagPrintContext, "print-context", false, "Print the cloak context as JSON on stderr")
}
