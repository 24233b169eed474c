package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/codecloak/internal/config"
	"github.com/dshills/codecloak/internal/keywords"
	"github.com/dshills/codecloak/internal/output"
)

var (
	flagKeywordsFormat string
	flagKeywordsOut    string
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Inspect and extend the reserved names kept verbatim",
}

var keywordsShowCmd = &cobra.Command{
	Use:   "show [language]",
	Short: "Show the default keywords of a language (all languages when omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		langs := keywords.Languages()
		if len(args) == 1 {
			lang, ok := keywords.ParseLanguage(args[0])
			if !ok {
				fail(cmd, ExitUsageError, fmt.Errorf("unsupported language: %s", args[0]))
				return nil
			}
			langs = []string{lang}
		}

		w, err := output.GetWriter(flagKeywordsFormat)
		if err != nil {
			fail(cmd, ExitUsageError, err)
			return nil
		}

		if flagKeywordsOut != "" {
			if len(langs) != 1 {
				fail(cmd, ExitUsageError, fmt.Errorf("--out needs a single language"))
				return nil
			}
			if err := output.WriteCatalog(langs[0], keywords.CatalogFor(langs[0]), flagKeywordsFormat, flagKeywordsOut); err != nil {
				fail(cmd, ExitRuntimeError, err)
			}
			return nil
		}

		for i, lang := range langs {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			if err := w.Write(cmd.OutOrStdout(), lang, keywords.CatalogFor(lang)); err != nil {
				fail(cmd, ExitRuntimeError, err)
				return nil
			}
		}
		return nil
	},
}

var keywordsAddCmd = &cobra.Command{
	Use:   "add <language> <name[,name...]>",
	Short: "Reserve names for a language in the config file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang := keywords.NormalizeLanguage(args[0])
		names := splitComma(args[1])
		if lang == "" || len(names) == 0 {
			fail(cmd, ExitUsageError, fmt.Errorf("language and name are required"))
			return nil
		}

		key := keywords.ConfigKey(lang)
		for _, name := range names {
			added, err := config.PersistKeyword(lang, name)
			if err != nil {
				fail(cmd, ExitRuntimeError, err)
				return nil
			}
			if added {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %q to keywordsAdd.%s\n", name, key)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%q is already in keywordsAdd.%s\n", name, key)
			}
		}
		return nil
	},
}

func init() {
	keywordsShowCmd.Flags().StringVar(&flagKeywordsFormat, "format", "text", "Output format (text, markdown, json, yaml)")
	keywordsShowCmd.Flags().StringVarP(&flagKeywordsOut, "out", "o", "", "Output file path (default: stdout)")
	keywordsCmd.AddCommand(keywordsShowCmd)
	keywordsCmd.AddCommand(keywordsAddCmd)
}
