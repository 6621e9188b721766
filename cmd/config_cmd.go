package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nextlevelbuilder/teleconf/pkg/teleconf"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View and check the stored configuration",
	}
	cmd.AddCommand(configShowCmd())
	cmd.AddCommand(configPathCmd())
	cmd.AddCommand(configValidateCmd())
	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the stored record (secrets redacted)",
		Run: func(cmd *cobra.Command, args []string) {
			cfgPath := resolveConfigPath()
			rec, outcome := teleconf.Load(cfgPath)
			if outcome != teleconf.LoadLoaded {
				fmt.Fprintf(os.Stderr, "No readable config at %s (%s)\n", cfgPath, outcome)
				os.Exit(1)
			}

			redactRecord(rec)
			data, _ := json.MarshalIndent(rec, "", "  ")
			fmt.Println(string(data))
		},
	}
}

func configPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(resolveConfigPath())
		},
	}
}

func configValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check stored fields against the prompt validation rules",
		Run: func(cmd *cobra.Command, args []string) {
			cfgPath := resolveConfigPath()
			rec, outcome := teleconf.Load(cfgPath)
			switch outcome {
			case teleconf.LoadAbsent:
				fmt.Fprintf(os.Stderr, "No config file at %s. Run: teleconf setup\n", cfgPath)
				os.Exit(1)
			case teleconf.LoadCorrupt:
				fmt.Fprintf(os.Stderr, "Config at %s is not a valid JSON object\n", cfgPath)
				os.Exit(1)
			}

			checks := []struct {
				key      string
				validate func(string) error
			}{
				{"api_id", teleconf.ValidateAPIID},
				{"api_hash", teleconf.ValidateAPIHash},
				{"bot_token", teleconf.ValidateBotToken},
			}

			problems := 0
			for _, c := range checks {
				v, ok := rec[c.key]
				if !ok {
					fmt.Printf("  %-10s (not set)\n", c.key)
					continue
				}
				if err := c.validate(stringify(v)); err != nil {
					fmt.Printf("  %-10s INVALID: %s\n", c.key, err)
					problems++
					continue
				}
				fmt.Printf("  %-10s ok\n", c.key)
			}

			if problems > 0 {
				fmt.Fprintf(os.Stderr, "Invalid config: %d field(s) would be re-prompted\n", problems)
				os.Exit(1)
			}
			fmt.Printf("Config at %s is valid.\n", cfgPath)
		},
	}
}

// redactRecord masks secret values in place for display.
func redactRecord(rec map[string]any) {
	for _, key := range []string{"api_hash", "bot_token"} {
		if s, ok := rec[key].(string); ok && s != "" {
			rec[key] = maskSecret(s)
		}
	}
}

// maskSecret shows only the first and last four characters.
func maskSecret(s string) string {
	if len(s) > 8 {
		return s[:4] + "****" + s[len(s)-4:]
	}
	if s != "" {
		return "****"
	}
	return "(not set)"
}

// stringify renders a stored value the way a prompt validator sees it.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}
