package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nextlevelbuilder/teleconf/pkg/prompt"
	"github.com/nextlevelbuilder/teleconf/pkg/teleconf"
)

func setupCmd() *cobra.Command {
	var opts teleconf.Options

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Collect missing credentials interactively and save them",
		Long: `Resolves the requested credential fields against the config file.
Stored fields are reused without prompting; missing ones are collected
interactively. Pass --force to re-enter fields that are already stored.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSetup(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.APIID, "api-id", false, "request the application API ID")
	cmd.Flags().BoolVar(&opts.APIHash, "api-hash", false, "request the application API hash")
	cmd.Flags().BoolVar(&opts.BotToken, "bot-token", true, "request the bot token")
	cmd.Flags().BoolVar(&opts.PhoneNumber, "phone-number", false, "request the account phone number (not persisted)")
	cmd.Flags().BoolVar(&opts.ForceUpdate, "force", false, "re-prompt even for stored fields")
	return cmd
}

func runSetup(opts teleconf.Options) {
	cfgPath := resolveConfigPath()
	store := teleconf.New(cfgPath, prompt.ForConfigFile(cfgPath))

	err := store.Resolve(opts)
	if errors.Is(err, teleconf.ErrCanceled) {
		fmt.Println("\nInput canceled by user")
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, setupFailure(err))
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Config saved to %s\n", cfgPath)
	if opts.APIID {
		fmt.Printf("  API ID:    %d\n", store.APIID)
	}
	if opts.APIHash {
		fmt.Printf("  API Hash:  %s\n", maskSecret(store.APIHash))
	}
	if opts.BotToken {
		fmt.Printf("  Bot Token: %s\n", maskSecret(store.BotToken))
	}
	if opts.PhoneNumber {
		fmt.Printf("  Phone:     %s (in memory only)\n", store.PhoneNumber)
	}
}

// setupFailure renders a failed resolution pass. The saving label is
// reserved for persistence trouble; prompt failures print as-is.
func setupFailure(err error) string {
	var saveErr *teleconf.SaveError
	if errors.As(err, &saveErr) {
		return fmt.Sprintf("Error saving config: %v", err)
	}
	return err.Error()
}
