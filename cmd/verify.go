package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mymmrac/telego"
	"github.com/mymmrac/telego/telegoapi"
	"github.com/spf13/cobra"

	"github.com/nextlevelbuilder/teleconf/pkg/teleconf"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the stored bot token against the Telegram Bot API",
		Run: func(cmd *cobra.Command, args []string) {
			runVerify()
		},
	}
}

func runVerify() {
	cfgPath := resolveConfigPath()
	rec, outcome := teleconf.Load(cfgPath)
	if outcome != teleconf.LoadLoaded {
		fmt.Fprintf(os.Stderr, "No readable config at %s (%s). Run: teleconf setup\n", cfgPath, outcome)
		os.Exit(1)
	}

	token, _ := rec["bot_token"].(string)
	if token == "" {
		fmt.Fprintf(os.Stderr, "No bot_token stored in %s. Run: teleconf setup\n", cfgPath)
		os.Exit(1)
	}

	// NewBot checks the token shape locally before any network call.
	bot, err := telego.NewBot(token)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid bot token: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	me, err := bot.GetMe(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, verifyFailure(err))
		os.Exit(1)
	}

	fmt.Printf("Token OK: authorized as @%s (%s)\n", me.Username, me.FirstName)
}

// verifyFailure renders a getMe failure. Only an answer from the Bot
// API judges the token; a timeout, refused connection or DNS failure
// says nothing about it and is worth a retry.
func verifyFailure(err error) string {
	var apiErr *telegoapi.Error
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Bot token rejected by Telegram: %v", err)
	}
	return fmt.Sprintf("Telegram API unreachable, try again: %v", err)
}
