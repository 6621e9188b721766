package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nextlevelbuilder/teleconf/pkg/teleconf"
)

func TestSetupFailure(t *testing.T) {
	saveErr := &teleconf.SaveError{Err: errors.New("write config: disk full")}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"save_failure",
			saveErr,
			"Error saving config: write config: disk full",
		},
		{
			"wrapped_save_failure",
			fmt.Errorf("resolve: %w", saveErr),
			"Error saving config: resolve: write config: disk full",
		},
		{
			"prompt_failure",
			errors.New(`prompt "Telegram Bot Token": no tty`),
			`prompt "Telegram Bot Token": no tty`,
		},
		{
			"coercion_failure",
			errors.New("api_id out of range: value out of range"),
			"api_id out of range: value out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := setupFailure(tt.err); got != tt.want {
				t.Errorf("setupFailure(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
