package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"testing"

	"github.com/mymmrac/telego/telegoapi"
)

func TestVerifyFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"unauthorized",
			&telegoapi.Error{ErrorCode: 401, Description: "Unauthorized"},
			"Bot token rejected by Telegram",
		},
		{
			"unauthorized_wrapped",
			fmt.Errorf("getMe: %w", &telegoapi.Error{ErrorCode: 401, Description: "Unauthorized"}),
			"Bot token rejected by Telegram",
		},
		{
			"timeout",
			fmt.Errorf("getMe: %w", context.DeadlineExceeded),
			"Telegram API unreachable",
		},
		{
			"connection_refused",
			&net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
			"Telegram API unreachable",
		},
		{
			"dns_failure",
			&net.DNSError{Err: "no such host", Name: "api.telegram.org"},
			"Telegram API unreachable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := verifyFailure(tt.err); !strings.HasPrefix(got, tt.want) {
				t.Errorf("verifyFailure(%v) = %q, want prefix %q", tt.err, got, tt.want)
			}
		})
	}
}
