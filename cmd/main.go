package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/fatih/color"

	"github.com/hourvault/hourvault/cmd/hourvault"
	sdkerrors "github.com/hourvault/hourvault/sdk/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := hourvault.BuildHourvaultCmd()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, sdkerrors.UserMessage(err))
		stop()
		os.Exit(1)
	}
}
