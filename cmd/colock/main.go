package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/ytget/colock-player/internal/cli"
	"github.com/ytget/colock-player/internal/config"
	"github.com/ytget/colock-player/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := cli.NewRootCommand(cli.Deps{
		NewPlayer: cli.DefaultPlayerFactory,
		RunGUI:    runGUI,
	})
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runGUI starts the desktop application with the explicitly supplied
// options stored over the saved settings
func runGUI(opts config.Options, logger *zap.SugaredLogger) error {
	ui.Run(ui.RunOptions{
		Logger:    logger,
		Configure: func(settings *config.Settings) { settings.Apply(opts) },
	})
	return nil
}
