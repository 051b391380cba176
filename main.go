package main

import (
	"os"

	"github.com/ytget/colock-player/internal/logging"
	"github.com/ytget/colock-player/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	logger := logging.NewOrNop(logging.Options{Debug: os.Getenv("COLOCK_DEBUG") != ""})
	defer logger.Sync() //nolint:errcheck

	logger.Infof("Colock Player v%s starting...", version)

	ui.Run(ui.RunOptions{Logger: logger})
}
