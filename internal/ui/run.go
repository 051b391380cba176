package ui

import (
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/colock-player/internal/config"
	"github.com/ytget/colock-player/internal/controller"
	"github.com/ytget/colock-player/internal/logging"
	"github.com/ytget/colock-player/internal/platform"
)

// AppID identifies the application to Fyne (preferences, notifications)
const AppID = "com.ytget.colock-player"

// RunOptions configures Run
type RunOptions struct {
	Logger *zap.SugaredLogger
	// Configure may override stored settings before the window is built
	Configure func(settings *config.Settings)
}

// Run creates the application window and blocks until it is closed
func Run(opts RunOptions) {
	logger := logging.OrNop(opts.Logger)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(NewPlayerTheme())

	if opts.Configure != nil {
		opts.Configure(config.NewSettings(myApp))
	}

	handleStore := platform.NewHandleStore("", logger)
	if err := platform.CreateDirectoryIfNotExists(handleStore.Dir()); err != nil {
		logger.Warnf("Failed to create handle directory: %v", err)
	}
	if removed, err := platform.RemoveStaleHandles(handleStore.Dir(), platform.StaleHandleAge); err != nil {
		logger.Warnf("Failed to remove stale playback handles: %v", err)
	} else if removed > 0 {
		logger.Infof("Removed %d stale playback handles", removed)
	}

	newPlayer := func(command string) (controller.Player, error) {
		player, err := platform.NewCommandPlayer(command, logger)
		if err != nil {
			return nil, err
		}
		return player, nil
	}

	myWindow := myApp.NewWindow(AppID)
	NewRootUI(myWindow, myApp, controller.PlatformHandles(handleStore), newPlayer, logger)
	myWindow.ShowAndRun()
}
