// cmd/tty/main.go
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go-nova-defense/internal/app"
	"go-nova-defense/internal/logging"

	"github.com/gdamore/tcell/v2"
)

// logFileName - терминал занят игрой, поэтому лог пишется в файл.
const logFileName = "nova-tty.log"

func main() {
	var logOut io.Writer = io.Discard
	logFile, err := os.OpenFile(filepath.Join(os.TempDir(), logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err == nil {
		defer logFile.Close()
		logOut = logFile
	}

	rt, err := app.Bootstrap(app.Options{ConfigDir: ".", LogOutput: logOut, Terminal: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer rt.Close()
	logger := logging.Component(rt.Logger, "tty")

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Error().Err(err).Msg("failed to create screen")
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		logger.Error().Err(err).Msg("failed to init screen")
		fmt.Fprintf(os.Stderr, "Failed to init screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	logger.Info().Msg("terminal frontend started")
	newFrontend(screen, rt.Game, rt.Catalog, rt.Language, logger).run()
	logger.Info().Msg("terminal frontend stopped")
}
