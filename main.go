package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/grid-maze/config"
	"github.com/beka-birhanu/grid-maze/game/maze"
	"github.com/beka-birhanu/grid-maze/service"
	"github.com/beka-birhanu/grid-maze/service/i"
	"github.com/beka-birhanu/grid-maze/shell"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	logger "github.com/beka-birhanu/vinom-common/log"
	"github.com/mattn/go-tty"
)

// Global variables for dependencies
var (
	logOutput    *os.File
	keyboard     *tty.TTY
	levelFactory i.LevelFactory
	session      *shell.Session
	appLogger    general_i.Logger
)

func initLogOutput() {
	path := config.Envs.LogFile
	if path == "" {
		path = os.DevNull
	}

	var err error
	logOutput, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Opening log output %s: %v\n", path, err)
		os.Exit(1)
	}
}

// exit releases the terminal and the log output before terminating with code.
func exit(code int) {
	if keyboard != nil {
		_ = keyboard.Close()
	}
	_ = logOutput.Close()
	os.Exit(code)
}

func initLevelFactory() {
	levelLogger, err := logger.New("LEVEL", config.ColorCyan, logOutput)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating level logger: %v", err))
		exit(1)
	}

	levelFactory = service.NewLevelFactory(&service.Config{
		Width:       config.Envs.MazeWidth,
		Height:      config.Envs.MazeHeight,
		MazeFactory: maze.New,
		Logger:      levelLogger,
	}, config.Envs.MazeSeed)
	appLogger.Info("Level factory initialized")
}

// initKeyboard puts the terminal in raw mode; it runs last so no later
// start-up failure leaves the terminal raw.
func initKeyboard() {
	var err error
	keyboard, err = tty.Open()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Opening terminal: %v", err))
		fmt.Fprintf(os.Stderr, "Opening terminal: %v\n", err)
		exit(1)
	}
	appLogger.Info("Terminal opened")
}

func initSession(shellLogger general_i.Logger) {
	var err error
	session, err = shell.NewSession(&shell.Config{
		Keys:     keyboard,
		Out:      os.Stdout,
		NewLevel: levelFactory,
		Logger:   shellLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session: %v", err))
		exit(1)
	}
	appLogger.Info("Session initialized")
}

func main() {
	initLogOutput()
	appLogger, _ = logger.New("APP", config.ColorGreen, logOutput)

	shellLogger, err := logger.New("SHELL", config.ColorMagenta, logOutput)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating shell logger: %v", err))
		exit(1)
	}

	initLevelFactory()
	initKeyboard()
	initSession(shellLogger)

	if err := session.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Running session: %v", err))
		fmt.Fprintln(os.Stderr, err)
		exit(1)
	}
	appLogger.Info(fmt.Sprintf("Session ended after %d level(s)", session.Levels()))
	exit(0)
}
