package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"okcard/app"
	"okcard/config"
	"okcard/controller"
	data "okcard/data"
	"okcard/logger"
	"okcard/services"
	"okcard/tui"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	// A missing .env is fine; the environment and flags still apply.
	_ = godotenv.Load()

	cfg, err := config.Load(args)
	if errors.Is(err, pflag.ErrHelp) {
		fmt.Fprint(stdout, config.Usage())
		return 0
	}
	if err != nil {
		logger.Screen(err.Error(), color.New(color.FgRed))
		return 1
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	err = logger.Init(cfg.LogFile)
	if err != nil {
		logger.Screen(fmt.Sprintf("debug log disabled: %s", err), color.New(color.FgYellow))
	}
	defer logger.Close()

	journal, err := data.OpenJournal(cfg.JournalBackend, cfg.JournalDSN)
	if err != nil {
		logger.Screen(fmt.Sprintf("Error opening %s journal: %s", cfg.JournalBackend, err), color.New(color.FgRed))
		return 1
	}
	defer journal.Close()

	sessionId := uuid.NewString()
	logger.Debug.Printf("session %s started, journal %s", sessionId, cfg.JournalBackend)

	state := app.New()
	ctrl := controller.New(app.NewRandomSource(cfg.Seed), NewJournalHandler(journal, sessionId))

	signal, err := tui.Run(tui.TUIConfig{
		State:      state,
		Controller: ctrl,
		Theme:      cfg.Theme,
		Output:     os.Stderr,
		NoColor:    cfg.NoColor,
	})
	if err != nil {
		logger.Screen(fmt.Sprintf("%v", err), color.New(color.FgRed))
		return 1
	}

	return finish(signal, state, cfg.Clipboard, stdout)
}

// finish performs the exit the user picked on the Exiting screen and
// returns the process status.
func finish(signal controller.Signal, state services.Dumper, copyToClipboard bool, stdout io.Writer) int {
	if signal != controller.ExitDump {
		return 0
	}

	opts := services.DumpOptions{Out: stdout}
	if copyToClipboard && services.ClipboardAvailable() {
		opts.Clipboard = services.SystemClipboard{}
	}

	err := services.WriteDump(state, opts)
	if err != nil {
		logger.Screen(fmt.Sprintf("Error while dumping buffer: %s", err), color.New(color.FgRed))
		return 1
	}
	return 0
}
