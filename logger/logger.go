package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	homedir "github.com/mitchellh/go-homedir"
)

// Global logger - accessible from anywhere. Discards until Init is called.
var Debug = log.New(io.Discard, "", 0)

// Screen output goes here; swapped in tests.
var ScreenWriter io.Writer = os.Stderr

var logFile *os.File

// Init sets up the logger - call this from main
func Init(filename string) error {
	path, err := homedir.Expand(filename)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	logFile = f
	Debug = log.New(f, "", log.LstdFlags|log.Lshortfile)
	Debug.Println("Logger initialized")
	return nil
}

func Close() error {
	Debug = log.New(io.Discard, "", 0)
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// Screen prints a coloured line for the user. Only call it when the TUI is
// not holding the terminal.
func Screen(text string, c *color.Color) {
	if c == nil {
		fmt.Fprintln(ScreenWriter, text)
		return
	}
	c.Fprintln(ScreenWriter, text)
}
