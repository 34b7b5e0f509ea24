package services

import (
	"github.com/atotto/clipboard"
)

// Clipboard is the text clipboard; tests swap it for a fake.
type Clipboard interface {
	WriteAll(text string) error
}

type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

func ClipboardAvailable() bool {
	return !clipboard.Unsupported
}
