package services

import (
	"fmt"
	"io"

	"okcard/logger"
)

// Dumper serializes the key/value buffer. *app.State satisfies it.
type Dumper interface {
	DumpPairs() ([]byte, error)
}

type DumpOptions struct {
	Out       io.Writer
	Clipboard Clipboard // nil skips the clipboard copy
}

// WriteDump prints the buffer as one JSON line. A failed clipboard copy is
// logged and does not fail the dump.
func WriteDump(d Dumper, opts DumpOptions) error {
	out, err := d.DumpPairs()
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintln(opts.Out, string(out)); err != nil {
		return fmt.Errorf("could not write buffer: %w", err)
	}

	if opts.Clipboard != nil {
		if err = opts.Clipboard.WriteAll(string(out)); err != nil {
			logger.Debug.Printf("Error copying to clipboard: %v", err)
		}
	}
	return nil
}
