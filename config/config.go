// Package config loads okcard settings from flag defaults, an optional YAML
// file, OKCARD_* environment variables and command-line flags, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const envPrefix = "OKCARD_"

type Config struct {
	ConfigFile string `koanf:"config"`
	LogFile    string `koanf:"log_file" validate:"required"`
	// Theme is the glamour style used for card text.
	Theme     string `koanf:"theme" validate:"oneof=dark light notty ascii"`
	NoColor   bool   `koanf:"no_color"`
	Clipboard bool   `koanf:"clipboard"`
	// Seed 0 seeds the card draw from the clock.
	Seed           int64  `koanf:"seed"`
	JournalBackend string `koanf:"journal_backend" validate:"oneof=none sqlite postgres duckdb"`
	JournalDSN     string `koanf:"journal_dsn" validate:"required_if=JournalBackend postgres"`
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("okcard", pflag.ContinueOnError)
	// Errors and help are printed by the caller.
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.String("config", "", "YAML file with settings")
	fs.String("log-file", "~/.okcard/okcard.log", "Debug log file")
	fs.String("theme", "dark", "Card style: dark, light, notty or ascii")
	fs.Bool("no-color", false, "Disable colours")
	fs.Bool("clipboard", false, "Also copy the exit dump to the clipboard")
	fs.Int64("seed", 0, "Seed for card draws (0 uses the clock)")
	fs.String("journal-backend", "none", "Review journal: none, sqlite, postgres or duckdb")
	fs.String("journal-dsn", "", "Journal file path or postgres connection string")
	return fs
}

// Usage returns the flag help text.
func Usage() string {
	return newFlagSet().FlagUsages()
}

// Load parses args (without the program name) and merges every layer.
func Load(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	path := os.Getenv(envPrefix + "CONFIG")
	if f := fs.Lookup("config"); f.Changed {
		path = f.Value.String()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("could not read config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}

	err = k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(fs, f)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not read flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("could not decode config: %w", err)
	}
	cfg.ConfigFile = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("koanf")
	})

	err := v.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			problems = append(problems, fmt.Sprintf("%s fails %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			problems = append(problems, fmt.Sprintf("%s fails %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
}
