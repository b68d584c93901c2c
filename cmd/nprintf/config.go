package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/bjaus/nprintf"
	"github.com/joeshaw/envdecode"
)

// config holds the command settings. Defaults come from the environment
// and are overridden by flags.
type config struct {
	// Features is a YAML feature file. ENV: NPRINTF_FEATURES
	Features string `env:"NPRINTF_FEATURES"`
	// Capacity bounds the output like an snprintf buffer; 0 streams
	// everything. ENV: NPRINTF_CAPACITY
	Capacity int `env:"NPRINTF_CAPACITY,default=0"`
	// Verbose enables debug logging. ENV: NPRINTF_VERBOSE
	Verbose bool `env:"NPRINTF_VERBOSE,default=false"`
}

func configFromEnv() (config, error) {
	var cfg config
	// Unset variables are not an error; defaults come from the tags.
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return config{}, fmt.Errorf("%w: environment: %w", ErrBadArgument, err)
	}
	return cfg, nil
}

// printerFor builds the Printer for the feature file at path, or the
// default Printer when path is empty.
func printerFor(path string) (nprintf.Printer, error) {
	if path == "" {
		return nprintf.Default, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nprintf.Printer{}, fmt.Errorf("open features: %w", err)
	}
	defer fh.Close()
	feat, err := nprintf.LoadFeatures(fh)
	if err != nil {
		return nprintf.Printer{}, fmt.Errorf("%s: %w", path, err)
	}
	return nprintf.New(feat), nil
}
