// Command nprintf formats its arguments with the nprintf engine, like
// printf(1). With -explain it prints how a format string is tokenized
// instead.
//
//	nprintf [-features FILE] [-n CAP] [-v] FORMAT [ARG...]
//	nprintf -explain [-o markdown|json|yaml] FORMAT
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "nprintf:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := configFromEnv()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("nprintf", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Features, "features", cfg.Features, "YAML `file` selecting feature groups")
	fs.IntVar(&cfg.Capacity, "n", cfg.Capacity, "bound output to `cap` bytes including the terminator; 0 is unbounded")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log debug details to stderr")
	explainMode := fs.Bool("explain", false, "print the tokens of FORMAT instead of formatting")
	out := fs.String("o", outMarkdown, "explain output: markdown, json or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return ErrMissingFormat
	}
	if cfg.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrBadArgument, cfg.Capacity)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	p, err := printerFor(cfg.Features)
	if err != nil {
		return err
	}
	logger.Debug("printer ready", "features", cfg.Features, "capacity", cfg.Capacity)

	format := fs.Arg(0)
	if *explainMode {
		return explain(stdout, p, format, *out)
	}

	argv, counters, err := bindArgs(p, format, fs.Args()[1:])
	if err != nil {
		return err
	}

	var n int
	if cfg.Capacity > 0 {
		buf := make([]byte, cfg.Capacity)
		n = p.Snprintf(buf, format, argv...)
		if _, err := stdout.Write(buf[:min(n, cfg.Capacity-1)]); err != nil {
			return err
		}
	} else if n, err = p.Fprintf(stdout, format, argv...); err != nil {
		return err
	}

	logger.Debug("formatted", "total", n, "truncated", cfg.Capacity > 0 && n >= cfg.Capacity)
	for i, c := range counters {
		logger.Debug("writeback", "index", i, "count", *c)
	}
	return nil
}
