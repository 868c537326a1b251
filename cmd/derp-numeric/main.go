package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"gitlab.com/gitlab-org/derp-numeric/internal/config"
	"gitlab.com/gitlab-org/derp-numeric/internal/document"
	"gitlab.com/gitlab-org/derp-numeric/internal/logging"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], nil, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, environ map[string]string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("derp-numeric", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, "Usage: derp-numeric [options] [value]\n\nReads one value (from the argument or stdin) and prints it as a positive 32-bit integer.\n\nOptions:\n")
		fs.PrintDefaults()
	}

	configFile := fs.String("config", "", "TOML configuration file")
	format := fs.String("format", "", "Input format: "+strings.Join(document.Formats(), ", "))
	logLevel := fs.String("log-level", "", "Log level")
	logFormat := fs.String("log-format", "", "Log format: text, json")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.Load(*configFile, environ)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *format
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger, err := logging.New(stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	input, err := readInput(fs.Args(), stdin, int64(cfg.MaxInputBytes.Uint64()))
	if err != nil {
		logger.WithError(err).Error("derp-numeric: read input")
		return exitError
	}

	n, err := document.Decode(cfg.Format, input)
	if err != nil {
		logger.WithError(err).WithFields(log.Fields{
			"format": cfg.Format,
			"input":  string(input),
		}).Error("derp-numeric: decode")
		return exitError
	}

	logger.WithField("format", cfg.Format).Debug("derp-numeric: decoded")
	fmt.Fprintln(stdout, n)

	return exitOK
}

func readInput(args []string, stdin io.Reader, limit int64) ([]byte, error) {
	if len(args) == 1 {
		if int64(len(args[0])) > limit {
			return nil, fmt.Errorf("input exceeds %d bytes", limit)
		}
		return []byte(args[0]), nil
	}

	data, err := io.ReadAll(io.LimitReader(stdin, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("input exceeds %d bytes", limit)
	}

	return data, nil
}
