package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/seitarof/gen-reflect/internal/generator"
	"github.com/seitarof/gen-reflect/internal/logger"
	"github.com/seitarof/gen-reflect/internal/matcher"
	"github.com/seitarof/gen-reflect/internal/parser"
	"github.com/seitarof/gen-reflect/internal/resolver"
)

// Exit codes of the gen-reflect command.
const (
	ExitOK                = 0
	ExitFailure           = 1
	ExitNamespaceNotFound = 2
)

// ExitCode maps a run error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, parser.ErrNamespaceNotFound):
		return ExitNamespaceNotFound
	default:
		return ExitFailure
	}
}

// Execute runs the command with args against fs and returns the exit
// status. Diagnostics go to stderr; stdout only carries --version/--help.
func Execute(version string, args []string, fs afero.Fs, stdout, stderr io.Writer) int {
	cfg, err := ParseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, Usage())
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitCode(err)
	}
	if cfg.ShowHelp {
		fmt.Fprint(stdout, Usage())
		return ExitOK
	}
	if cfg.ShowVersion {
		fmt.Fprintln(stdout, version)
		return ExitOK
	}

	if err := logger.Init(&logger.Config{Level: cfg.LogLevel, JSON: cfg.LogJSON, Output: stderr}); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitFailure
	}

	runner := NewRunner(
		parser.New(fs, matcher.NewStructMatcher(), matcher.NewFieldMatcher()),
		resolver.New(resolver.DefaultRules()...),
		generator.New(generator.NewFileWriter(fs)),
	)
	if err := runner.Run(cfg); err != nil {
		var nsErr *parser.NamespaceError
		if errors.As(err, &nsErr) {
			fmt.Fprintf(stderr, "error: %v\n", nsErr)
		} else {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return ExitCode(err)
	}
	return ExitOK
}
