package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
)

// ErrUsage marks invalid command line input.
var ErrUsage = errors.New("usage")

const (
	defaultNamespace        = "soa"
	defaultReflectNamespace = "soa_reflect"
	defaultLogLevel         = "warn"
)

func newFlagSet(cfg *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("gen-reflect", pflag.ContinueOnError)
	fs.StringVarP(&cfg.Namespace, "namespace", "n", defaultNamespace, "namespace whose structs are reflected")
	fs.StringVar(&cfg.ReflectNamespace, "reflect-namespace", defaultReflectNamespace, "namespace for the reflect_has trait")
	fs.StringArrayVarP(&cfg.Includes, "include", "i", nil, "header to #include (repeatable; default: input file name)")
	fs.StringVar(&cfg.LogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.LogJSON, "log-json", false, "emit logs as JSON")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version")
	fs.BoolVarP(&cfg.ShowHelp, "help", "h", false, "show help")
	fs.SortFlags = false
	return fs
}

// Usage returns the help text printed on invalid invocation.
func Usage() string {
	var b strings.Builder
	b.WriteString("usage: gen-reflect [flags] <input SoaStructs.h> <output SoaStructs.reflect.h>\n\nflags:\n")
	b.WriteString(newFlagSet(&Config{}).FlagUsages())
	return b.String()
}

// ParseArgs parses command line arguments into Config.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}
	fs := newFlagSet(cfg)
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if cfg.ShowHelp || cfg.ShowVersion {
		return cfg, nil
	}

	if fs.NArg() != 2 {
		return nil, fmt.Errorf("%w: expected 2 arguments, got %d", ErrUsage, fs.NArg())
	}
	cfg.InputPath = fs.Arg(0)
	cfg.OutputPath = fs.Arg(1)

	if strings.TrimSpace(cfg.Namespace) == "" {
		return nil, fmt.Errorf("%w: --namespace must not be empty", ErrUsage)
	}
	if strings.TrimSpace(cfg.ReflectNamespace) == "" {
		return nil, fmt.Errorf("%w: --reflect-namespace must not be empty", ErrUsage)
	}

	cfg.Includes = cleanIncludes(cfg.Includes)
	if len(cfg.Includes) == 0 {
		cfg.Includes = []string{filepath.Base(cfg.InputPath)}
	}
	return cfg, nil
}

func cleanIncludes(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, inc := range raw {
		inc = strings.TrimSpace(inc)
		if inc == "" {
			continue
		}
		out = append(out, inc)
	}
	return out
}
