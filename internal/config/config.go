package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Config aggregates the command-line tool's settings.
type Config struct {
	GraphPath  string // YAML/JSON graph file; empty runs the built-in demo
	Source     string // overrides the document's source when set
	Label      string // run label used by the result store
	MetricsOut string // Prometheus text file written after the solve
	PrintTree  bool
	Logging    LoggingConfig
	Store      StoreConfig
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

// StoreConfig selects the optional result database.
type StoreConfig struct {
	Driver string // "", sqlite or mysql
	DSN    string
}

// Enabled reports whether results should be stored.
func (s StoreConfig) Enabled() bool { return s.Driver != "" }

const (
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
	defaultLabel         = "cli"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Load builds a Config from environment variables (read through getenv),
// then lets args override them. Usage and parse errors are written to output.
func Load(args []string, getenv func(string) string, output io.Writer) (Config, error) {
	env := lookup{getenv: getenv}
	cfg := Config{}

	fs := flag.NewFlagSet("shortpath", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.GraphPath, "graph", env.valueOrDefault("SHORTPATH_GRAPH", ""), "graph file (YAML or JSON); empty runs the demo graph")
	fs.StringVar(&cfg.Source, "source", env.valueOrDefault("SHORTPATH_SOURCE", ""), "source vertex name; overrides the file's source")
	fs.StringVar(&cfg.Label, "label", env.valueOrDefault("SHORTPATH_LABEL", defaultLabel), "label of the stored run")
	fs.StringVar(&cfg.MetricsOut, "metrics-out", env.valueOrDefault("SHORTPATH_METRICS_OUT", ""), "write Prometheus metrics to this file")
	fs.BoolVar(&cfg.PrintTree, "tree", env.parseBoolWithDefault("SHORTPATH_TREE", true), "print the shortest-path tree")
	fs.StringVar(&cfg.Logging.Level, "log-level", env.valueOrDefault("SHORTPATH_LOG_LEVEL", defaultLoggingLevel), "debug|info|warn|error")
	fs.StringVar(&cfg.Logging.Format, "log-format", env.valueOrDefault("SHORTPATH_LOG_FORMAT", defaultLoggingFormat), "text|json")
	fs.BoolVar(&cfg.Logging.IncludeCaller, "log-caller", env.parseBoolWithDefault("SHORTPATH_LOG_CALLER", false), "add source locations to log records")
	fs.StringVar(&cfg.Store.Driver, "store-driver", env.valueOrDefault("SHORTPATH_STORE_DRIVER", ""), "store results with sqlite or mysql")
	fs.StringVar(&cfg.Store.DSN, "store-dsn", env.valueOrDefault("SHORTPATH_STORE_DSN", ""), "data source name for -store-driver")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("%w: unexpected arguments %q", ErrInvalid, fs.Args())
	}

	return cfg, cfg.Validate()
}

// Validate rejects unknown log levels, formats and store drivers, and a
// store driver without a DSN.
func (c Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Logging.Format)
	}
	switch c.Store.Driver {
	case "":
	case "sqlite", "mysql":
		if c.Store.DSN == "" {
			return fmt.Errorf("%w: store driver %q needs a DSN", ErrInvalid, c.Store.Driver)
		}
	default:
		return fmt.Errorf("%w: store driver %q", ErrInvalid, c.Store.Driver)
	}

	return nil
}

type lookup struct {
	getenv func(string) string
}

func (l lookup) valueOrDefault(key, fallback string) string {
	if v := l.getenv(key); v != "" {
		return v
	}
	return fallback
}

func (l lookup) parseBoolWithDefault(key string, fallback bool) bool {
	if v := l.getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}
