// Package config resolves the game settings from built-in defaults, a TOML
// file, a .env file, the environment and command-line flags, in that order
// of increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"terminal-maze/internal/maze"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Built-in defaults.
const (
	DefaultRows    = 9
	DefaultColumns = 16
)

// Config holds the resolved settings.
type Config struct {
	Rows    int
	Columns int
	Seed    int64 // 0 seeds from the clock
	History bool
	Verbose bool
	Version bool // print the version and exit
}

// fileConfig mirrors config.toml.
type fileConfig struct {
	History  *bool `toml:"history"`
	Defaults struct {
		Rows    *int   `toml:"rows"`
		Columns *int   `toml:"columns"`
		Seed    *int64 `toml:"seed"`
	} `toml:"defaults"`
}

// Sources overrides where Load looks for its inputs. Zero values select the
// real locations.
type Sources struct {
	ConfigFile string            // TOML file; default from MAZE_CONFIG or XDG
	DotEnvFile string            // default ".env"
	Environ    map[string]string // default os.Environ
	Output     io.Writer         // flag usage output; default os.Stderr
}

// Load resolves the configuration for the given command-line arguments
// (without the program name).
func Load(args []string, src Sources) (Config, error) {
	cfg := Config{Rows: DefaultRows, Columns: DefaultColumns, History: true}

	env := environ()
	if src.Environ != nil {
		env = maps.Clone(src.Environ)
	}
	dotenv := src.DotEnvFile
	if dotenv == "" {
		dotenv = ".env"
	}
	// Real environment wins over the .env file.
	if vars, err := godotenv.Read(dotenv); err == nil {
		for k, v := range vars {
			if _, set := env[k]; !set {
				env[k] = v
			}
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("read %s: %w", dotenv, err)
	}

	path := src.ConfigFile
	if path == "" {
		path = configPath(env)
	}
	if err := cfg.applyFile(path); err != nil {
		return cfg, err
	}
	if err := cfg.applyEnv(env); err != nil {
		return cfg, err
	}
	if err := cfg.applyFlags(args, src.Output); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate checks the maze dimensions.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Columns < 1 {
		return fmt.Errorf("%w: rows and columns must be positive, got %dx%d",
			maze.ErrInvalidDimension, c.Rows, c.Columns)
	}
	return nil
}

// applyFile merges settings from the TOML file at path. A missing file is
// not an error.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if fc.History != nil {
		c.History = *fc.History
	}
	if fc.Defaults.Rows != nil {
		c.Rows = *fc.Defaults.Rows
	}
	if fc.Defaults.Columns != nil {
		c.Columns = *fc.Defaults.Columns
	}
	if fc.Defaults.Seed != nil {
		c.Seed = *fc.Defaults.Seed
	}
	return nil
}

// applyEnv merges MAZE_* variables.
func (c *Config) applyEnv(env map[string]string) error {
	for _, v := range []struct {
		key string
		dst *int
	}{{"MAZE_ROWS", &c.Rows}, {"MAZE_COLUMNS", &c.Columns}} {
		s, ok := env[v.key]
		if !ok || s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("environment variable %s must be an integer: %w", v.key, err)
		}
		*v.dst = n
	}
	if s := env["MAZE_SEED"]; s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("environment variable MAZE_SEED must be an integer: %w", err)
		}
		c.Seed = n
	}
	if s := env["MAZE_HISTORY"]; s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("environment variable MAZE_HISTORY must be a boolean: %w", err)
		}
		c.History = b
	}
	return nil
}

// applyFlags parses the command line over the current values.
func (c *Config) applyFlags(args []string, out io.Writer) error {
	flags := flag.NewFlagSet("terminal-maze", flag.ContinueOnError)
	if out != nil {
		flags.SetOutput(out)
	}
	flags.IntVar(&c.Rows, "rows", c.Rows, "number of maze rows")
	flags.IntVar(&c.Rows, "r", c.Rows, "shorthand for -rows")
	flags.IntVar(&c.Columns, "columns", c.Columns, "number of maze columns")
	flags.IntVar(&c.Columns, "c", c.Columns, "shorthand for -columns")
	flags.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 seeds from the clock)")
	noHistory := flags.Bool("no-history", !c.History, "do not record games in runs.jsonl")
	flags.BoolVar(&c.Verbose, "verbose", false, "write a debug log")
	flags.BoolVar(&c.Verbose, "v", false, "shorthand for -verbose")
	flags.BoolVar(&c.Version, "version", false, "print the version and exit")
	flags.BoolVar(&c.Version, "V", false, "shorthand for -version")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", flags.Args())
	}
	c.History = !*noHistory
	return nil
}

// configPath returns the TOML file location: $MAZE_CONFIG, else
// $XDG_CONFIG_HOME/terminal-maze/config.toml, defaulting to
// ~/.config/terminal-maze/config.toml.
func configPath(env map[string]string) string {
	if p := env["MAZE_CONFIG"]; p != "" {
		return p
	}
	configHome := env["XDG_CONFIG_HOME"]
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".config", "terminal-maze", "config.toml")
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "terminal-maze", "config.toml")
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}
