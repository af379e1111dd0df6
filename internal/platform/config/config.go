// internal/platform/config/config.go
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"vaultdedup/internal/platform/errors"
)

// DefaultFolder is assigned to credential records whose folder is empty.
const DefaultFolder = "Personal"

// outputSuffix is inserted before the extension when no output path is
// given: export.csv becomes export_deduplicated.csv.
const outputSuffix = "_deduplicated"

type Config struct {
	// IO
	Input  string
	Output string

	// Engine
	Filter        []string
	DefaultFolder string
	Analyze       bool

	// Console
	Quiet   bool
	Verbose bool

	// Info
	PrintVersion bool
	PrintHelp    bool

	// ConfigFile is the YAML file the rest of the config was layered
	// over, empty when none was used.
	ConfigFile string
}

// fileConfig is the YAML shape of a config file. Only the keys present
// in the file override the defaults.
type fileConfig struct {
	Input         *string  `yaml:"input"`
	Output        *string  `yaml:"output"`
	Filter        []string `yaml:"filter"`
	DefaultFolder *string  `yaml:"default_folder"`
	Analyze       *bool    `yaml:"analyze"`
	Quiet         *bool    `yaml:"quiet"`
	Verbose       *bool    `yaml:"verbose"`
}

// DefaultConfig returns the baseline configuration.
func DefaultConfig() Config {
	return Config{
		DefaultFolder: DefaultFolder,
	}
}

// Load layers the configuration: defaults -> config file -> ENV ->
// FLAGS (flags win). args are the CLI arguments without the program
// name.
func Load(args []string) (Config, error) {
	cfg := DefaultConfig()

	fs := newFlagSet(&cfg)
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			cfg.PrintHelp = true
			return cfg, nil
		}
		return cfg, errors.Wrapf(errors.ErrInvalidConfig, "%v", err)
	}

	// Flag parsing already wrote into cfg; rebuild in precedence order,
	// using fs.Changed to know which flags were actually given.
	flags := cfg
	cfg = DefaultConfig()
	cfg.PrintVersion = flags.PrintVersion

	configFile := flags.ConfigFile
	if configFile == "" {
		configFile = getenv("VAULTDEDUP_CONFIG", "")
	}
	if configFile != "" {
		if err := loadFromFile(&cfg, configFile); err != nil {
			return cfg, err
		}
		cfg.ConfigFile = configFile
	}

	loadFromEnv(&cfg)
	applyFlags(&cfg, &flags, fs)

	normalize(&cfg)
	return cfg, nil
}

// newFlagSet registers the CLI flags over cfg.
func newFlagSet(cfg *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("vaultdedup", pflag.ContinueOnError)
	fs.SortFlags = false

	fs.StringVarP(&cfg.Input, "input", "i", cfg.Input, "Input CSV export file (required)")
	fs.StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output file (default: <input>_deduplicated.<ext>)")
	fs.StringSliceVarP(&cfg.Filter, "filter", "f", cfg.Filter, "Keywords that exclude matching entries (repeatable)")
	fs.StringVarP(&cfg.DefaultFolder, "default-folder", "d", cfg.DefaultFolder, "Folder assigned to entries without one")
	fs.BoolVarP(&cfg.Analyze, "analyze", "a", cfg.Analyze, "Analyze duplicates without writing the output file")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML config file")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Suppress the interactive console output")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Enable debug logging")
	fs.BoolVarP(&cfg.PrintVersion, "version", "v", false, "Print version information and exit")

	// pflag calls Usage itself on -h before returning ErrHelp; the caller
	// prints the help screen, so the hook stays silent to avoid doubling it.
	fs.Usage = func() {}
	return fs
}

// applyFlags copies over only the flags the user passed explicitly.
func applyFlags(cfg, flags *Config, fs *pflag.FlagSet) {
	if fs.Changed("input") {
		cfg.Input = flags.Input
	}
	if fs.Changed("output") {
		cfg.Output = flags.Output
	}
	if fs.Changed("filter") {
		cfg.Filter = flags.Filter
	}
	if fs.Changed("default-folder") {
		cfg.DefaultFolder = flags.DefaultFolder
	}
	if fs.Changed("analyze") {
		cfg.Analyze = flags.Analyze
	}
	if fs.Changed("quiet") {
		cfg.Quiet = flags.Quiet
	}
	if fs.Changed("verbose") {
		cfg.Verbose = flags.Verbose
	}
}

// loadFromFile applies a YAML file on top of cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "read config file %s: %v", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "parse config file %s: %v", path, err)
	}

	if fc.Input != nil {
		cfg.Input = *fc.Input
	}
	if fc.Output != nil {
		cfg.Output = *fc.Output
	}
	if fc.Filter != nil {
		cfg.Filter = fc.Filter
	}
	if fc.DefaultFolder != nil {
		cfg.DefaultFolder = *fc.DefaultFolder
	}
	if fc.Analyze != nil {
		cfg.Analyze = *fc.Analyze
	}
	if fc.Quiet != nil {
		cfg.Quiet = *fc.Quiet
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	return nil
}

// loadFromEnv loads configuration from environment variables.
func loadFromEnv(cfg *Config) {
	if v := getenv("VAULTDEDUP_INPUT", ""); v != "" {
		cfg.Input = v
	}
	if v := getenv("VAULTDEDUP_OUTPUT", ""); v != "" {
		cfg.Output = v
	}
	if v := getenv("VAULTDEDUP_FILTER", ""); v != "" {
		cfg.Filter = strings.Split(v, ",")
	}
	if v := getenv("VAULTDEDUP_DEFAULT_FOLDER", ""); v != "" {
		cfg.DefaultFolder = v
	}
	if v := getenv("VAULTDEDUP_ANALYZE", ""); v != "" {
		cfg.Analyze = parseBool(v)
	}
	if v := getenv("VAULTDEDUP_QUIET", ""); v != "" {
		cfg.Quiet = parseBool(v)
	}
	if v := getenv("VAULTDEDUP_VERBOSE", ""); v != "" {
		cfg.Verbose = parseBool(v)
	}
}

func normalize(c *Config) {
	c.Input = strings.TrimSpace(c.Input)
	c.Output = strings.TrimSpace(c.Output)
	c.DefaultFolder = strings.TrimSpace(c.DefaultFolder)
	if c.DefaultFolder == "" {
		c.DefaultFolder = DefaultFolder
	}
	if c.Output == "" && c.Input != "" {
		c.Output = DeriveOutputPath(c.Input)
	}
}

// Validate reports whether the configuration allows a run.
func (c Config) Validate() error {
	if c.PrintVersion || c.PrintHelp {
		return nil
	}
	if c.Input == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "input file is required (-i)")
	}
	return nil
}

// DeriveOutputPath inserts the deduplicated suffix before the input's
// extension: /path/export.csv -> /path/export_deduplicated.csv.
func DeriveOutputPath(input string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	return base + outputSuffix + ext
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}
