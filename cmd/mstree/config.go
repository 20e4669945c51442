package main

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration file shape. Command-line flags that were
// set explicitly override the file.
type Config struct {
	Format          string `yaml:"format"`
	Verify          bool   `yaml:"verify"`
	PathCompression bool   `yaml:"pathCompression"`
	LogLevel        string `yaml:"logLevel"`
	Trace           bool   `yaml:"trace"`
}

// defaultConfig is used when no file is given.
func defaultConfig() Config {
	return Config{Format: formatText, LogLevel: log.InfoLevel.String()}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.WithMessage(err, "config")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}

	return cfg, nil
}

// overrideFromFlags copies explicitly set flags from fs into cfg.
func overrideFromFlags(fs *pflag.FlagSet, cfg *Config, flags Config) {
	if fs.Changed("format") {
		cfg.Format = flags.Format
	}
	if fs.Changed("verify") {
		cfg.Verify = flags.Verify
	}
	if fs.Changed("path-compression") {
		cfg.PathCompression = flags.PathCompression
	}
	if fs.Changed("trace") {
		cfg.Trace = flags.Trace
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = flags.LogLevel
	}
}

// bindSolveFlags registers the flags that mirror Config fields.
func bindSolveFlags(fs *pflag.FlagSet, flags *Config) {
	fs.StringVar(&flags.Format, "format", formatText, "output format: text or yaml")
	fs.BoolVar(&flags.Verify, "verify", false, "cross-check the result against Kruskal")
	fs.BoolVar(&flags.PathCompression, "path-compression", false, "compress root chains during the run")
	fs.BoolVar(&flags.Trace, "trace", false, "log every merge step at debug level")
}
