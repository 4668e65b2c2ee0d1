// Package config loads ertrie settings from defaults, a YAML file and
// ERTRIE_* environment variables, in increasing order of precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/revelaction/ertrie/errors"
	"github.com/revelaction/ertrie/match"
	"github.com/revelaction/ertrie/trie"
)

const (
	EnvPrefix = "ERTRIE"
	Dir       = ".ertrie"
	FileName  = "config.yaml"
)

type Config struct {
	Budget  trie.Budget `mapstructure:"budget" yaml:"budget"`
	Lookup  Lookup      `mapstructure:"lookup" yaml:"lookup"`
	Workers int         `mapstructure:"workers" yaml:"workers"`
	Log     Log         `mapstructure:"log" yaml:"log"`
	Storage Storage     `mapstructure:"storage" yaml:"storage"`
}

type Lookup struct {
	Strategy        string        `mapstructure:"strategy" yaml:"strategy"`
	PunctuationTags []string      `mapstructure:"punctuation_tags" yaml:"punctuation_tags"`
	CacheEnabled    bool          `mapstructure:"cache_enabled" yaml:"cache_enabled"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl" yaml:"cache_ttl"`
}

type Log struct {
	JSON  bool   `mapstructure:"json" yaml:"json"`
	Level string `mapstructure:"level" yaml:"level"`
}

// Storage holds the repository locations. A directory selects the
// filesystem store, a file the sqlite store.
type Storage struct {
	Examples string `mapstructure:"examples" yaml:"examples"`
	Models   string `mapstructure:"models" yaml:"models"`
}

func Default() Config {
	return Config{
		Budget: trie.DefaultBudget,
		Lookup: Lookup{
			Strategy:        string(match.DefaultStrategy),
			PunctuationTags: append([]string(nil), match.DefaultPunctuation...),
			CacheEnabled:    true,
			CacheTTL:        10 * time.Minute,
		},
		Workers: 1,
		Log:     Log{Level: "info"},
		Storage: Storage{
			Examples: "./corpus/examples/",
			Models:   "./corpus/models/",
		},
	}
}

// SetDefaults registers the values of Default() in v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("budget.max_cost", d.Budget.MaxCost)
	v.SetDefault("budget.max_mismatches", d.Budget.MaxMismatches)
	v.SetDefault("lookup.strategy", d.Lookup.Strategy)
	v.SetDefault("lookup.punctuation_tags", d.Lookup.PunctuationTags)
	v.SetDefault("lookup.cache_enabled", d.Lookup.CacheEnabled)
	v.SetDefault("lookup.cache_ttl", d.Lookup.CacheTTL)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("log.json", d.Log.JSON)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("storage.examples", d.Storage.Examples)
	v.SetDefault("storage.models", d.Storage.Models)
}

// DefaultPath returns ~/.ertrie/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "finding home directory")
	}
	return filepath.Join(home, Dir, FileName), nil
}

// NewViper returns a viper instance with defaults and environment binding.
// If path is empty, ~/.ertrie/config.yaml is read when it exists.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
		return v, nil
	}

	def, err := DefaultPath()
	if err != nil {
		return v, nil
	}
	if _, err := os.Stat(def); err != nil {
		return v, nil
	}
	v.SetConfigFile(def)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", def)
	}
	return v, nil
}

// Load reads the configuration. See NewViper for path.
func Load(path string) (*Config, *viper.Viper, error) {
	v, err := NewViper(path)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Budget.Validate(); err != nil {
		return err
	}
	if _, err := match.ParseStrategy(c.Lookup.Strategy); err != nil {
		return err
	}
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidInput, "workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

// MatchOptions returns the matcher options for c. l is not part of the
// configuration and is added by the caller.
func (c *Config) MatchOptions() []match.Option {
	s, _ := match.ParseStrategy(c.Lookup.Strategy)
	opts := []match.Option{
		match.WithStrategy(s),
		match.WithBudget(c.Budget),
		match.WithPunctuation(c.Lookup.PunctuationTags),
	}
	if c.Lookup.CacheEnabled {
		opts = append(opts, match.WithCache(c.Lookup.CacheTTL))
	}
	return opts
}

func (c *Config) YAML() ([]byte, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "marshal config")
	}
	return b, nil
}

const header = `# ertrie configuration
#
# Precedence (highest first):
#   1. command line flags
#   2. environment variables (ERTRIE_*, e.g. ERTRIE_BUDGET_MAX_COST)
#   3. this file
#   4. built-in defaults

`

// Init writes the default configuration to path. An existing file is not
// overwritten.
func Init(path string) (err error) {
	if _, err := os.Stat(path); err == nil {
		return errors.WithHintf(errors.Newf("config file already exists: %s", path), "delete it first to recreate it")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	d := Default()
	data, err := d.YAML()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating config file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close config file")
		}
	}()

	if _, err = f.WriteString(header); err != nil {
		return errors.Wrap(err, "writing config")
	}
	if _, err = f.Write(data); err != nil {
		return errors.Wrap(err, "writing config")
	}
	return nil
}
