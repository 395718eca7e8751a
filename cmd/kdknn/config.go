package main

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// askK is the --k value meaning "prompt on stdin".
const askK = -1

// Config holds the resolved settings of one run.
type Config struct {
	Data        string `mapstructure:"data"`
	SQLite      string `mapstructure:"sqlite"`
	Query       string `mapstructure:"query"`
	Dim         int    `mapstructure:"dim"`
	K           int    `mapstructure:"k"`
	MaxK        int    `mapstructure:"max_k"`
	TestPercent int    `mapstructure:"test_percent"`
	Folds       int    `mapstructure:"folds"`
	Seed        int64  `mapstructure:"seed"`
	Normalize   string `mapstructure:"normalize"`
	Separator   string `mapstructure:"separator"`
	Header      bool   `mapstructure:"header"`
	IDColumn    bool   `mapstructure:"id_column"`
	Out         string `mapstructure:"out"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
}

var errConfig = errors.New("kdknn: invalid configuration")

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("kdknn", pflag.ContinueOnError)
	fs.String("config", "", "Path to a YAML configuration file")
	fs.String("data", "", "Dataset file (.csv, optionally .gz/.zst/.lz4)")
	fs.String("sqlite", "", "SQLite database to read the dataset from")
	fs.String("query", "", "SQL query returning dim feature columns and a label column")
	fs.Int("dim", 4, "Number of features per record")
	fs.Int("k", askK, "Neighbors to vote with; 0 sweeps k = 1..max-k; omitted prompts")
	fs.Int("max-k", 80, "Largest k of a sweep")
	fs.Int("test-percent", 20, "Share of every label held out for testing")
	fs.Int("folds", 10, "Cross-validation folds")
	fs.Int64("seed", 0, "Shuffle seed; 0 seeds from the clock")
	fs.String("normalize", "none", "Feature scaling: none, minmax or zscore")
	fs.String("separator", ",", "Field delimiter of the dataset file")
	fs.Bool("header", true, "Dataset file starts with a header line")
	fs.Bool("id-column", true, "Dataset rows start with an id field")
	fs.String("out", "table", "Sweep output: table or csv")
	fs.String("log-level", "warn", "Log level: debug, info, warn or error")
	fs.String("log-format", "text", "Log format: text or json")

	normalizeFunc := fs.GetNormalizeFunc()
	fs.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		result := normalizeFunc(f, name)
		name = strings.ReplaceAll(string(result), "-", "_")
		return pflag.NormalizedName(name)
	})

	return fs
}

// loadConfig merges flags, KDKNN_* environment variables and an optional
// config file, in that order of precedence.
func loadConfig(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("kdknn")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("kdknn: read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("kdknn: decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Data == "" && c.SQLite == "":
		return fmt.Errorf("%w: one of --data or --sqlite is required", errConfig)
	case c.Data != "" && c.SQLite != "":
		return fmt.Errorf("%w: --data and --sqlite are exclusive", errConfig)
	case c.SQLite != "" && c.Query == "":
		return fmt.Errorf("%w: --sqlite needs --query", errConfig)
	case c.Dim < 1:
		return fmt.Errorf("%w: --dim=%d", errConfig, c.Dim)
	case c.K < askK:
		return fmt.Errorf("%w: --k=%d", errConfig, c.K)
	case c.MaxK < 1:
		return fmt.Errorf("%w: --max-k=%d", errConfig, c.MaxK)
	case c.TestPercent < 0 || c.TestPercent > 100:
		return fmt.Errorf("%w: --test-percent=%d", errConfig, c.TestPercent)
	case c.Folds < 2:
		return fmt.Errorf("%w: --folds=%d", errConfig, c.Folds)
	case utf8.RuneCountInString(c.Separator) != 1 || strings.ContainsAny(c.Separator, "\"\r\n"):
		return fmt.Errorf("%w: --separator=%q", errConfig, c.Separator)
	}
	switch c.Normalize {
	case "none", "minmax", "zscore":
	default:
		return fmt.Errorf("%w: --normalize=%q", errConfig, c.Normalize)
	}
	switch c.Out {
	case "table", "csv":
	default:
		return fmt.Errorf("%w: --out=%q", errConfig, c.Out)
	}

	return nil
}
