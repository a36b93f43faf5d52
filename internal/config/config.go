// Package config loads CLI settings from flags, SHEETIMPORT_* environment
// variables and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/moxuandi/sheetimport/pkg/sheetimport"
	"github.com/moxuandi/sheetimport/pkg/sheetimport/workbook"
)

// EnvPrefix prefixes every environment variable read by the CLI.
const EnvPrefix = "SHEETIMPORT"

// Config holds the CLI settings after flags, environment and .env are merged.
type Config struct {
	NoHeader      bool   `mapstructure:"no-header"`
	KeyByIndex    bool   `mapstructure:"key-by-index"`
	Sheet         string `mapstructure:"sheet"`
	Sheets        string `mapstructure:"sheets"`
	StrictHeaders bool   `mapstructure:"strict-headers"`

	Delimiter string `mapstructure:"delimiter" validate:"omitempty,len=1"`
	Encoding  string `mapstructure:"encoding"`
	Password  string `mapstructure:"password"`

	Format    string `mapstructure:"format" validate:"oneof=json yaml"`
	Pretty    bool   `mapstructure:"pretty"`
	Output    string `mapstructure:"output"`
	SheetsDir string `mapstructure:"sheets-dir"`

	LogLevel  string `mapstructure:"log-level" validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"log-format" validate:"oneof=text json"`
}

// RegisterFlags defines the CLI flags and their defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Bool("no-header", false, "Keep the first row as data instead of field names")
	fs.Bool("key-by-index", false, "Key sheets by zero-based index instead of name")
	fs.String("sheet", "", "Import only this sheet and print its data directly")
	fs.String("sheets", "", "Comma-separated sheets to import (indexes with --key-by-index)")
	fs.Bool("strict-headers", false, "Fail when a header row repeats a field name")
	fs.String("delimiter", "", "CSV field delimiter (default ',' or tab for .tsv)")
	fs.String("encoding", "", "Text encoding of CSV/XLS input (e.g. gbk, shift_jis)")
	fs.String("password", "", "Password for encrypted xlsx files")
	fs.StringP("format", "f", "json", "Output format: json, yaml")
	fs.Bool("pretty", false, "Pretty-print JSON output")
	fs.StringP("output", "o", "", "Output file path (default: stdout)")
	fs.String("sheets-dir", "", "Directory for per-sheet output files")
	fs.String("log-level", "warn", "Log level: debug, info, warn, error")
	fs.String("log-format", "text", "Log format: text, json")
}

// Load reads envFile (if it exists), binds fs and the environment into v,
// and validates the result.
func Load(v *viper.Viper, fs *pflag.FlagSet, envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Format = strings.ToLower(cfg.Format)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Sheet != "" && cfg.Sheets != "" {
		return nil, fmt.Errorf("invalid config: --sheet and --sheets are mutually exclusive")
	}
	return cfg, nil
}

// ImportOptions converts the config into importer options.
func (c *Config) ImportOptions() (sheetimport.Options, error) {
	opts := sheetimport.DefaultOptions()
	opts.PromoteHeaderRow = sheetimport.Bool(!c.NoHeader)
	opts.KeySheetsByName = sheetimport.Bool(!c.KeyByIndex)
	if c.StrictHeaders {
		opts.DuplicateHeaders = sheetimport.DuplicateReject
	}

	opts.Load = workbook.LoadOptions{
		Encoding: c.Encoding,
		Password: c.Password,
	}
	if c.Delimiter != "" {
		opts.Load.Comma, _ = utf8.DecodeRuneInString(c.Delimiter)
	}

	switch {
	case c.Sheet != "":
		opts.Sheets = sheetimport.Only(c.Sheet)
	case c.Sheets != "":
		parts := splitList(c.Sheets)
		if len(parts) == 0 {
			return opts, fmt.Errorf("%w: --sheets %q lists no sheets", sheetimport.ErrInvalidInput, c.Sheets)
		}
		if !c.KeyByIndex {
			opts.Sheets = sheetimport.Names(parts...)
			break
		}
		indexes := make([]int, len(parts))
		for i, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil {
				return opts, fmt.Errorf("%w: sheet index %q is not a number", sheetimport.ErrInvalidInput, p)
			}
			indexes[i] = n
		}
		opts.Sheets = sheetimport.Indexes(indexes...)
	}

	return opts, opts.Validate()
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
