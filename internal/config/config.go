// Package config loads contractgen settings from an optional YAML file and
// CONTRACTGEN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"

	"github.com/goliatone/go-contractgen/pkg/facts"
	"github.com/goliatone/go-contractgen/pkg/money"
	"github.com/goliatone/go-contractgen/pkg/numwords"
	"github.com/goliatone/go-contractgen/pkg/orchestrator"
)

// EnvPrefix prefixes every environment override (CONTRACTGEN_FEE_RATE, ...).
const EnvPrefix = "CONTRACTGEN"

// Hundreds policy names accepted in configuration.
const (
	HundredsStandard = "standard"
	HundredsConcat   = "concat"
)

// Config holds the runtime settings shared by the CLI tools.
type Config struct {
	FeeRate         float64 `mapstructure:"fee_rate"`
	Locale          string  `mapstructure:"locale"`
	Hundreds        string  `mapstructure:"hundreds"`
	DefaultTemplate string  `mapstructure:"default_template"`
	DefaultRenderer string  `mapstructure:"default_renderer"`
	TemplatesDir    string  `mapstructure:"templates_dir"`
	FactTable       string  `mapstructure:"fact_table"`
	Presets         string  `mapstructure:"presets"`
	LogLevel        string  `mapstructure:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		FeeRate:         money.DefaultFeeRate,
		Locale:          "en",
		Hundreds:        HundredsStandard,
		DefaultTemplate: "contrato-servicio",
		DefaultRenderer: "html",
		LogLevel:        "info",
	}
}

// Load reads path (when non-empty) and applies environment overrides on top
// of Default.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "" {
			v.SetConfigType("yaml")
		}
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("fee_rate", cfg.FeeRate)
	v.SetDefault("locale", cfg.Locale)
	v.SetDefault("hundreds", cfg.Hundreds)
	v.SetDefault("default_template", cfg.DefaultTemplate)
	v.SetDefault("default_renderer", cfg.DefaultRenderer)
	v.SetDefault("templates_dir", cfg.TemplatesDir)
	v.SetDefault("fact_table", cfg.FactTable)
	v.SetDefault("presets", cfg.Presets)
	v.SetDefault("log_level", cfg.LogLevel)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if !(c.FeeRate > 0 && c.FeeRate < 1) {
		return fmt.Errorf("config: fee_rate %v must be a fraction in (0, 1)", c.FeeRate)
	}
	if _, err := c.HundredsPolicy(); err != nil {
		return err
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// HundredsPolicy maps the configured name to a numwords policy.
func (c Config) HundredsPolicy() (numwords.Hundreds, error) {
	switch strings.ToLower(strings.TrimSpace(c.Hundreds)) {
	case "", HundredsStandard:
		return numwords.Standard, nil
	case HundredsConcat:
		return numwords.Concat, nil
	default:
		return numwords.Standard, fmt.Errorf("config: unknown hundreds policy %q", c.Hundreds)
	}
}

// Language parses the numeral locale.
func (c Config) Language() (language.Tag, error) {
	if strings.TrimSpace(c.Locale) == "" {
		return language.English, nil
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("config: locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

// Level parses the log level.
func (c Config) Level() (zapcore.Level, error) {
	if strings.TrimSpace(c.LogLevel) == "" {
		return zapcore.InfoLevel, nil
	}
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("config: log_level: %w", err)
	}
	return level, nil
}

// Money builds the numeral formatter for the configured locale and
// hundreds policy.
func (c Config) Money() (*money.Formatter, error) {
	policy, err := c.HundredsPolicy()
	if err != nil {
		return nil, err
	}
	tag, err := c.Language()
	if err != nil {
		return nil, err
	}
	return money.NewFormatter(
		money.WithLocale(tag),
		money.WithSpeller(numwords.New(numwords.WithHundreds(policy))),
	), nil
}

// Table returns the default fact table, extended by the configured YAML
// table when one is set.
func (c Config) Table(formatter *money.Formatter) (facts.Table, error) {
	factsCfg := facts.Config{Money: formatter, FeeRate: c.FeeRate}
	base := facts.DefaultTable(factsCfg)
	if c.FactTable == "" {
		return base, nil
	}
	dir, name := filepath.Split(c.FactTable)
	if dir == "" {
		dir = "."
	}
	return facts.LoadTable(os.DirFS(dir), name, base, factsCfg)
}

// OrchestratorOptions translates the settings into orchestrator options.
func (c Config) OrchestratorOptions() ([]orchestrator.Option, error) {
	formatter, err := c.Money()
	if err != nil {
		return nil, err
	}
	table, err := c.Table(formatter)
	if err != nil {
		return nil, err
	}

	options := []orchestrator.Option{
		orchestrator.WithMoney(formatter),
		orchestrator.WithFeeRate(c.FeeRate),
		orchestrator.WithTable(table),
		orchestrator.WithDefaultTemplate(c.DefaultTemplate),
		orchestrator.WithDefaultRenderer(c.DefaultRenderer),
	}
	if c.TemplatesDir != "" {
		info, err := os.Stat(c.TemplatesDir)
		if err != nil {
			return nil, fmt.Errorf("config: templates_dir: %w", err)
		}
		if !info.IsDir() {
			return nil, errors.New("config: templates_dir is not a directory")
		}
		options = append(options, orchestrator.WithTemplatesFS(os.DirFS(c.TemplatesDir)))
	}
	if c.Presets != "" {
		dir, name := filepath.Split(c.Presets)
		if dir == "" {
			dir = "."
		}
		transformer, err := orchestrator.NewPresetTransformerFromFS(os.DirFS(dir), name)
		if err != nil {
			return nil, fmt.Errorf("config: presets: %w", err)
		}
		options = append(options, orchestrator.WithTransformer(transformer))
	}
	return options, nil
}
