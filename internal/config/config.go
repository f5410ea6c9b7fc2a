package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/five82/carousel/internal/carousel"
)

// Config is the resolved application configuration.
type Config struct {
	ItemsFile string
	Locale    string
	LogFile   string
	LogLevel  string

	// Carousel holds the geometry. ItemLength is only used when no items
	// file is configured.
	Carousel carousel.Config

	// Pixels per terminal cell.
	CellWidth  float64
	CellHeight float64
}

type rawConfig struct {
	ItemsFile string      `koanf:"items_file"`
	Locale    string      `koanf:"locale"`
	LogFile   string      `koanf:"log_file"`
	LogLevel  string      `koanf:"log_level"`
	Carousel  rawCarousel `koanf:"carousel"`
	Cells     rawCells    `koanf:"cells"`
}

type rawCarousel struct {
	ItemWidth    float64 `koanf:"item_width"`
	ItemHeight   float64 `koanf:"item_height"`
	Gap          float64 `koanf:"gap"`
	ViewingCount int     `koanf:"viewing_count"`
	ItemLength   int     `koanf:"item_length"`
}

type rawCells struct {
	Width  float64 `koanf:"width"`
	Height float64 `koanf:"height"`
}

const (
	appName           = "carousel"
	localConfigPath   = "carousel.toml"
	defaultLocale     = "en"
	defaultLogLevel   = "info"
	defaultCellWidth  = 10
	defaultCellHeight = 40
)

// Defaults returns the configuration used when no file sets a value.
func Defaults() Config {
	return Config{
		Locale:     defaultLocale,
		LogFile:    DefaultLogPath(),
		LogLevel:   defaultLogLevel,
		Carousel:   carousel.ExampleConfig(),
		CellWidth:  defaultCellWidth,
		CellHeight: defaultCellHeight,
	}
}

// DefaultConfigPath is the per-user config file.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}

// DefaultLogPath is the per-user log file.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, appName, appName+".log")
}

// SearchPaths lists the files Load reads, lowest priority first. An explicit
// path replaces the defaults.
func SearchPaths(path string) []string {
	if strings.TrimSpace(path) != "" {
		return []string{path}
	}
	return []string{DefaultConfigPath(), localConfigPath}
}

// Overrides are command line values that win over every config file.
// Empty fields leave the file value alone.
type Overrides struct {
	ItemsFile string
	LogFile   string
}

// Load reads every existing file from SearchPaths(path), later files
// overriding earlier ones, and validates the result. Missing files are not
// an error.
func Load(path string) (Config, error) {
	return LoadWith(path, Overrides{})
}

// LoadWith is Load with command line overrides applied before path
// expansion and validation.
func LoadWith(path string, o Overrides) (Config, error) {
	k := koanf.New(".")

	for _, p := range SearchPaths(path) {
		resolved, err := ExpandPath(p)
		if err != nil {
			return Config{}, err
		}
		if _, err := os.Stat(resolved); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, fmt.Errorf("stat config: %w", err)
		}
		if err := k.Load(file.Provider(resolved), toml.Parser()); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	def := Defaults()
	raw := rawConfig{
		Locale:   def.Locale,
		LogFile:  def.LogFile,
		LogLevel: def.LogLevel,
		Carousel: rawCarousel{
			ItemWidth:    def.Carousel.ItemWidth,
			ItemHeight:   def.Carousel.ItemHeight,
			Gap:          def.Carousel.Gap,
			ViewingCount: def.Carousel.ViewingCount,
			ItemLength:   def.Carousel.ItemLength,
		},
		Cells: rawCells{Width: def.CellWidth, Height: def.CellHeight},
	}
	if err := k.Unmarshal("", &raw); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg := Config{
		ItemsFile: strings.TrimSpace(raw.ItemsFile),
		Locale:    strings.TrimSpace(raw.Locale),
		LogFile:   strings.TrimSpace(raw.LogFile),
		LogLevel:  strings.TrimSpace(raw.LogLevel),
		Carousel: carousel.Config{
			ItemWidth:    raw.Carousel.ItemWidth,
			ItemHeight:   raw.Carousel.ItemHeight,
			ItemLength:   raw.Carousel.ItemLength,
			Gap:          raw.Carousel.Gap,
			ViewingCount: raw.Carousel.ViewingCount,
		},
		CellWidth:  raw.Cells.Width,
		CellHeight: raw.Cells.Height,
	}
	if cfg.Locale == "" {
		cfg.Locale = defaultLocale
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.ItemsFile != "" {
		cfg.ItemsFile = mustExpand(cfg.ItemsFile)
	}
	if cfg.LogFile != "" {
		cfg.LogFile = mustExpand(cfg.LogFile)
	}
	if err := cfg.apply(o); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) apply(o Overrides) error {
	if strings.TrimSpace(o.ItemsFile) != "" {
		p, err := ExpandPath(o.ItemsFile)
		if err != nil {
			return fmt.Errorf("items override: %w", err)
		}
		c.ItemsFile = p
	}
	if strings.TrimSpace(o.LogFile) != "" {
		p, err := ExpandPath(o.LogFile)
		if err != nil {
			return fmt.Errorf("log override: %w", err)
		}
		c.LogFile = p
	}
	return nil
}

// Validate checks geometry, cell metrics and locale. With an items file the
// file decides the item count, so carousel.item_length is not checked.
func (c Config) Validate() error {
	geo := c.Carousel
	if c.ItemsFile != "" {
		geo.ItemLength = max(geo.ItemLength, 1)
	}
	if err := geo.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if !carousel.SupportedLocale(c.Locale) {
		return fmt.Errorf("validate config: locale %q not supported, want one of %s",
			c.Locale, strings.Join(carousel.Locales(), ", "))
	}
	if c.CellWidth <= 0 {
		return fmt.Errorf("validate config: cells.width must be positive, got %v", c.CellWidth)
	}
	if c.CellHeight <= 0 {
		return fmt.Errorf("validate config: cells.height must be positive, got %v", c.CellHeight)
	}
	return nil
}

func mustExpand(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath trims path, expands a leading "~" to the home directory and
// makes the result absolute.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
