package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/carousel/internal/carousel"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	def := Defaults()
	if cfg.Carousel != carousel.ExampleConfig() {
		t.Fatalf("Carousel = %#v, want %#v", cfg.Carousel, carousel.ExampleConfig())
	}
	if cfg.CellWidth != def.CellWidth || cfg.CellHeight != def.CellHeight {
		t.Fatalf("cells = %vx%v, want %vx%v", cfg.CellWidth, cfg.CellHeight, def.CellWidth, def.CellHeight)
	}
	if cfg.Locale != "en" || cfg.LogLevel != "info" {
		t.Fatalf("Locale/LogLevel = %q/%q, want en/info", cfg.Locale, cfg.LogLevel)
	}
	if cfg.ItemsFile != "" {
		t.Fatalf("ItemsFile = %q, want empty", cfg.ItemsFile)
	}
}

func TestLoad_ParsesOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
items_file = "  ~/cards.toml  "
locale = "ko"
log_level = "debug"

[carousel]
item_width = 180
gap = 12
viewing_count = 3

[cells]
width = 6
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ItemsFile != filepath.Join(home, "cards.toml") {
		t.Fatalf("ItemsFile = %q, want it expanded under HOME", cfg.ItemsFile)
	}
	if cfg.Locale != "ko" || cfg.LogLevel != "debug" {
		t.Fatalf("Locale/LogLevel = %q/%q", cfg.Locale, cfg.LogLevel)
	}
	want := carousel.Config{ItemWidth: 180, ItemHeight: 295, ItemLength: 8, Gap: 12, ViewingCount: 3}
	if cfg.Carousel != want {
		t.Fatalf("Carousel = %#v, want %#v", cfg.Carousel, want)
	}
	if cfg.CellWidth != 6 || cfg.CellHeight != defaultCellHeight {
		t.Fatalf("cells = %vx%v, want 6x%v", cfg.CellWidth, cfg.CellHeight, defaultCellHeight)
	}
}

func TestLoad_EmptyStringsUseDefaults(t *testing.T) {
	path := writeConfig(t, `
locale = "   "
log_level = ""
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Locale != defaultLocale || cfg.LogLevel != defaultLogLevel {
		t.Fatalf("Locale/LogLevel = %q/%q, want defaults", cfg.Locale, cfg.LogLevel)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := writeConfig(t, `locale = [`)
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_RejectsBadGeometry(t *testing.T) {
	path := writeConfig(t, `
[carousel]
item_width = 0
`)
	_, err := Load(path)
	if !errors.Is(err, carousel.ErrConfiguration) {
		t.Fatalf("Load error = %v, want ErrConfiguration", err)
	}
}

func TestLoad_RejectsBadCells(t *testing.T) {
	path := writeConfig(t, `
[cells]
height = -1
`)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "cells.height") {
		t.Fatalf("Load error = %v, want cells.height error", err)
	}
}

func TestSearchPaths(t *testing.T) {
	if got := SearchPaths("/etc/carousel.toml"); len(got) != 1 || got[0] != "/etc/carousel.toml" {
		t.Fatalf("SearchPaths(explicit) = %v", got)
	}
	got := SearchPaths(" ")
	if len(got) != 2 || got[0] != DefaultConfigPath() || got[1] != localConfigPath {
		t.Fatalf("SearchPaths(\"\") = %v, want [%s %s]", got, DefaultConfigPath(), localConfigPath)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := ExpandPath("   "); err == nil {
		t.Fatalf("ExpandPath returned nil error, want error")
	}
}

func TestLoad_ItemLengthIgnoredWithItemsFile(t *testing.T) {
	withFile := writeConfig(t, `
items_file = "/tmp/cards.toml"

[carousel]
item_length = 0
`)
	if _, err := Load(withFile); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	without := writeConfig(t, `
[carousel]
item_length = 0
`)
	if _, err := Load(without); !errors.Is(err, carousel.ErrConfiguration) {
		t.Fatalf("Load error = %v, want ErrConfiguration", err)
	}
}

func TestLoad_RejectsUnknownLocale(t *testing.T) {
	path := writeConfig(t, `locale = "fr"`)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), `locale "fr"`) {
		t.Fatalf("Load error = %v, want unsupported locale error", err)
	}

	path = writeConfig(t, `locale = "ko-KR"`)
	if _, err := Load(path); err != nil {
		t.Fatalf("Load(ko-KR) returned error: %v", err)
	}
}

func TestLoadWith_OverridesAreExpanded(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := writeConfig(t, `
items_file = "/srv/cards.toml"
log_file = "/var/log/carousel.log"

[carousel]
item_length = 0
`)
	cfg, err := LoadWith(path, Overrides{ItemsFile: " ~/cards.toml ", LogFile: "~/logs/carousel.log"})
	if err != nil {
		t.Fatalf("LoadWith returned error: %v", err)
	}
	if want := filepath.Join(home, "cards.toml"); cfg.ItemsFile != want {
		t.Fatalf("ItemsFile = %q, want %q", cfg.ItemsFile, want)
	}
	if want := filepath.Join(home, "logs", "carousel.log"); cfg.LogFile != want {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, want)
	}

	cfg, err = LoadWith(path, Overrides{})
	if err != nil {
		t.Fatalf("LoadWith returned error: %v", err)
	}
	if cfg.ItemsFile != "/srv/cards.toml" {
		t.Fatalf("ItemsFile = %q, want the file value", cfg.ItemsFile)
	}
}
