package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewLoader_NoFileUsesPlaceholders(t *testing.T) {
	items, err := newLoader("", 5)()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 5 || items[0].Title != "Item 1" {
		t.Fatalf("items = %#v, want 5 placeholders", items)
	}
}

func TestNewLoader_EmptyFileUsesPlaceholders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.toml")
	if err := os.WriteFile(path, []byte("# nothing yet\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	items, err := newLoader(path, 3)()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
}

func TestNewLoader_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.toml")
	content := "[[item]]\ntitle = \"Blue Bottle\"\nsubtitle = \"Single origin\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	items, err := newLoader(path, 8)()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Blue Bottle" || items[0].Subtitle != "Single origin" {
		t.Fatalf("items = %#v", items)
	}
}

func TestNewLoader_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.toml")
	if err := os.WriteFile(path, []byte("[[item]\ntitle = "), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := newLoader(path, 8)(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadConfig_ExpandsPathOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := loadConfig(Options{
		ConfigPath: filepath.Join(t.TempDir(), "absent.toml"),
		ItemsPath:  "~/cards.toml",
		LogPath:    "~/carousel.log",
	})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if want := filepath.Join(home, "cards.toml"); cfg.ItemsFile != want {
		t.Fatalf("ItemsFile = %q, want %q", cfg.ItemsFile, want)
	}
	if want := filepath.Join(home, "carousel.log"); cfg.LogFile != want {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, want)
	}
}
