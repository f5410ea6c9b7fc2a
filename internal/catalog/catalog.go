// Package catalog loads the ordered item list shown in the carousel.
// Items come from a TOML file of [[item]] tables.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Item is one card in the carousel.
type Item struct {
	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`
}

type file struct {
	Items []Item `toml:"item"`
}

// Load parses the items file at path. A missing file yields no items and no
// error so callers can fall back to placeholders.
func Load(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open items: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode parses items from r, dropping entries without a title.
func Decode(r io.Reader) ([]Item, error) {
	var raw file
	if err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse items: %w", err)
	}

	items := make([]Item, 0, len(raw.Items))
	for _, it := range raw.Items {
		it.Title = strings.TrimSpace(it.Title)
		it.Subtitle = strings.TrimSpace(it.Subtitle)
		if it.Title == "" {
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

// Placeholder returns n numbered items.
func Placeholder(n int) []Item {
	if n <= 0 {
		return nil
	}
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			Title:    "Item " + strconv.Itoa(i+1),
			Subtitle: fmt.Sprintf("%d of %d", i+1, n),
		}
	}
	return items
}

// Equal reports whether two item lists are identical.
func Equal(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
