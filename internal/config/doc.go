// Package config loads carousel's TOML configuration.
//
// # Configuration Discovery
//
// Load reads, in order, with later files overriding earlier keys:
//
//  1. $XDG_CONFIG_HOME/carousel/config.toml
//  2. ./carousel.toml
//
// An explicit path replaces both. Files that do not exist are skipped, so
// the program runs with no configuration at all.
//
// # TOML Format
//
//	items_file = "~/.config/carousel/items.toml"
//	locale = "en"          # notice language: en, ko
//	log_file = ""          # unset: $XDG_STATE_HOME/carousel/carousel.log, "": off
//	log_level = "info"     # debug, info, warn, error, off
//
//	[carousel]
//	item_width = 230       # px
//	item_height = 295      # px
//	gap = 8                # px
//	viewing_count = 2
//	item_length = 8        # only used without an items file
//
//	[cells]
//	width = 10             # px per terminal column
//	height = 40            # px per terminal row
//
// # Validation
//
// Geometry is checked with carousel.Config.Validate, so a zero item width
// fails at startup with an error matching carousel.ErrConfiguration instead
// of producing a broken layout. Tilde expansion applies to items_file and
// log_file.
package config
