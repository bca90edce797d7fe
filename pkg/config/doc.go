// Package config handles configuration management for gildedrose.
//
// Configuration is layered with koanf, lowest precedence first:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config directory: config.toml, or config.yaml / config.yml
//  3. GILDEDROSE_* environment variables, where the first underscore
//     separates the section from the key (GILDEDROSE_REPORT_SHOW_CATEGORY
//     sets report.show_category)
//
// The user config directory is $GILDEDROSE_CONFIG_DIR when set, otherwise
// $XDG_CONFIG_HOME/gildedrose.
package config
