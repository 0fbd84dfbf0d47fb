// Package config provides the configuration system for linedit.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority (Config.Set)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← LINEDIT_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/linedit/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The config file may be TOML or YAML; the format follows the extension.
//
// # Settings
//
//	editor.tab_width       rendered width of a tab (1-16)
//	buffer.initial_size    initial gap buffer capacity per line
//	buffer.grow_size       slots added when a gap buffer fills up
//	buffer.max_size        capacity cap per line, 0 for unlimited
//	viewport.rows          viewport height before the terminal reports one
//	viewport.cols          viewport width before the terminal reports one
//	logging.level          debug, info, warn or error
//	logging.file           log file path, empty to discard logs
//	debug                  validate invariants after every edit
//
// # Basic Usage
//
//	cfg, err := config.Load(config.WithFile(path))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc := cfg.Document()
package config
