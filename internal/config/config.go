package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/dshills/linedit/internal/config/loader"
	"github.com/dshills/linedit/internal/engine/document"
	"github.com/dshills/linedit/internal/engine/gap"
	"github.com/dshills/linedit/internal/logging"
)

// DefaultEnvPrefix is the prefix of environment overrides.
const DefaultEnvPrefix = "LINEDIT_"

// Config is the resolved linedit configuration.
type Config struct {
	Editor   EditorConfig
	Buffer   BufferConfig
	Viewport ViewportConfig
	Logging  LoggingConfig
	Debug    bool

	// Sources lists the files and layers that contributed, lowest first.
	Sources []string
	// Unknown lists setting paths that were present but not recognized.
	Unknown []string
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			TabWidth: document.DefaultTabWidth,
		},
		Buffer: BufferConfig{
			InitialSize: gap.DefaultInitialSize,
			GrowSize:    gap.DefaultGrowSize,
		},
		Viewport: ViewportConfig{
			Rows: document.DefaultRows,
			Cols: document.DefaultCols,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(os.TempDir(), "linedit.log"),
		},
		Sources: []string{"defaults"},
	}
}

type loadOptions struct {
	fs            loader.FileSystem
	file          string
	userConfigDir string
	envPrefix     string
	useEnv        bool
	environ       func() []string
}

// Option configures Load.
type Option func(*loadOptions)

// WithFile loads the given config file instead of searching the user
// config directory. A missing file is an error.
func WithFile(path string) Option {
	return func(o *loadOptions) {
		o.file = path
	}
}

// WithUserConfigDir sets the directory searched for config.toml and
// config.yaml.
func WithUserConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.userConfigDir = dir
	}
}

// WithFileSystem sets the file system used to read config files.
func WithFileSystem(fs loader.FileSystem) Option {
	return func(o *loadOptions) {
		o.fs = fs
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(o *loadOptions) {
		o.envPrefix = prefix
	}
}

// WithoutEnv disables environment overrides.
func WithoutEnv() Option {
	return func(o *loadOptions) {
		o.useEnv = false
	}
}

// withEnviron replaces os.Environ for tests.
func withEnviron(fn func() []string) Option {
	return func(o *loadOptions) {
		o.environ = fn
	}
}

// Load builds the configuration from defaults, the config file and the
// environment, then validates it.
func Load(opts ...Option) (*Config, error) {
	o := &loadOptions{
		fs:            loader.DefaultFS(),
		userConfigDir: defaultUserConfigDir(),
		envPrefix:     DefaultEnvPrefix,
		useEnv:        true,
	}
	for _, opt := range opts {
		opt(o)
	}

	cfg := Default()

	path, err := o.configPath()
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, err := loader.ForPath(o.fs, path).Load()
		if err != nil {
			return nil, err
		}
		if err := cfg.apply(data); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		cfg.Sources = append(cfg.Sources, path)
	}

	if o.useEnv {
		env := loader.NewEnvLoader(o.envPrefix)
		if o.environ != nil {
			env.SetEnviron(o.environ)
		}
		data, err := env.Load()
		if err != nil {
			return nil, err
		}
		if len(data) > 0 {
			if err := cfg.apply(data); err != nil {
				return nil, fmt.Errorf("environment: %w", err)
			}
			cfg.Sources = append(cfg.Sources, "environment")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configPath resolves the config file to read, or "" for none.
func (o *loadOptions) configPath() (string, error) {
	if o.file != "" {
		if _, err := o.fs.Stat(o.file); err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("%w: %s", ErrFileNotFound, o.file)
			}
			return "", fmt.Errorf("checking config file %s: %w", o.file, err)
		}
		return o.file, nil
	}
	if o.userConfigDir == "" {
		return "", nil
	}
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(o.userConfigDir, name)
		if _, err := o.fs.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func defaultUserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "linedit")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "linedit")
}

// apply overlays a nested settings map onto c.
func (c *Config) apply(data map[string]any) error {
	flat := loader.Flatten(data)
	paths := make([]string, 0, len(flat))
	for path := range flat {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		err := c.Set(path, flat[path])
		if errors.Is(err, ErrSettingNotFound) {
			c.Unknown = append(c.Unknown, path)
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Document returns the document construction parameters.
func (c *Config) Document() document.Config {
	return document.Config{
		TabWidth:    c.Editor.TabWidth,
		Rows:        c.Viewport.Rows,
		Cols:        c.Viewport.Cols,
		InitialSize: c.Buffer.InitialSize,
		GrowSize:    c.Buffer.GrowSize,
		MaxSize:     c.Buffer.MaxSize,
		Debug:       c.Debug,
	}
}

// LogLevel returns the parsed logging level.
func (c *Config) LogLevel() logging.Level {
	return logging.ParseLevel(c.Logging.Level)
}
