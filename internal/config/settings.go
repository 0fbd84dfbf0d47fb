package config

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/dshills/linedit/internal/logging"
)

// setting binds a dotted path to a Config field.
type setting struct {
	kind string
	set  func(c *Config, v any) bool
}

func intSetting(field func(c *Config) *int) setting {
	return setting{kind: "integer", set: func(c *Config, v any) bool {
		n, ok := toInt(v)
		if ok {
			*field(c) = n
		}
		return ok
	}}
}

func boolSetting(field func(c *Config) *bool) setting {
	return setting{kind: "boolean", set: func(c *Config, v any) bool {
		b, ok := toBool(v)
		if ok {
			*field(c) = b
		}
		return ok
	}}
}

func stringSetting(field func(c *Config) *string) setting {
	return setting{kind: "string", set: func(c *Config, v any) bool {
		s, ok := v.(string)
		if ok {
			*field(c) = s
		}
		return ok
	}}
}

var settings = map[string]setting{
	"editor.tab_width":    intSetting(func(c *Config) *int { return &c.Editor.TabWidth }),
	"buffer.initial_size": intSetting(func(c *Config) *int { return &c.Buffer.InitialSize }),
	"buffer.grow_size":    intSetting(func(c *Config) *int { return &c.Buffer.GrowSize }),
	"buffer.max_size":     intSetting(func(c *Config) *int { return &c.Buffer.MaxSize }),
	"viewport.rows":       intSetting(func(c *Config) *int { return &c.Viewport.Rows }),
	"viewport.cols":       intSetting(func(c *Config) *int { return &c.Viewport.Cols }),
	"logging.level":       stringSetting(func(c *Config) *string { return &c.Logging.Level }),
	"logging.file":        stringSetting(func(c *Config) *string { return &c.Logging.File }),
	"debug":               boolSetting(func(c *Config) *bool { return &c.Debug }),
}

// Paths returns every known setting path, sorted.
func Paths() []string {
	paths := make([]string, 0, len(settings))
	for p := range settings {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Set assigns value to the setting at path. Numbers and booleans may be
// given as strings. It returns ErrSettingNotFound for an unknown path and a
// *ValidationError when the value has the wrong type.
func (c *Config) Set(path string, value any) error {
	s, ok := settings[path]
	if !ok {
		return ErrSettingNotFound
	}
	if !s.set(c, value) {
		return &ValidationError{
			Path:    path,
			Message: "expected " + s.kind,
			Value:   value,
			Code:    ErrCodeTypeMismatch,
		}
	}
	return nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	}
	return 0, false
}

func toBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return parsed, err == nil
	}
	return false, false
}

// Validate checks value ranges and returns ValidationErrors listing every
// problem found.
func (c *Config) Validate() error {
	var errs ValidationErrors
	add := func(path, msg string, value any, code ValidationErrorCode) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value, Code: code})
	}

	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		add("editor.tab_width", "must be between 1 and 16", c.Editor.TabWidth, ErrCodeOutOfRange)
	}
	if c.Buffer.InitialSize < 1 {
		add("buffer.initial_size", "must be positive", c.Buffer.InitialSize, ErrCodeOutOfRange)
	}
	if c.Buffer.GrowSize < 1 {
		add("buffer.grow_size", "must be positive", c.Buffer.GrowSize, ErrCodeOutOfRange)
	}
	if c.Buffer.MaxSize < 0 || (c.Buffer.MaxSize > 0 && c.Buffer.MaxSize < 2) {
		add("buffer.max_size", "must be 0 (unlimited) or at least 2", c.Buffer.MaxSize, ErrCodeOutOfRange)
	}
	if c.Viewport.Rows < 1 {
		add("viewport.rows", "must be positive", c.Viewport.Rows, ErrCodeOutOfRange)
	}
	if c.Viewport.Cols < 1 {
		add("viewport.cols", "must be positive", c.Viewport.Cols, ErrCodeOutOfRange)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		add("logging.level", "must be debug, info, warn or error", c.Logging.Level, ErrCodeInvalidEnum)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
