package loader

import (
	"errors"
	"strings"
	"testing"
)

func TestYAMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.yaml", `
buffer:
  initial_size: 64
  max_size: 4096
viewport:
  cols: 100
`)

	config, err := NewYAMLLoaderWithFS(memfs, "/config.yaml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	buffer, ok := config["buffer"].(map[string]any)
	if !ok {
		t.Fatalf("buffer is %T, want map[string]any", config["buffer"])
	}
	if buffer["initial_size"] != 64 {
		t.Errorf("initial_size = %v (%T)", buffer["initial_size"], buffer["initial_size"])
	}
}

func TestYAMLLoader_LoadNonExistent(t *testing.T) {
	config, err := NewYAMLLoaderWithFS(NewMemFS(), "/missing.yaml").Load()
	if err != nil || config != nil {
		t.Errorf("Load() = %v, %v; want nil, nil", config, err)
	}
}

func TestYAMLLoader_LoadInvalid(t *testing.T) {
	_, err := NewYAMLLoader("").LoadFromReader(strings.NewReader("editor: [unclosed"))
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Path != "<reader>" {
		t.Errorf("expected *ParseError from reader, got %v", err)
	}
}
