package clipboard

import (
	"errors"
	"testing"
)

type brokenProvider struct{ sets int }

func (b *brokenProvider) Get() (string, error) { return "", errors.New("no clipboard") }

func (b *brokenProvider) Set(string) error {
	b.sets++
	return errors.New("no clipboard")
}

func TestMemory(t *testing.T) {
	var m Memory
	if s, err := m.Get(); err != nil || s != "" {
		t.Errorf("empty Get() = %q, %v", s, err)
	}
	if err := m.Set("hello"); err != nil {
		t.Fatal(err)
	}
	if s, _ := m.Get(); s != "hello" {
		t.Errorf("Get() = %q, want hello", s)
	}
}

func TestFallback_UsesPrimary(t *testing.T) {
	primary := &Memory{}
	f := NewFallback(primary)

	if err := f.Set("line"); err != nil {
		t.Fatal(err)
	}
	if s, _ := primary.Get(); s != "line" {
		t.Errorf("primary = %q, want line", s)
	}

	_ = primary.Set("from elsewhere")
	if s, _ := f.Get(); s != "from elsewhere" {
		t.Errorf("Get() = %q, want primary content", s)
	}
}

func TestFallback_BrokenPrimary(t *testing.T) {
	primary := &brokenProvider{}
	f := NewFallback(primary)

	if err := f.Set("kept"); err != nil {
		t.Fatalf("Set() = %v, want nil", err)
	}
	if primary.sets != 1 {
		t.Errorf("primary Set called %d times", primary.sets)
	}
	if s, err := f.Get(); err != nil || s != "kept" {
		t.Errorf("Get() = %q, %v, want local copy", s, err)
	}
}

func TestNewFallback_NilPrimary(t *testing.T) {
	f := NewFallback(nil)
	if _, ok := f.primary.(System); !ok {
		t.Errorf("primary = %T, want System", f.primary)
	}
}
