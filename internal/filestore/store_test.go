package filestore

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestStore_OpenExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := New().Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !f.Exists || string(f.Content) != "hello\n" {
		t.Errorf("file = %+v", f)
	}
	if f.Stat.Size != 6 || f.Stat.Mode != 0o600 {
		t.Errorf("stat = %+v", f.Stat)
	}
}

func TestStore_OpenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")

	f, err := New().Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if f.Exists || len(f.Content) != 0 || f.Path != path {
		t.Errorf("file = %+v", f)
	}
}

func TestStore_OpenErrors(t *testing.T) {
	dir := t.TempDir()

	large := filepath.Join(dir, "large.txt")
	if err := os.WriteFile(large, []byte(strings.Repeat("x", 100)), 0o644); err != nil {
		t.Fatal(err)
	}
	binary := filepath.Join(dir, "binary.dat")
	if err := os.WriteFile(binary, []byte{0x7f, 'E', 'L', 'F', 0, 1}, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want error
	}{
		{"directory", dir, ErrIsDirectory},
		{"too large", large, ErrFileTooLarge},
		{"binary", binary, ErrBinaryFile},
	}

	store := New(WithMaxFileSize(50))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Open(tt.path)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Open() = %v, want %v", err, tt.want)
			}
			var pe *PathError
			if !errors.As(err, &pe) || pe.Op != "open" {
				t.Errorf("expected *PathError with op open, got %#v", err)
			}
		})
	}
}

func TestStore_SaveNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	st, err := New().Save(path, strings.NewReader("one\ntwo"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "one\ntwo" {
		t.Errorf("content = %q", data)
	}
	if st.Size != 7 || st.Mode != 0o644 {
		t.Errorf("stat = %+v", st)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestStore_SaveKeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.sh")
	if err := os.WriteFile(path, []byte("old"), 0o755); err != nil {
		t.Fatal(err)
	}

	st, err := New().Save(path, strings.NewReader("new"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if st.Mode != 0o755 {
		t.Errorf("mode = %v, want 0755", st.Mode)
	}
}

type errWriterTo struct{ err error }

func (e errWriterTo) WriteTo(w io.Writer) (int64, error) {
	_, _ = w.Write([]byte("partial"))
	return 7, e.err
}

func TestStore_SaveFailureKeepsOriginal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keep.txt")
	if err := os.WriteFile(path, []byte("original"), 0o644); err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	if _, err := New().Save(path, errWriterTo{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("Save() = %v, want boom", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "original" {
		t.Errorf("content = %q, original should survive", data)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %v", entries)
	}
}

func TestStore_SaveNoPath(t *testing.T) {
	if _, err := New().Save("", strings.NewReader("x")); !errors.Is(err, ErrNoPath) {
		t.Errorf("Save(\"\") = %v", err)
	}
}

func TestStore_Changed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watched.txt")
	store := New()

	st, err := store.Save(path, strings.NewReader("v1"))
	if err != nil {
		t.Fatal(err)
	}
	if changed, err := store.Changed(path, st); err != nil || changed {
		t.Fatalf("Changed() = %v, %v right after save", changed, err)
	}

	later := st.ModTime.Add(2 * time.Second)
	if err := os.WriteFile(path, []byte("v2 longer"), 0o644); err != nil {
		t.Fatal(err)
	}
	_ = os.Chtimes(path, later, later)
	if changed, _ := store.Changed(path, st); !changed {
		t.Error("expected change after external write")
	}

	_ = os.Remove(path)
	if changed, _ := store.Changed(path, st); !changed {
		t.Error("expected removal to count as a change")
	}
	if changed, _ := store.Changed(path, Stat{}); changed {
		t.Error("missing file that never existed should not count as changed")
	}
}

func TestIsBinary(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    bool
	}{
		{"empty", nil, false},
		{"text", []byte("hello\tworld\r\n"), false},
		{"nul", []byte("abc\x00def"), true},
		{"controls", []byte("\x01\x02\x03abcdefg"), true},
		{"few controls", []byte("\x1b[0mplain text line here"), false},
	}

	for _, tt := range tests {
		if got := IsBinary(tt.content); got != tt.want {
			t.Errorf("IsBinary(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
