package app

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/dshills/linedit/internal/engine"
	"github.com/dshills/linedit/internal/filestore"
)

// Document is the open file together with its editor state.
type Document struct {
	// Path is the absolute file path (empty for scratch buffers).
	Path string

	// Name is the display name (file name or empty for scratch).
	Name string

	Engine *engine.Engine

	// disk is the file state at the last load or save.
	disk filestore.Stat
}

// openDocument loads path through store. An empty path gives a scratch
// document.
func openDocument(store *filestore.Store, path string, opts ...engine.Option) (*Document, error) {
	if path == "" {
		eng, err := engine.New(opts...)
		if err != nil {
			return nil, err
		}
		return &Document{Engine: eng}, nil
	}

	f, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	eng, err := engine.NewFromReader(bytes.NewReader(f.Content), opts...)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}

	doc := &Document{
		Path:   f.Path,
		Name:   filepath.Base(f.Path),
		Engine: eng,
	}
	if f.Exists {
		doc.disk = f.Stat
	}
	return doc, nil
}

// IsScratch returns true if this is a scratch buffer (no file path).
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// IsModified returns true if the document has unsaved changes.
func (d *Document) IsModified() bool {
	return d.Engine.Modified()
}

// Save writes the document through store. The revision that was written
// is marked saved, so edits made while saving keep the document modified.
func (d *Document) Save(store *filestore.Store) error {
	if d.IsScratch() {
		return filestore.ErrNoPath
	}

	text, rev := d.Engine.Snapshot()
	st, err := store.Save(d.Path, strings.NewReader(text))
	if err != nil {
		return err
	}
	d.disk = st
	d.Engine.MarkSaved(rev)
	return nil
}

// Reload replaces the content with what is on disk.
func (d *Document) Reload(f *filestore.File) error {
	if err := d.Engine.Load(bytes.NewReader(f.Content)); err != nil {
		return err
	}
	d.disk = f.Stat
	return nil
}
