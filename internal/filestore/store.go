package filestore

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/linedit/internal/logging"
)

// DefaultMaxFileSize is the largest file Open accepts by default.
const DefaultMaxFileSize = 10 * 1024 * 1024

// Stat is the on-disk state of a file at the time it was read or written.
type Stat struct {
	ModTime time.Time
	Size    int64
	Mode    fs.FileMode
}

// File is the result of Open.
type File struct {
	// Path is the absolute path.
	Path string
	// Exists is false when the file was not found and will be created on
	// the first save.
	Exists  bool
	Content []byte
	Stat    Stat
}

// Store opens and saves files.
type Store struct {
	maxFileSize int64
	log         *logging.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithMaxFileSize sets the maximum file size. Zero means unlimited.
func WithMaxFileSize(size int64) Option {
	return func(s *Store) {
		s.maxFileSize = size
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Store) {
		s.log = logging.OrDiscard(l).WithComponent("filestore")
	}
}

// New creates a Store.
func New(opts ...Option) *Store {
	s := &Store{
		maxFileSize: DefaultMaxFileSize,
		log:         logging.Discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open reads the file at path. A missing file is not an error; the returned
// File has Exists set to false and no content.
func (s *Store) Open(path string) (*File, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, &PathError{Op: "open", Path: path, Err: err}
	}

	info, err := os.Stat(absPath)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Info("new file %s", absPath)
		return &File{Path: absPath, Stat: Stat{Mode: 0o644}}, nil
	}
	if err != nil {
		return nil, &PathError{Op: "open", Path: path, Err: err}
	}

	if info.IsDir() {
		return nil, &PathError{Op: "open", Path: path, Err: ErrIsDirectory}
	}
	if s.maxFileSize > 0 && info.Size() > s.maxFileSize {
		return nil, &PathError{Op: "open", Path: path, Err: ErrFileTooLarge}
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, &PathError{Op: "open", Path: path, Err: err}
	}
	if IsBinary(content) {
		return nil, &PathError{Op: "open", Path: path, Err: ErrBinaryFile}
	}

	s.log.Debug("opened %s (%d bytes)", absPath, len(content))
	return &File{
		Path:    absPath,
		Exists:  true,
		Content: content,
		Stat:    statOf(info),
	}, nil
}

// Save writes the content produced by src to path atomically, keeping the
// permissions of an existing file.
func (s *Store) Save(path string, src io.WriterTo) (Stat, error) {
	if path == "" {
		return Stat{}, ErrNoPath
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return Stat{}, &PathError{Op: "save", Path: path, Err: err}
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(absPath); err == nil {
		if info.IsDir() {
			return Stat{}, &PathError{Op: "save", Path: path, Err: ErrIsDirectory}
		}
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*.tmp")
	if err != nil {
		return Stat{}, &PathError{Op: "save", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	fail := func(err error) (Stat, error) {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return Stat{}, &PathError{Op: "save", Path: path, Err: err}
	}

	n, err := src.WriteTo(tmp)
	if err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		return fail(err)
	}
	if err := os.Rename(tmpName, absPath); err != nil {
		_ = os.Remove(tmpName)
		return Stat{}, &PathError{Op: "save", Path: path, Err: err}
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return Stat{}, &PathError{Op: "save", Path: path, Err: err}
	}
	s.log.Info("saved %s (%d bytes)", absPath, n)
	return statOf(info), nil
}

// Changed reports whether the file at path differs in size or modification
// time from since. A file that disappeared counts as changed.
func (s *Store) Changed(path string, since Stat) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return !since.ModTime.IsZero(), nil
	}
	if err != nil {
		return false, &PathError{Op: "stat", Path: path, Err: err}
	}
	return info.Size() != since.Size || !info.ModTime().Equal(since.ModTime), nil
}

func statOf(info fs.FileInfo) Stat {
	return Stat{
		ModTime: info.ModTime(),
		Size:    info.Size(),
		Mode:    info.Mode().Perm(),
	}
}
