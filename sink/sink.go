// Package sink provides output destinations for generated Go files.
package sink

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// OutputSink receives generated file content.
// Implementations must be safe for concurrent calls.
type OutputSink interface {
	// WriteFile stores content under a relative, slash-separated name.
	WriteFile(ctx context.Context, name string, content []byte) error
}

// FilesystemSink writes files below a root directory.
type FilesystemSink struct {
	// Root is the base directory for all writes.
	Root string

	// Mode is the file permission mode (default: 0644).
	Mode os.FileMode

	// Overwrite replaces existing files. When false, writing a file that
	// already exists fails.
	Overwrite bool

	// SkipUnchanged leaves a file alone when its current content is
	// byte-identical, so its modification time does not move.
	SkipUnchanged bool
}

// NewFilesystemSink creates a FilesystemSink that overwrites changed files
// below root and leaves identical ones untouched.
func NewFilesystemSink(root string) *FilesystemSink {
	return &FilesystemSink{
		Root:          root,
		Mode:          0o644,
		Overwrite:     true,
		SkipUnchanged: true,
	}
}

// WriteFile writes content to name within Root. Parent directories are
// created as needed and the file is replaced atomically through a
// temporary file in the same directory.
func (s *FilesystemSink) WriteFile(ctx context.Context, name string, content []byte) error {
	if err := ValidatePath(name); err != nil {
		return fmt.Errorf("invalid path %q: %w", name, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := s.resolve(name)
	if err != nil {
		return err
	}

	if s.SkipUnchanged {
		if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, content) {
			return nil
		}
	}

	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	tmp, err := writeTemp(dir, content, s.mode())
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	if s.Overwrite {
		if err := os.Rename(tmp, target); err != nil {
			_ = os.Remove(tmp)
			return fmt.Errorf("rename temp file: %w", err)
		}
		return nil
	}

	// Link fails atomically when the target exists.
	err = os.Link(tmp, target)
	_ = os.Remove(tmp)
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("file already exists: %q", name)
	}
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	return nil
}

func (s *FilesystemSink) mode() os.FileMode {
	if s.Mode == 0 {
		return 0o644
	}
	return s.Mode
}

// resolve joins name onto Root and rejects results outside Root.
func (s *FilesystemSink) resolve(name string) (string, error) {
	root, err := filepath.Abs(s.Root)
	if err != nil {
		return "", fmt.Errorf("resolve root directory: %w", err)
	}
	target := filepath.Join(root, filepath.FromSlash(name))
	// A root of "/" already ends in a separator.
	rel, err := filepath.Rel(root, target)
	if err != nil || rel == "." || !filepath.IsLocal(rel) {
		return "", fmt.Errorf("path escapes root directory: %q", name)
	}
	return target, nil
}

// writeTemp writes content to a new .dyngen-*.tmp file in dir and
// returns its path. The file is removed on failure.
func writeTemp(dir string, content []byte, mode os.FileMode) (string, error) {
	f, err := os.CreateTemp(dir, ".dyngen-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	name := f.Name()
	_, werr := f.Write(content)
	cerr := f.Close()
	if err := errors.Join(werr, cerr); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Chmod(name, mode); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("set file mode: %w", err)
	}
	return name, nil
}

// MemorySink keeps generated files in memory.
type MemorySink struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

// WriteFile stores a copy of content under name.
func (s *MemorySink) WriteFile(ctx context.Context, name string, content []byte) error {
	if err := ValidatePath(name); err != nil {
		return fmt.Errorf("invalid path %q: %w", name, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = bytes.Clone(content)
	return nil
}

// Get returns a copy of one file, or nil if it was never written.
func (s *MemorySink) Get(name string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return bytes.Clone(s.files[name])
}

// Names returns the stored file names in sorted order.
func (s *MemorySink) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Reset clears all stored files.
func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = make(map[string][]byte)
}

// WriterSink streams every file to a single writer, such as os.Stdout.
// When Header is set, each file is preceded by a "// file: <name>" line.
type WriterSink struct {
	mu     sync.Mutex
	w      io.Writer
	Header bool
}

// NewWriterSink creates a WriterSink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// WriteFile writes content to the underlying writer.
func (s *WriterSink) WriteFile(ctx context.Context, name string, content []byte) error {
	if err := ValidatePath(name); err != nil {
		return fmt.Errorf("invalid path %q: %w", name, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Header {
		if _, err := fmt.Fprintf(s.w, "// file: %s\n", name); err != nil {
			return err
		}
	}
	_, err := s.w.Write(content)
	return err
}

// ValidatePath checks that name is a clean, relative, slash-separated
// path that stays inside its root.
func ValidatePath(name string) error {
	switch {
	case name == "":
		return errors.New("path is empty")
	case strings.HasPrefix(name, "/") || filepath.IsAbs(name) || hasDriveLetter(name):
		return errors.New("absolute paths not allowed")
	case strings.Contains(name, `\`):
		return errors.New("paths must use forward slashes")
	}
	for _, elem := range strings.Split(name, "/") {
		if elem == ".." {
			return errors.New("path traversal not allowed")
		}
	}
	if cleaned := path.Clean(name); cleaned != name {
		return fmt.Errorf("path is not clean (expected %q, got %q)", cleaned, name)
	}
	if name == "." {
		return errors.New("path names a directory")
	}
	return nil
}

func hasDriveLetter(name string) bool {
	if len(name) < 2 || name[1] != ':' {
		return false
	}
	c := name[0] | 0x20
	return c >= 'a' && c <= 'z'
}
