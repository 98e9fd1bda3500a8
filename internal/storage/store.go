package storage

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// publicPrefix is the root-relative prefix under which uploads are served.
// Only paths beneath it are ever deleted from disk.
const publicPrefix = "/uploads/"

// Options configures upload validation and placement.
type Options struct {
	// BaseFolder is relative to the web root, e.g. "uploads/reports".
	BaseFolder        string
	MaxSizeBytes      int64
	AllowedExtensions []string
}

// Store writes uploaded images beneath the web root in date-partitioned
// directories and hands back root-relative URLs.
type Store struct {
	webRoot string
	opts    Options
}

// New creates a store rooted at webRoot.
func New(webRoot string, opts Options) *Store {
	return &Store{webRoot: webRoot, opts: opts}
}

// MaxSizeBytes returns the configured business size cap.
func (s *Store) MaxSizeBytes() int64 { return s.opts.MaxSizeBytes }

// ExtensionAllowed reports whether the file's lowercase extension is permitted.
func (s *Store) ExtensionAllowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range s.opts.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Save writes the file under {webRoot}/{BaseFolder}/{yyyy}/{mm} with a
// collision-free name and returns the root-relative URL of the stored file.
func (s *Store) Save(src io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	now := time.Now().UTC()

	relDir := filepath.Join(s.opts.BaseFolder, fmt.Sprintf("%04d", now.Year()), fmt.Sprintf("%02d", int(now.Month())))
	absDir := filepath.Join(s.webRoot, relDir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := strings.ReplaceAll(uuid.New().String(), "-", "") + ext
	absPath := filepath.Join(absDir, name)

	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return "/" + filepath.ToSlash(filepath.Join(relDir, name)), nil
}

// Managed reports whether the URL points into the upload area.
func (s *Store) Managed(url string) bool {
	return strings.HasPrefix(strings.ToLower(url), publicPrefix)
}

// Remove deletes the file behind a previously returned URL, best effort.
// Paths outside the upload area are left alone and failures are only
// logged; callers never see them.
func (s *Store) Remove(url string) {
	if strings.TrimSpace(url) == "" || !s.Managed(url) {
		return
	}
	abs := filepath.Join(s.webRoot, filepath.FromSlash(strings.TrimPrefix(url, "/")))
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		log.Printf("remove old upload %s: %v", url, err)
	}
}
