package storage

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(t.TempDir(), Options{
		BaseFolder:        "uploads/reports",
		MaxSizeBytes:      10 << 20,
		AllowedExtensions: []string{".jpg", ".jpeg", ".png"},
	})
}

func TestStore_Save(t *testing.T) {
	store := newTestStore(t)
	content := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02, 0x03}

	url, err := store.Save(bytes.NewReader(content), "Photo.JPG")
	require.NoError(t, err)

	now := time.Now().UTC()
	pattern := fmt.Sprintf(`^/uploads/reports/%04d/%02d/[0-9a-f]{32}\.jpg$`, now.Year(), int(now.Month()))
	assert.Regexp(t, regexp.MustCompile(pattern), url)

	abs := filepath.Join(store.webRoot, filepath.FromSlash(url[1:]))
	written, err := os.ReadFile(abs)
	require.NoError(t, err)
	assert.Equal(t, content, written)
}

func TestStore_SaveGeneratesUniqueNames(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Save(bytes.NewReader([]byte("a")), "img.png")
	require.NoError(t, err)
	second, err := store.Save(bytes.NewReader([]byte("b")), "img.png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestStore_ExtensionAllowed(t *testing.T) {
	store := newTestStore(t)

	assert.True(t, store.ExtensionAllowed("photo.jpg"))
	assert.True(t, store.ExtensionAllowed("PHOTO.JPEG"))
	assert.True(t, store.ExtensionAllowed("chart.png"))
	assert.False(t, store.ExtensionAllowed("report.pdf"))
	assert.False(t, store.ExtensionAllowed("noextension"))
}

func TestStore_Remove(t *testing.T) {
	store := newTestStore(t)

	url, err := store.Save(bytes.NewReader([]byte("payload")), "img.jpg")
	require.NoError(t, err)
	abs := filepath.Join(store.webRoot, filepath.FromSlash(url[1:]))

	store.Remove(url)
	_, statErr := os.Stat(abs)
	assert.True(t, os.IsNotExist(statErr))

	// Deleting again is a no-op.
	store.Remove(url)
}

func TestStore_RemoveLeavesUnmanagedPathsAlone(t *testing.T) {
	store := newTestStore(t)

	outside := filepath.Join(store.webRoot, "appsettings.json")
	require.NoError(t, os.WriteFile(outside, []byte("{}"), 0o644))

	store.Remove("/appsettings.json")
	store.Remove("")
	store.Remove("https://cdn.example.com/uploads/x.jpg")

	_, err := os.Stat(outside)
	assert.NoError(t, err)
}
