package media

import (
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// TempDir holds request-scoped upload artifacts. Files placed here must be
// removed on both success and failure paths.
const TempDir = "./public/temp"

// TempPath returns a collision-free temp path preserving the original
// file extension.
func TempPath(originalName string) string {
	return filepath.Join(TempDir, uuid.NewString()+filepath.Ext(originalName))
}

// SafeRemove deletes a temp file, ignoring already-gone files.
func SafeRemove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("temp cleanup %s: %v", path, err)
	}
}

// EnsureTempDir creates the temp directory at startup.
func EnsureTempDir() error {
	return os.MkdirAll(TempDir, 0o755)
}
