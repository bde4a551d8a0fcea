package upload

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// GenerateFilename builds a collision-resistant filename from the current
// timestamp plus randomness, preserving the original extension when one is
// present.
func GenerateFilename(original string) string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)

	ext := filepath.Ext(original)
	return fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), hex.EncodeToString(buf), ext)
}

// Save writes data into dir under a generated filename and returns the full
// path. The directory is created on demand.
func Save(dir, originalName string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, GenerateFilename(originalName))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
