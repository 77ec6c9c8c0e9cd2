package infra

// storage.go — receipt ("comprovante") file storage with staged writes.
// Uploads are written to a staging directory first and only promoted into the
// final directory after the database transaction commits; any failure along
// the way discards the staged file, so a rolled-back purchase never leaves an
// orphaned upload behind.

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrExtensaoNaoPermitida is returned for files outside the allow-list.
var ErrExtensaoNaoPermitida = errors.New("tipo de arquivo não permitido")

// allowedExtensions is the receipt upload allow-list.
var allowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"pdf":  {},
}

// normalizeExt lowercases and trims the dot from a file extension.
func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// ComprovanteStorage stores uploaded receipts under baseDir, staging them
// under baseDir/staging until promoted.
type ComprovanteStorage struct {
	baseDir    string
	stagingDir string
}

func NewComprovanteStorage(baseDir string) *ComprovanteStorage {
	return &ComprovanteStorage{
		baseDir:    baseDir,
		stagingDir: filepath.Join(baseDir, "staging"),
	}
}

// Stage validates the extension against the allow-list, generates a
// collision-resistant filename and writes the content to the staging area.
// Returns the staged path to later Promote or Discard.
func (s *ComprovanteStorage) Stage(originalName string, r io.Reader) (string, error) {
	ext := normalizeExt(filepath.Ext(originalName))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: .%s", ErrExtensaoNaoPermitida, ext)
	}

	if err := os.MkdirAll(s.stagingDir, 0o755); err != nil {
		return "", fmt.Errorf("storage: create staging dir: %w", err)
	}

	name := uuid.New().String() + "." + ext
	staged := filepath.Join(s.stagingDir, name)

	f, err := os.Create(staged)
	if err != nil {
		return "", fmt.Errorf("storage: create staged file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(staged)
		return "", fmt.Errorf("storage: write staged file: %w", err)
	}
	return staged, nil
}

// Promote moves a staged file into the final directory. Called only after the
// owning transaction has committed.
func (s *ComprovanteStorage) Promote(staged string) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("storage: create dir: %w", err)
	}
	final := filepath.Join(s.baseDir, filepath.Base(staged))
	if err := os.Rename(staged, final); err != nil {
		return "", fmt.Errorf("storage: promote: %w", err)
	}
	return final, nil
}

// Discard removes a staged file after a failed submission. Best effort.
func (s *ComprovanteStorage) Discard(staged string) {
	if staged == "" {
		return
	}
	_ = os.Remove(staged)
}
