// Package blobstore keeps compressed recording audio on the local file
// system, one file per recording fingerprint.
package blobstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/UAlbertaALTLab/recording-validation-interface-sub000/internal/domain"
)

// Extension of every stored blob.
const Extension = ".m4a"

var keyRe = regexp.MustCompile(`^[0-9a-f]{64}$`)

// FS stores blobs under a root directory, fanned out by the first two
// characters of the key.
type FS struct {
	root string
}

// NewFS creates the root directory if needed.
func NewFS(root string) (*FS, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("blobstore: create root: %w", err)
	}
	return &FS{root: root}, nil
}

// Ref is the path of a blob relative to the root. It is what recordings
// store and what audio URLs are built from.
func Ref(key string) string {
	return key[:2] + "/" + key + Extension
}

func (s *FS) path(key string) (string, error) {
	if !keyRe.MatchString(key) {
		return "", domain.NewValidationError("key", "must be a hex sha-256 digest")
	}
	return filepath.Join(s.root, filepath.FromSlash(Ref(key))), nil
}

// Put writes data under key, replacing any previous blob, and returns its
// ref. The blob appears atomically.
func (s *FS) Put(ctx context.Context, key string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dst, err := s.path(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("blobstore: put %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".put-*")
	if err != nil {
		return "", fmt.Errorf("blobstore: put %s: %w", key, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("blobstore: put %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("blobstore: put %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("blobstore: put %s: %w", key, err)
	}
	return Ref(key), nil
}

// Exists reports whether a blob is stored under key.
func (s *FS) Exists(key string) bool {
	p, err := s.path(key)
	if err != nil {
		return false
	}
	_, err = os.Stat(p)
	return err == nil
}
