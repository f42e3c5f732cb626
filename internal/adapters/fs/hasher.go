package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Scanner = (*Hasher)(nil)

const defaultBufferSize = 32 * 1024

var bufferPool = sync.Pool{
	New: func() any {
		buffer := make([]byte, defaultBufferSize)
		return &buffer
	},
}

// Hasher computes SHA-256 digests of the dependency files found by a Walker.
type Hasher struct {
	fs     afero.Fs
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(fsys afero.Fs, walker *Walker) *Hasher {
	return &Hasher{fs: fsys, walker: walker}
}

// ComputeFileHash returns the lowercase hex SHA-256 of a file's content.
func (h *Hasher) ComputeFileHash(path string) (string, error) {
	f, err := h.fs.Open(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	bufPtr, _ := bufferPool.Get().(*[]byte)
	defer bufferPool.Put(bufPtr)

	digest := sha256.New()
	if _, err := io.CopyBuffer(digest, f, *bufPtr); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}

// Scan hashes every dependency file below root up to depthLimit directory levels.
func (h *Hasher) Scan(root string, depthLimit int, warn ports.WarnFunc) (map[string]string, error) {
	if warn == nil {
		warn = func(string) {}
	}

	result := make(map[string]string)
	for rel, err := range h.walker.WalkMatching(root, depthLimit) {
		if err != nil {
			var skipped *SkippedDirError
			if errors.As(err, &skipped) {
				warn("Failed to list directory, its files will not be part of the checksum: " + skipped.Path)
				continue
			}
			return nil, err
		}

		path := filepath.Join(root, filepath.FromSlash(rel))
		info, statErr := h.fs.Stat(path)
		if statErr != nil || !info.Mode().IsRegular() {
			warn("File not found or is not a valid file: " + path)
			continue
		}

		digest, hashErr := h.ComputeFileHash(path)
		if hashErr != nil {
			warn("Failed to read file, it will not be part of the checksum: " + path)
			continue
		}
		result[rel] = digest
	}

	return result, nil
}
