// Package depcache implements the Gradle dependency cache invalidation engine.
package depcache

import (
	"crypto/sha256"
	"encoding/hex"
	"maps"
	"slices"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// Merge combines two checksums of the same cache root into one.
// The result is the hex SHA-256 of a followed by b. Stored records depend on this
// exact form, so it must not change.
func Merge(a, b string) string {
	sum := sha256.Sum256([]byte(a + b))
	return hex.EncodeToString(sum[:])
}

// Aggregate collapses per-file digests into a single checksum.
// Entries are hashed in path order, so the result does not depend on map iteration.
func Aggregate(files map[string]string) string {
	h := sha256.New()
	for _, path := range slices.Sorted(maps.Keys(files)) {
		_, _ = h.Write([]byte(path))
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(files[path]))
		_, _ = h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Remap converts checksums keyed by cache location into checksums keyed by the
// identities the host assigned for this build. Locations without an identity were
// never restored and are dropped.
func Remap(
	locationToID map[string]domain.CacheRootID,
	locationToChecksum map[string]string,
) map[domain.CacheRootID]string {
	result := make(map[domain.CacheRootID]string, len(locationToChecksum))
	for location, checksum := range locationToChecksum {
		id, ok := locationToID[location]
		if !ok {
			continue
		}
		result[id] = checksum
	}
	return result
}

// ChecksumBuilder computes the checksum of a project's dependency files.
type ChecksumBuilder struct {
	scanner ports.Scanner
}

// NewChecksumBuilder creates a ChecksumBuilder on top of a Scanner.
func NewChecksumBuilder(scanner ports.Scanner) *ChecksumBuilder {
	return &ChecksumBuilder{scanner: scanner}
}

// Build scans workDir up to depthLimit levels and aggregates the file digests.
func (b *ChecksumBuilder) Build(workDir string, depthLimit int, warn ports.WarnFunc) (string, error) {
	files, err := b.scanner.Scan(workDir, depthLimit, warn)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrChecksumComputationFailed.Error()), "work_dir", workDir)
	}
	return Aggregate(files), nil
}

// Files returns the per-file digests below workDir without aggregating them.
func (b *ChecksumBuilder) Files(workDir string, depthLimit int, warn ports.WarnFunc) (map[string]string, error) {
	files, err := b.scanner.Scan(workDir, depthLimit, warn)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrChecksumComputationFailed.Error()), "work_dir", workDir)
	}
	return files, nil
}
