package depcache

import (
	"maps"
	"sync"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
)

// Invalidator decides after a build whether the Gradle caches restored for it are
// still valid.
//
// Steps record the checksum of the project files they built against the caches
// location they used. Evaluate then compares the checksums per cache root with the
// ones published by the previous build.
type Invalidator struct {
	logger ports.Logger

	mu        sync.Mutex
	checksums map[string]string
}

// NewInvalidator creates an Invalidator with no recorded checksums.
func NewInvalidator(logger ports.Logger) *Invalidator {
	return &Invalidator{
		logger:    logger,
		checksums: make(map[string]string),
	}
}

// Record adds the checksum computed for a step using the caches at location.
// A location recorded more than once keeps the merge of all its checksums in call order.
func (i *Invalidator) Record(location, checksum string) {
	location = domain.CanonicalLocation(location)

	i.mu.Lock()
	defer i.mu.Unlock()

	if previous, ok := i.checksums[location]; ok {
		checksum = Merge(previous, checksum)
	}
	i.checksums[location] = checksum
}

// Checksums returns a copy of the recorded checksums keyed by canonical location.
func (i *Invalidator) Checksums() map[string]string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return maps.Clone(i.checksums)
}

// Evaluate compares the recorded checksums against the previous build's record and
// publishes the new record whatever the outcome.
func (i *Invalidator) Evaluate(meta ports.MetadataStore, newRoots []domain.CacheRoot) domain.Verdict {
	locationToID := make(map[string]domain.CacheRootID, len(newRoots))
	for _, root := range newRoots {
		locationToID[domain.CanonicalLocation(root.Location)] = root.ID
	}

	current := domain.NewProjectFilesChecksum(Remap(locationToID, i.Checksums()))

	store := NewInvalidationStore(meta, i.logger)
	previous, found := store.Load()

	if err := store.Publish(current); err != nil {
		i.logger.Warn("Failed to publish Gradle project files checksum: " + err.Error())
	}

	if found && current.Equal(previous) {
		return domain.Validated()
	}
	return domain.Invalidated(domain.DependenciesChangedReason)
}

// ShouldRunIfCacheInvalidated reports that Evaluate must run even for caches already
// invalidated elsewhere, so the stored record stays current.
func (i *Invalidator) ShouldRunIfCacheInvalidated() bool {
	return true
}
