// Package cache implements a local dependency cache host that registers Gradle cache roots.
package cache

import (
	"fmt"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DependencyCache = (*Cache)(nil)

// Cache tracks the cache roots registered during one build.
//
// Restoring archived content is done by the CI server; this host only makes sure the
// root directory exists and assigns it an identity.
type Cache struct {
	logger ports.Logger

	mu       sync.Mutex
	roots    []domain.CacheRoot
	byLoc    map[string]int
	warnings []string
}

// New creates an empty Cache for a build.
func New(logger ports.Logger) *Cache {
	return &Cache{
		logger: logger,
		byLoc:  make(map[string]int),
	}
}

// RootID derives the identity of a cache root from its type and canonical location.
func RootID(rootType, location string) domain.CacheRootID {
	return domain.CacheRootID(fmt.Sprintf("%s-%016x", rootType, xxhash.Sum64String(location)))
}

// LogWarning forwards msg to the logger and keeps it for the build summary.
func (c *Cache) LogWarning(msg string) {
	c.mu.Lock()
	c.warnings = append(c.warnings, msg)
	c.mu.Unlock()
	c.logger.Warn(msg)
}

// RegisterAndRestore registers the usage's location as a cache root.
// Registering the same location twice yields a single root.
func (c *Cache) RegisterAndRestore(usage domain.CacheRootUsage) error {
	location := domain.CanonicalLocation(usage.Location)
	if err := os.MkdirAll(location, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheRootCreateFailed.Error()), "path", location)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byLoc[location]; ok {
		return nil
	}
	c.byLoc[location] = len(c.roots)
	c.roots = append(c.roots, domain.CacheRoot{
		ID:       RootID(usage.Type, location),
		Type:     usage.Type,
		Location: location,
	})
	return nil
}

// NewCacheRoots returns the roots registered so far, in registration order.
func (c *Cache) NewCacheRoots() []domain.CacheRoot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.CacheRoot(nil), c.roots...)
}

// Warnings returns the warnings logged against this cache.
func (c *Cache) Warnings() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.warnings...)
}
