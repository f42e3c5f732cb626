package ports

import "go.trai.ch/depcache/internal/core/domain"

// DependencyCache is the host-owned dependency cache the engine reports to.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type DependencyCache interface {
	// LogWarning records a recoverable problem in the build log.
	LogWarning(msg string)

	// RegisterAndRestore restores previously cached content into the usage's location.
	RegisterAndRestore(usage domain.CacheRootUsage) error

	// NewCacheRoots returns the cache roots restored during the current build.
	NewCacheRoots() []domain.CacheRoot
}
