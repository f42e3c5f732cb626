package depcache

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
)

const (
	msgNoGradleUserHome = "Failed to detect Gradle User Home location for the current Gradle execution, it will not be cached"
	msgNoStepContext    = "Gradle dependency cache step context is not initialized, this execution will not be cached"
	msgNoLocation       = "Gradle caches location is not set, this execution will not be cached"
	msgNoChecksum       = "Gradle project files checksum was not prepared, this execution will not be cached"
	msgChecksumFailed   = "Failed to compute Gradle project files checksum, this execution will not be cached: "
	msgCreateFailed     = "Failed to create Gradle caches directory, it will not be cached: "
	msgRestoreFailed    = "Failed to register Gradle caches, they will not be restored: "
)

// Manager ties the dependency cache to the lifecycle of Gradle build steps.
//
// Caching is best effort: every method reports problems as warnings and returns.
type Manager struct {
	logger      ports.Logger
	cache       ports.DependencyCache
	computer    *Computer
	invalidator *Invalidator
	enabled     bool
}

// NewManager creates a Manager. A nil cache disables caching.
func NewManager(
	logger ports.Logger,
	cache ports.DependencyCache,
	computer *Computer,
	invalidator *Invalidator,
	params domain.Parameters,
) *Manager {
	return &Manager{
		logger:      logger,
		cache:       cache,
		computer:    computer,
		invalidator: invalidator,
		enabled:     cache != nil && params.CacheEnabled(),
	}
}

// Enabled reports whether the Gradle dependency cache is in use for this build.
func (m *Manager) Enabled() bool {
	return m.enabled
}

// Cache returns the dependency cache the manager reports to.
func (m *Manager) Cache() ports.DependencyCache {
	return m.cache
}

// Invalidator returns the invalidator the manager records checksums into.
func (m *Manager) Invalidator() *Invalidator {
	return m.invalidator
}

// PrepareChecksumAsync starts computing the checksum of the project in workDir.
func (m *Manager) PrepareChecksumAsync(workDir string, stepCtx *StepContext) {
	if !m.enabled {
		return
	}
	if stepCtx == nil {
		m.logWarning(msgNoStepContext)
		return
	}
	stepCtx.ProjectFilesChecksum = m.computer.Start(workDir, stepCtx.DepthLimit(), m.logWarning)
}

// RegisterAndRestoreCache registers the caches directory of gradleUserHome for the step
// and has the host restore it.
func (m *Manager) RegisterAndRestoreCache(stepID, gradleUserHome string, stepCtx *StepContext) {
	if !m.enabled {
		return
	}
	if stepCtx == nil {
		m.logWarning(msgNoStepContext)
		return
	}
	if gradleUserHome == "" {
		m.logWarning(msgNoGradleUserHome)
		return
	}

	location := domain.CanonicalLocation(filepath.Join(gradleUserHome, domain.GradleCachesDirName))
	if err := os.MkdirAll(location, domain.DirPerm); err != nil {
		m.logWarning(msgCreateFailed + err.Error())
		return
	}

	m.logger.Info("Creating a new cache root usage for Gradle caches location: " + location)

	stepCtx.GradleCachesLocation = location
	if err := m.cache.RegisterAndRestore(domain.NewCacheRootUsage(location, stepID)); err != nil {
		m.logWarning(msgRestoreFailed + err.Error())
	}
}

// UpdateInvalidatorWithChecksum waits for the step's checksum and records it for the
// step's caches location. A missing checksum leaves the invalidator untouched.
func (m *Manager) UpdateInvalidatorWithChecksum(ctx context.Context, stepCtx *StepContext) {
	if !m.enabled {
		return
	}
	if stepCtx == nil {
		m.logWarning(msgNoStepContext)
		return
	}
	if stepCtx.GradleCachesLocation == "" {
		m.logWarning(msgNoLocation)
		return
	}
	if stepCtx.ProjectFilesChecksum == nil {
		m.logWarning(msgNoChecksum)
		return
	}

	checksum, err := stepCtx.ProjectFilesChecksum.Await(ctx, stepCtx.AwaitTimeout())
	if err != nil {
		m.logWarning(msgChecksumFailed + err.Error())
		return
	}
	if checksum == "" {
		m.logWarning(msgChecksumFailed + "empty checksum")
		return
	}

	m.invalidator.Record(stepCtx.GradleCachesLocation, checksum)
}

func (m *Manager) logWarning(msg string) {
	if m.cache != nil {
		m.cache.LogWarning(msg)
		return
	}
	m.logger.Warn(msg)
}
