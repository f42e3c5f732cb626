package domain

import "math"

const (
	// CacheRootType is the cache root type registered for Gradle caches directories.
	CacheRootType = "gradle-caches"

	// ProjectFilesChecksumKey is the metadata key the invalidation record is stored under.
	// Changing the record shape requires changing this key.
	ProjectFilesChecksumKey = "gradleProjectFilesChecksum"

	// DependenciesChangedReason is the invalidation reason reported on a checksum mismatch.
	DependenciesChangedReason = "Gradle projects' dependencies have changed"
)

// Configuration parameter keys.
const (
	ParamCacheEnabled     = "teamcity.internal.depcache.buildFeature.gradle.enabled"
	ParamSearchDepthLimit = "teamcity.internal.depcache.gradle.invalidationDataSearchDepthLimit"
	ParamAwaitTimeoutMs   = "teamcity.internal.depcache.gradle.invalidationDataAwaitingTimeoutMs"
	ParamThreadPoolSize   = "teamcity.internal.depcache.gradle.threadPoolSize"
)

// Parameter defaults.
const (
	DefaultCacheEnabled     = false
	DefaultAwaitTimeoutMs   = int64(60000)
	DefaultThreadPoolSize   = 1
	UnlimitedDepth          = math.MaxInt
	DefaultSearchDepthLimit = UnlimitedDepth
)

// DependencyFilePatterns are the file name patterns that declare a Gradle project's dependencies.
var DependencyFilePatterns = []string{
	"*.gradle",
	"*.gradle.kts",
	"gradle-wrapper.properties",
	"Versions.kt",
	"Dependencies.kt",
	"*.versions.toml",
	"versions.properties",
}
