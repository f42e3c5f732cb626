package domain

import "path/filepath"

const (
	// DepCacheDirName is the name of the internal state directory.
	DepCacheDirName = ".depcache"

	// MetadataFileName is the name of the invalidation metadata file.
	MetadataFileName = "metadata.json"

	// ConfigFileName is the name of the default configuration file.
	ConfigFileName = "depcache.yaml"

	// GradleCachesDirName is the caches directory inside a Gradle User Home.
	GradleCachesDirName = "caches"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultMetadataPath returns the default path of the metadata store file.
// It joins .depcache and metadata.json.
func DefaultMetadataPath() string {
	return filepath.Join(DepCacheDirName, MetadataFileName)
}
