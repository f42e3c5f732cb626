package domain

import "maps"

// ProjectFilesChecksum maps each cache root to the checksum of the Gradle project files
// that were built against it.
type ProjectFilesChecksum struct {
	AbsoluteCachesPathToChecksum map[CacheRootID]string `json:"absoluteCachesPathToChecksum"`
}

// NewProjectFilesChecksum returns a checksum record over the given per-root checksums.
func NewProjectFilesChecksum(checksums map[CacheRootID]string) ProjectFilesChecksum {
	if checksums == nil {
		checksums = make(map[CacheRootID]string)
	}
	return ProjectFilesChecksum{AbsoluteCachesPathToChecksum: checksums}
}

// Equal reports whether both records hold the same per-root checksums.
// A nil map equals an empty one.
func (c ProjectFilesChecksum) Equal(other ProjectFilesChecksum) bool {
	return maps.Equal(c.AbsoluteCachesPathToChecksum, other.AbsoluteCachesPathToChecksum)
}

// Len returns the number of cache roots in the record.
func (c ProjectFilesChecksum) Len() int {
	return len(c.AbsoluteCachesPathToChecksum)
}
