package domain

import "path/filepath"

// CacheRootID is the identity the host cache subsystem assigns to a restored cache root.
// It is unique per build and stable across builds only while the location is unchanged.
type CacheRootID string

// String returns the identity as a string.
func (id CacheRootID) String() string {
	return string(id)
}

// CacheRoot is a physical cache directory restored by the host for the current build.
type CacheRoot struct {
	ID       CacheRootID
	Type     string
	Location string
}

// CacheRootUsage describes a request to register and restore a cache root for a build step.
type CacheRootUsage struct {
	Type     string
	Location string
	StepID   string
}

// NewCacheRootUsage returns a Gradle caches usage for the given location and step.
func NewCacheRootUsage(location, stepID string) CacheRootUsage {
	return CacheRootUsage{
		Type:     CacheRootType,
		Location: CanonicalLocation(location),
		StepID:   stepID,
	}
}

// CanonicalLocation returns the absolute, cleaned form of a cache root location.
// Locations must only be compared in this form.
func CanonicalLocation(location string) string {
	abs, err := filepath.Abs(location)
	if err != nil {
		return filepath.Clean(location)
	}
	return abs
}
