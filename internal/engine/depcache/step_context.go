package depcache

import (
	"time"

	"go.trai.ch/depcache/internal/core/domain"
)

// StepContext holds the dependency cache state of one build step.
// It is created when the step starts and dropped when it ends.
type StepContext struct {
	params domain.Parameters

	// GradleCachesLocation is the canonical caches directory the step restores into.
	GradleCachesLocation string

	// ProjectFilesChecksum is the in-flight checksum of the step's project files.
	ProjectFilesChecksum *Pending
}

// NewStepContext creates a StepContext reading its settings from params.
func NewStepContext(params domain.Parameters) *StepContext {
	if params == nil {
		params = domain.Parameters{}
	}
	return &StepContext{params: params}
}

// DepthLimit returns how many directory levels are searched for dependency files.
func (s *StepContext) DepthLimit() int {
	return s.params.SearchDepthLimit()
}

// AwaitTimeout returns how long the step waits for its checksum.
func (s *StepContext) AwaitTimeout() time.Duration {
	return s.params.AwaitTimeout()
}
