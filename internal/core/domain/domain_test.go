package domain_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/depcache/internal/core/domain"
)

func TestParameters_Defaults(t *testing.T) {
	var p domain.Parameters

	assert.Equal(t, domain.UnlimitedDepth, p.SearchDepthLimit())
	assert.Equal(t, 60*time.Second, p.AwaitTimeout())
	assert.Equal(t, 1, p.ThreadPoolSize())
	assert.False(t, p.CacheEnabled())
}

func TestParameters_Overrides(t *testing.T) {
	p := domain.Parameters{
		domain.ParamSearchDepthLimit: "3",
		domain.ParamAwaitTimeoutMs:   "250",
		domain.ParamThreadPoolSize:   "2",
		domain.ParamCacheEnabled:     "true",
	}

	assert.Equal(t, 3, p.SearchDepthLimit())
	assert.Equal(t, 250*time.Millisecond, p.AwaitTimeout())
	assert.Equal(t, 2, p.ThreadPoolSize())
	assert.True(t, p.CacheEnabled())
}

func TestParameters_MalformedFallsBack(t *testing.T) {
	p := domain.Parameters{
		domain.ParamSearchDepthLimit: "deep",
		domain.ParamAwaitTimeoutMs:   "soon",
		domain.ParamThreadPoolSize:   "0",
		domain.ParamCacheEnabled:     "maybe",
	}

	assert.Equal(t, domain.DefaultSearchDepthLimit, p.SearchDepthLimit())
	assert.Equal(t, time.Minute, p.AwaitTimeout())
	assert.Equal(t, domain.DefaultThreadPoolSize, p.ThreadPoolSize())
	assert.False(t, p.CacheEnabled())
}

func TestProjectFilesChecksum_Equal(t *testing.T) {
	a := domain.NewProjectFilesChecksum(map[domain.CacheRootID]string{"root-1": "aa", "root-2": "bb"})
	b := domain.NewProjectFilesChecksum(map[domain.CacheRootID]string{"root-2": "bb", "root-1": "aa"})
	c := domain.NewProjectFilesChecksum(map[domain.CacheRootID]string{"root-1": "aa", "root-2": "cc"})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, domain.ProjectFilesChecksum{}.Equal(domain.NewProjectFilesChecksum(nil)))
}

func TestCanonicalLocation(t *testing.T) {
	abs := domain.CanonicalLocation("some/../caches")

	assert.True(t, filepath.IsAbs(abs))
	assert.Equal(t, "caches", filepath.Base(abs))
	assert.Equal(t, abs, domain.CanonicalLocation(abs))
}

func TestNewCacheRootUsage(t *testing.T) {
	usage := domain.NewCacheRootUsage("/home/user/.gradle/caches", "gradle_step")

	assert.Equal(t, domain.CacheRootType, usage.Type)
	assert.Equal(t, filepath.Clean("/home/user/.gradle/caches"), usage.Location)
	assert.Equal(t, "gradle_step", usage.StepID)
}

func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "validated", domain.Validated().String())
	assert.Equal(t, "invalidated: reason", domain.Invalidated("reason").String())
}
