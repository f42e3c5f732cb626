package domain

import (
	"strconv"
	"time"
)

// Parameters holds string-keyed configuration parameters supplied by the host.
type Parameters map[string]string

// Int returns the parameter as an int, or def if it is missing or malformed.
func (p Parameters) Int(key string, def int) int {
	v, ok := p[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Int64 returns the parameter as an int64, or def if it is missing or malformed.
func (p Parameters) Int64(key string, def int64) int64 {
	v, ok := p[key]
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// Bool returns the parameter as a bool, or def if it is missing or malformed.
func (p Parameters) Bool(key string, def bool) bool {
	v, ok := p[key]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// SearchDepthLimit returns the dependency file search depth limit.
func (p Parameters) SearchDepthLimit() int {
	return p.Int(ParamSearchDepthLimit, DefaultSearchDepthLimit)
}

// AwaitTimeout returns how long to wait for the checksum at the end of a step.
func (p Parameters) AwaitTimeout() time.Duration {
	return time.Duration(p.Int64(ParamAwaitTimeoutMs, DefaultAwaitTimeoutMs)) * time.Millisecond
}

// ThreadPoolSize returns the number of concurrent checksum computations.
func (p Parameters) ThreadPoolSize() int {
	n := p.Int(ParamThreadPoolSize, DefaultThreadPoolSize)
	if n < 1 {
		return DefaultThreadPoolSize
	}
	return n
}

// CacheEnabled reports whether the Gradle dependency cache is switched on.
func (p Parameters) CacheEnabled() bool {
	return p.Bool(ParamCacheEnabled, DefaultCacheEnabled)
}
