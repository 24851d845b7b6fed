// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about pipeline execution and cache
// operations; libraries call the accessor functions to emit events and get
// no-op implementations when nothing is registered.
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the layout pipeline.
type PipelineHooks interface {
	// Layout events
	OnLayoutStart(ctx context.Context, peopleCount int)
	OnLayoutComplete(ctx context.Context, peopleCount int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// noopPipelineHooks is the default no-op implementation.
type noopPipelineHooks struct{}

func (noopPipelineHooks) OnLayoutStart(context.Context, int)                             {}
func (noopPipelineHooks) OnLayoutComplete(context.Context, int, time.Duration, error)    {}
func (noopPipelineHooks) OnRenderStart(context.Context, []string)                        {}
func (noopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// noopCacheHooks is the default no-op implementation.
type noopCacheHooks struct{}

func (noopCacheHooks) OnCacheHit(context.Context, string)       {}
func (noopCacheHooks) OnCacheMiss(context.Context, string)      {}
func (noopCacheHooks) OnCacheSet(context.Context, string, int)  {}

var (
	mu            sync.RWMutex
	pipelineHooks PipelineHooks = noopPipelineHooks{}
	cacheHooks    CacheHooks    = noopCacheHooks{}
)

// SetPipelineHooks registers pipeline hooks. Pass nil to restore no-ops.
func SetPipelineHooks(h PipelineHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = noopPipelineHooks{}
	}
	pipelineHooks = h
}

// SetCacheHooks registers cache hooks. Pass nil to restore no-ops.
func SetCacheHooks(h CacheHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = noopCacheHooks{}
	}
	cacheHooks = h
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	mu.RLock()
	defer mu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	mu.RLock()
	defer mu.RUnlock()
	return cacheHooks
}
