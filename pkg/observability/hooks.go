// Package observability provides hooks for timing and tracing the rendering
// pipeline.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup and
// receive an event for every pipeline stage that runs.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for pipeline events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (logging, OpenTelemetry, Prometheus, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// The rendering pipeline calls hooks to emit events:
//
//	observability.Pipeline().OnStageStart("layout")
//	// ... solve geometry ...
//	observability.Pipeline().OnStageComplete("layout", duration)
package observability

import (
	"sync"
	"time"
)

// PipelineHooks receives events from the rendering pipeline. Stage names are
// stable identifiers such as "parse", "level", "layout" and "draw".
type PipelineHooks interface {
	// OnStageStart records that a pipeline stage began.
	OnStageStart(stage string)

	// OnStageComplete records that a pipeline stage finished and how long
	// it took.
	OnStageComplete(stage string, duration time.Duration)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnStageStart(string)                   {}
func (NoopPipelineHooks) OnStageComplete(string, time.Duration) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any rendering.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the hooks to their no-op default.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
