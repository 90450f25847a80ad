package main

import (
	"io"
	"os"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// traceSelector hands out one Go-logger tracer per key, all at the same
// level and writing to the same output.
type traceSelector struct {
	mu      sync.Mutex
	level   tracing.TraceLevel
	out     io.Writer
	tracers map[string]tracing.Trace
}

func newTraceSelector(level tracing.TraceLevel, out io.Writer) *traceSelector {
	return &traceSelector{
		level:   level,
		out:     out,
		tracers: make(map[string]tracing.Trace),
	}
}

// Select is part of interface tracing.TraceSelector.
func (sel *traceSelector) Select(key string) tracing.Trace {
	sel.mu.Lock()
	defer sel.mu.Unlock()
	if t, ok := sel.tracers[key]; ok {
		return t
	}
	t := gologadapter.New()
	t.SetOutput(sel.out)
	t.SetTraceLevel(sel.level)
	sel.tracers[key] = t
	return t
}

// setupTracing routes the tracers of all packages to out (stderr if nil).
func setupTracing(level string, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}
	tracing.SetTraceSelector(newTraceSelector(tracing.TraceLevelFromString(level), out))
}
