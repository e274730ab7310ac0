/*
Package tracing helps tests of this module to redirect tracing output to
the test log.
*/
package tracing

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// SetTestingLog redirects the core tracer and the syntax tracer to t.
// Tracing is set to level Debug. Redirection is torn down when the test
// finishes.
func SetTestingLog(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	gtrace.SyntaxTracer = gotestingadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	gtrace.SyntaxTracer.SetTraceLevel(tracing.LevelDebug)
	teardown := gotestingadapter.RedirectTracing(t)
	t.Cleanup(teardown)
}
