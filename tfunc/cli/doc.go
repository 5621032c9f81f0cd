package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'tfunc.cli'
func tracer() tracing.Trace {
	return tracing.Select("tfunc.cli")
}
