// Package tfunc parses textual functions of a single variable t into
// expression trees which may be evaluated repeatedly.
//
// Input like
//
//     sin^2 t + 2|t - 1| + log_2 8
//
// is handled by package grammar, which returns an opaque expression handle
// (see package evaluator). This root package holds what is shared between
// the packages: the structured input errors and application-wide
// configuration for hosting tools.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package tfunc

import (
	"context"
	"io"
	"os"

	"github.com/knadh/koanf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tfunc'.
func tracer() tracing.Trace {
	return tracing.Select("tfunc")
}

// Configuration holds global configuration values of a hosting tool.
// We use koanf. Library functions never consult it.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output, if not nil.
var Tracefile io.WriteCloser

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context = context.Background()

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	tracer().Debugf("exit with code %d", errcode)
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}

// ConfigInt returns an integer configuration value, or dflt if no
// configuration is present or the key is unset.
func ConfigInt(key string, dflt int) int {
	if Configuration == nil || !Configuration.Exists(key) {
		return dflt
	}
	return Configuration.Int(key)
}
