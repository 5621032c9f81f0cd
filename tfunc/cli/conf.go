package cli

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/tfunc"
)

// Configuration keys and their defaults, unless set in a config file.
var defaults = map[string]interface{}{
	"display.precision": 6,
	"sample.workers":    4,
	"sample.steps":      10,
}

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	// We locate tfunc configuration with an application-key of 'TFUNC' and
	// use NestedText-format (nt) for config-files
	konf := koanfadapter.New(k, "TFUNC", []string{"nt"})
	konf.InitDefaults()
	for key, value := range defaults {
		if !k.Exists(key) {
			konf.Set(key, value)
		}
	}
	if err := mergeFlags(konf); err != nil {
		tracing.Errorf(err.Error())
		tfunc.Exit(1)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf(err.Error())
		tfunc.Exit(1)
	}
	tfunc.Configuration = k // push the configuration to app-global scope
}

func mergeFlags(konf *koanfadapter.KConf) error {
	flags := rootCmd.PersistentFlags()
	err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
	if err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		if strings.Contains(logname, ":/") {
			konf.Set("tracing.destination", logname)
		} else {
			konf.Set("tracing.destination", "file://"+logname)
		}
	}
	return nil
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	paths := tfuncAppPaths()
	if dest := konf.GetString("tracing.destination"); dest != "" {
		if !strings.Contains(dest, ":") && paths.LogDir() != "" {
			dest = "file://" + paths.LogDir() + "/" + dest
			konf.Set("tracing.destination", dest)
		}
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracing.Infof("tfunc configured, log directory is %q", paths.LogDir())
	return nil
}

func tfuncAppPaths() AppPaths {
	paths, err := DefaultAppPaths("TFUNC")
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
	}
	return paths
}
