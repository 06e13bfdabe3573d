package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/daniacca/atomsbase/internal/config"
	"github.com/daniacca/atomsbase/internal/logging"
	"github.com/daniacca/atomsbase/pkg/atomsbase"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	fs := flag.NewFlagSet("atomsbase-demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	demoCfg, err := loadDemoConfig(fs, args, getenv)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	fileCfg := config.Default()
	if demoCfg.ConfigFile != "" {
		fileCfg, err = config.Load(demoCfg.ConfigFile)
		if err != nil {
			fmt.Fprintf(stderr, "error loading config: %v\n", err)
			return 1
		}
	}

	logCfg := fileCfg.Logging(logging.ProfileRuntime)
	logging.ApplyEnv(&logCfg, getenv)
	if demoCfg.LogLevel != "" {
		lvl, ok := logging.ParseLevel(demoCfg.LogLevel)
		if !ok {
			fmt.Fprintf(stderr, "error: unknown log level %q\n", demoCfg.LogLevel)
			return 2
		}
		logCfg.Level = lvl
	}
	log := logging.New(stderr, "atomsbase-demo", logCfg)

	b, err := fileCfg.Builder(logging.NewAdapter(log))
	if err != nil {
		log.Error().Err(err).Msg("invalid builder configuration")
		return 1
	}

	systems, err := buildSystems(b, demoCfg.System)
	if err != nil {
		log.Error().Err(err).Str("system", demoCfg.System).Msg("build failed")
		return 1
	}
	log.Info().Int("systems", len(systems)).Str("config", demoCfg.ConfigFile).Msg("systems built")

	for i, ns := range systems {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		printSummary(stdout, ns.name, ns.sys)
	}
	return 0
}

func printSummary(w io.Writer, name string, sys atomsbase.System) {
	fmt.Fprintf(w, "System %s (atoms=%d, dimensions=%d, infinite=%t)\n",
		name, sys.Len(), atomsbase.NDimensions(sys), atomsbase.IsInfinite(sys))
	fmt.Fprintf(w, "Periodicity: %v\n", atomsbase.Periodicity(sys))

	keys := atomsbase.AtomKeys(sys)
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	fmt.Fprintf(w, "Atom keys: %s\n", strings.Join(names, ", "))

	if props := atomsbase.SystemProperties(sys); len(props) > 0 {
		fmt.Fprintln(w, "Properties:")
		for _, p := range props {
			fmt.Fprintf(w, "  %s = %s\n", p.Key, p.Value)
		}
	}

	fmt.Fprintln(w, "Atoms:")
	for i, sp := range atomsbase.All(sys) {
		fmt.Fprintf(w, "  %d: %-2s Z=%-3d m=%s pos=%s\n",
			i, sp.AtomicSymbol(), sp.AtomicNumber(), sp.AtomicMass(), sp.Position())
	}
}
