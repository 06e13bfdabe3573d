package main

import (
	"flag"
	"fmt"
	"strings"
)

// DemoConfig holds the demo configuration
type DemoConfig struct {
	ConfigFile string
	LogLevel   string
	System     string
}

var knownSystems = []string{"h2", "silicon", "all"}

// configResolver defines how to resolve a single configuration value
type configResolver struct {
	flagName    string
	envVarName  string
	defaultVal  string
	description string
	setter      func(*DemoConfig, string)
}

var resolvers = []configResolver{
	{
		flagName:    "config",
		envVarName:  "ATOMSBASE_CONFIG",
		defaultVal:  "",
		description: "optional path to a TOML or YAML config file (units, log, species)",
		setter:      func(c *DemoConfig, v string) { c.ConfigFile = v },
	},
	{
		flagName:    "log-level",
		envVarName:  "ATOMSBASE_LOG_LEVEL",
		defaultVal:  "",
		description: "Log level: debug, info, warn, error (overrides the config file)",
		setter:      func(c *DemoConfig, v string) { c.LogLevel = v },
	},
	{
		flagName:    "system",
		envVarName:  "ATOMSBASE_SYSTEM",
		defaultVal:  "all",
		description: "System to build: " + strings.Join(knownSystems, ", "),
		setter:      func(c *DemoConfig, v string) { c.System = strings.ToLower(strings.TrimSpace(v)) },
	},
}

// loadDemoConfig resolves every option as flag > environment > default.
func loadDemoConfig(fs *flag.FlagSet, args []string, getenv func(string) string) (DemoConfig, error) {
	cfg := DemoConfig{}

	flagVars := make(map[string]*string)
	for _, resolver := range resolvers {
		flagVars[resolver.flagName] = fs.String(resolver.flagName, "", resolver.description)
	}

	if err := fs.Parse(args); err != nil {
		return DemoConfig{}, err
	}

	for _, resolver := range resolvers {
		var value string
		if *flagVars[resolver.flagName] != "" {
			value = *flagVars[resolver.flagName]
		} else if envValue := getenv(resolver.envVarName); envValue != "" {
			value = envValue
		} else {
			value = resolver.defaultVal
		}
		resolver.setter(&cfg, value)
	}

	if !isKnownSystem(cfg.System) {
		return DemoConfig{}, fmt.Errorf("unknown system %q, expected one of %s", cfg.System, strings.Join(knownSystems, ", "))
	}
	return cfg, nil
}

func isKnownSystem(name string) bool {
	for _, s := range knownSystems {
		if s == name {
			return true
		}
	}
	return false
}
