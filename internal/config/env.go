package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// envBinding ties a RECBENCH_* variable to the flags that shadow it.
type envBinding struct {
	key   string
	flags []string
	set   func(*AppConfig, string)
}

func uintEnv(dst func(*AppConfig) *uint64) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			*dst(c) = n
		}
	}
}

func intEnv(dst func(*AppConfig) *int) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		if n, err := strconv.Atoi(v); err == nil {
			*dst(c) = n
		}
	}
}

func stringEnv(dst func(*AppConfig) *string) func(*AppConfig, string) {
	return func(c *AppConfig, v string) { *dst(c) = v }
}

func boolEnv(dst func(*AppConfig) *bool) func(*AppConfig, string) {
	return func(c *AppConfig, v string) {
		p := dst(c)
		*p = parseBoolEnv(v, *p)
	}
}

// Malformed numeric or duration values leave the default in place.
var envBindings = []envBinding{
	{"N", []string{"n"}, uintEnv(func(c *AppConfig) *uint64 { return &c.N })},
	{"PARALLEL", []string{"parallel"}, intEnv(func(c *AppConfig) *int { return &c.Parallel })},
	{"MAX_STACK", []string{"max-stack"}, intEnv(func(c *AppConfig) *int { return &c.MaxStack })},
	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}},
	{"MODE", []string{"mode"}, stringEnv(func(c *AppConfig) *string { return &c.Mode })},
	{"ALGO", []string{"algo"}, stringEnv(func(c *AppConfig) *string { return &c.Algo })},
	{"FILE", []string{"file"}, stringEnv(func(c *AppConfig) *string { return &c.File })},
	{"GC", []string{"gc"}, stringEnv(func(c *AppConfig) *string { return &c.GC })},
	{"METRICS_OUT", []string{"metrics-out"}, stringEnv(func(c *AppConfig) *string { return &c.MetricsOut })},
	{"QUIET", []string{"quiet", "q"}, boolEnv(func(c *AppConfig) *bool { return &c.Quiet })},
	{"VERBOSE", []string{"v", "verbose"}, boolEnv(func(c *AppConfig) *bool { return &c.Verbose })},
	{"NO_COLOR", []string{"no-color"}, boolEnv(func(c *AppConfig) *bool { return &c.NoColor })},
	{"TUI", []string{"tui"}, boolEnv(func(c *AppConfig) *bool { return &c.TUI })},
}

// parseBoolEnv accepts true/1/yes and false/0/no in any case and falls
// back to def for anything else.
func parseBoolEnv(val string, def bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return def
}

// applyEnvOverrides fills cfg from RECBENCH_* variables for every flag the
// command line left alone, so a flag always wins over its variable.
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet) {
	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

next:
	for _, b := range envBindings {
		for _, name := range b.flags {
			if explicit[name] {
				continue next
			}
		}
		if v := os.Getenv(EnvPrefix + b.key); v != "" {
			b.set(cfg, v)
		}
	}
}
