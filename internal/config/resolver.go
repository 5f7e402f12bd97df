package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	oerrors "github.com/restscope/cli/internal/errors"
	"github.com/restscope/cli/internal/output"
)

// Environment variable prefix for restscope configuration.
const envPrefix = "RESTSCOPE"

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records how one configuration key was resolved.
type ResolvedValue struct {
	Key    string
	Value  interface{}
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]interface{}
}

// candidate is one possible value for a key, in precedence order.
type candidate[T any] struct {
	source ConfigSource
	value  T
	ok     bool
}

// pick returns the first present candidate and records the rest as shadowed.
func pick[T any](key string, candidates ...candidate[T]) (T, ResolvedValue) {
	var (
		winner T
		rv     = ResolvedValue{Key: key, Shadowed: map[ConfigSource]interface{}{}}
	)
	for _, c := range candidates {
		if !c.ok {
			continue
		}
		if rv.Source == "" {
			winner = c.value
			rv.Value = c.value
			rv.Source = c.source
			continue
		}
		rv.Shadowed[c.source] = c.value
	}
	return winner, rv
}

// env reads RESTSCOPE_* variables. Keys are config keys with "." mapped to
// "_", so scan.workers is read from RESTSCOPE_SCAN_WORKERS.
type env struct {
	v *viper.Viper
}

func newEnv() env {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return env{v: v}
}

// Name returns the environment variable consulted for key.
func (e env) Name(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func (e env) String(key string) candidate[string] {
	if !e.v.IsSet(key) {
		return candidate[string]{source: SourceEnv}
	}
	return candidate[string]{source: SourceEnv, value: e.v.GetString(key), ok: true}
}

func (e env) Bool(key string) (candidate[bool], error) {
	raw := e.String(key)
	if !raw.ok {
		return candidate[bool]{source: SourceEnv}, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(raw.value))
	if err != nil {
		return candidate[bool]{}, e.invalid(key, raw.value, "expected true or false")
	}
	return candidate[bool]{source: SourceEnv, value: b, ok: true}, nil
}

func (e env) Int(key string) (candidate[int], error) {
	raw := e.String(key)
	if !raw.ok {
		return candidate[int]{source: SourceEnv}, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw.value))
	if err != nil {
		return candidate[int]{}, e.invalid(key, raw.value, "expected an integer")
	}
	return candidate[int]{source: SourceEnv, value: n, ok: true}, nil
}

func (e env) List(key string) candidate[[]string] {
	raw := e.String(key)
	if !raw.ok {
		return candidate[[]string]{source: SourceEnv}
	}
	var items []string
	for _, item := range strings.Split(raw.value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return candidate[[]string]{source: SourceEnv, value: items, ok: len(items) > 0}
}

func (e env) invalid(key, value, hint string) error {
	return oerrors.NewValidationError(
		fmt.Sprintf("invalid value %q", value), e.Name(key), key, hint)
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) RESTSCOPE_CONFIG env, (3) ~/.restscope/config.yaml
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}

	e := newEnv()
	_, rv := pick("config",
		candidate[string]{source: SourceFlag, value: opts.FlagValue, ok: opts.FlagValue != ""},
		e.String("config"),
		candidate[string]{source: SourceDefault, value: paths.ConfigFile, ok: true},
	)
	return rv, nil
}

// ResolveAllOptions carries the global flag values. Nil pointers and empty
// strings mean the flag was not set.
type ResolveAllOptions struct {
	ConfigFlag     string
	OutputFlag     string
	TimestampsFlag *bool
	// Config is the loaded config file; nil when none was found.
	Config *Config
}

// ResolvedConfig holds the resolved global settings.
type ResolvedConfig struct {
	ConfigPath string `json:"config"`
	Output     string `json:"output" validate:"oneof=table yaml json tree"`
	// Timestamps is nil when no source set it.
	Timestamps *bool `json:"log.timestamps"`

	// Values records each key's resolution for verbose logging.
	Values []ResolvedValue `json:"-"`
}

// ResolveAll resolves global settings with precedence flag > env > config > default.
func ResolveAll(opts ResolveAllOptions) (*ResolvedConfig, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}
	e := newEnv()
	out := &ResolvedConfig{}

	pathValue, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: opts.ConfigFlag})
	if err != nil {
		return nil, err
	}
	out.ConfigPath, _ = pathValue.Value.(string)
	out.Values = append(out.Values, pathValue)

	var rv ResolvedValue
	out.Output, rv = pick("output",
		candidate[string]{source: SourceFlag, value: opts.OutputFlag, ok: opts.OutputFlag != ""},
		e.String("output"),
		candidate[string]{source: SourceConfig, value: cfg.Output, ok: cfg.Output != ""},
		candidate[string]{source: SourceDefault, value: DefaultOutput, ok: true},
	)
	out.Output = strings.ToLower(strings.TrimSpace(out.Output))
	if out.Output == "yml" {
		out.Output = "yaml"
	}
	out.Values = append(out.Values, rv)

	envTimestamps, err := e.Bool("log.timestamps")
	if err != nil {
		return nil, err
	}
	var timestamps bool
	timestamps, rv = pick("log.timestamps",
		candidate[bool]{source: SourceFlag, value: deref(opts.TimestampsFlag), ok: opts.TimestampsFlag != nil},
		envTimestamps,
		candidate[bool]{source: SourceConfig, value: deref(cfg.Log.Timestamps), ok: cfg.Log.Timestamps != nil},
	)
	if rv.Source != "" {
		out.Timestamps = &timestamps
	}
	out.Values = append(out.Values, rv)

	if err := validateStruct(out, ""); err != nil {
		return nil, err
	}
	return out, nil
}

// ResolveScanOptions carries the scan command's flag values. Nil pointers
// and nil slices mean the flag was not set.
type ResolveScanOptions struct {
	WithLibraryFlag  *bool
	IncludeEmptyFlag *bool
	LibraryPathsFlag []string
	WorkersFlag      *int
	// Config is the loaded config file; nil when none was found.
	Config *Config
}

// ResolvedScan holds the resolved scan settings.
type ResolvedScan struct {
	WithLibrary  bool     `json:"withLibrary"`
	IncludeEmpty bool     `json:"includeEmpty"`
	LibraryPaths []string `json:"libraryPaths" validate:"dive,required"`
	Workers      int      `json:"workers" validate:"min=1,max=64"`

	// Values records each key's resolution for verbose logging.
	Values []ResolvedValue `json:"-"`
}

// ResolveScan resolves scan settings with precedence flag > env > config > default.
func ResolveScan(opts ResolveScanOptions) (*ResolvedScan, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}
	e := newEnv()
	out := &ResolvedScan{}
	var rv ResolvedValue

	envLibrary, err := e.Bool("scan.withLibrary")
	if err != nil {
		return nil, err
	}
	out.WithLibrary, rv = pick("scan.withLibrary",
		candidate[bool]{source: SourceFlag, value: deref(opts.WithLibraryFlag), ok: opts.WithLibraryFlag != nil},
		envLibrary,
		candidate[bool]{source: SourceConfig, value: cfg.Scan.WithLibrary, ok: cfg.Scan.WithLibrary},
		candidate[bool]{source: SourceDefault, value: false, ok: true},
	)
	out.Values = append(out.Values, rv)

	envEmpty, err := e.Bool("scan.includeEmpty")
	if err != nil {
		return nil, err
	}
	out.IncludeEmpty, rv = pick("scan.includeEmpty",
		candidate[bool]{source: SourceFlag, value: deref(opts.IncludeEmptyFlag), ok: opts.IncludeEmptyFlag != nil},
		envEmpty,
		candidate[bool]{source: SourceConfig, value: cfg.Scan.IncludeEmpty, ok: cfg.Scan.IncludeEmpty},
		candidate[bool]{source: SourceDefault, value: false, ok: true},
	)
	out.Values = append(out.Values, rv)

	out.LibraryPaths, rv = pick("scan.libraryPaths",
		candidate[[]string]{source: SourceFlag, value: opts.LibraryPathsFlag, ok: opts.LibraryPathsFlag != nil},
		e.List("scan.libraryPaths"),
		candidate[[]string]{source: SourceConfig, value: cfg.Scan.LibraryPaths, ok: len(cfg.Scan.LibraryPaths) > 0},
	)
	out.Values = append(out.Values, rv)

	envWorkers, err := e.Int("scan.workers")
	if err != nil {
		return nil, err
	}
	out.Workers, rv = pick("scan.workers",
		candidate[int]{source: SourceFlag, value: deref(opts.WorkersFlag), ok: opts.WorkersFlag != nil},
		envWorkers,
		candidate[int]{source: SourceConfig, value: cfg.Scan.Workers, ok: cfg.Scan.Workers != 0},
		candidate[int]{source: SourceDefault, value: DefaultWorkers, ok: true},
	)
	out.Values = append(out.Values, rv)

	if err := validateStruct(out, "scan."); err != nil {
		return nil, err
	}
	return out, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		if v.Source == "" {
			continue
		}
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		sources := make([]string, 0, len(v.Shadowed))
		for source := range v.Shadowed {
			sources = append(sources, string(source))
		}
		sort.Strings(sources)
		for _, source := range sources {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", v.Shadowed[ConfigSource(source)],
			)
		}
	}
}
