package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/popup-launcher/internal/app"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const programName = "popup-launcher"

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// fileConfig mirrors the TOML config file. Keys absent from the file keep the
// values already present when decoding.
type fileConfig struct {
	Bottom     bool   `toml:"bottom"`
	IgnoreCase bool   `toml:"ignore_case"`
	Lines      int    `toml:"lines"`
	Prompt     string `toml:"prompt"`
	Fast       bool   `toml:"fast"`
	LogFile    string `toml:"log_file"`
	Trace      bool   `toml:"trace"`
}

const (
	envBottom     = "POPUP_LAUNCHER_BOTTOM"
	envIgnoreCase = "POPUP_LAUNCHER_IGNORE_CASE"
	envLines      = "POPUP_LAUNCHER_LINES"
	envPrompt     = "POPUP_LAUNCHER_PROMPT"
	envFast       = "POPUP_LAUNCHER_FAST"
	envTrace      = "POPUP_LAUNCHER_TRACE"
	envLogFile    = "POPUP_LAUNCHER_LOG_FILE"
	envConfig     = "POPUP_LAUNCHER_CONFIG"
)

// ErrHelp is returned when -h or --help was requested.
var ErrHelp = pflag.ErrHelp

type flagValues struct {
	bottom     *bool
	ignoreCase *bool
	lines      *int
	prompt     *string
	fast       *bool
	trace      *bool
	logFile    *string
	config     *string
}

func newFlagSet() (*pflag.FlagSet, flagValues) {
	fs := pflag.NewFlagSet(programName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	v := flagValues{
		bottom:     fs.BoolP("bottom", "b", false, "place the menu at the bottom of the screen"),
		ignoreCase: fs.BoolP("ignore-case", "i", false, "match candidates case-insensitively"),
		lines:      fs.IntP("lines", "l", 0, "list candidates vertically with the given number of lines"),
		prompt:     fs.StringP("prompt", "p", "", "prompt displayed to the left of the input"),
		fast:       fs.BoolP("fast", "f", false, "show the menu before candidates finish loading"),
		trace:      fs.Bool("trace", false, "enable verbose JSON trace logging"),
		logFile:    fs.String("log-file", "", "path to the log file"),
		config:     fs.String("config", "", "path to a TOML config file"),
	}
	return fs, v
}

// Usage returns the help text printed for -h.
func Usage() string {
	fs, _ := newFlagSet()
	return fmt.Sprintf("usage: %s [-bfi] [-l lines] [-p prompt]\n\n%s", programName, fs.FlagUsages())
}

// Load parses configuration from CLI arguments, environment variables and
// the config file, and detects whether candidates are being piped in.
func Load() (Config, error) {
	return load(os.Args[1:], os.Environ())
}

func load(args []string, environ []string) (Config, error) {
	cfg, err := LoadArgs(args, environ)
	if err != nil {
		return Config{}, err
	}
	cfg.App.Piped = !stdinIsTerminal()
	return cfg, nil
}

var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// LoadArgs allows tests to supply specific args/environment. Flags win over
// environment variables, which win over the config file.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs, flags := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	path, explicit := *flags.config, fs.Changed("config")
	if !explicit {
		path, explicit = envOrDefault(env, envConfig, ""), hasEnv(env, envConfig)
	}
	if !explicit {
		path = defaultConfigPath(env)
	}
	file, err := loadFile(path, explicit)
	if err != nil {
		return Config{}, err
	}

	bottom := pickBool(fs, "bottom", *flags.bottom, env, envBottom, file.Bottom)
	ignoreCase := pickBool(fs, "ignore-case", *flags.ignoreCase, env, envIgnoreCase, file.IgnoreCase)
	fast := pickBool(fs, "fast", *flags.fast, env, envFast, file.Fast)
	trace := pickBool(fs, "trace", *flags.trace, env, envTrace, file.Trace)
	lines := pickInt(fs, "lines", *flags.lines, env, envLines, file.Lines)
	prompt := pickString(fs, "prompt", *flags.prompt, env, envPrompt, file.Prompt)
	logFile := pickString(fs, "log-file", *flags.logFile, env, envLogFile, file.LogFile)

	if lines < 0 {
		return Config{}, fmt.Errorf("lines must be >= 0 (got %d)", lines)
	}

	cfg := Config{
		App: app.Config{
			Bottom:          bottom,
			CaseInsensitive: ignoreCase,
			Lines:           lines,
			Prompt:          prompt,
			Fast:            fast,
		},
		Logging: Logging{
			FilePath: logFile,
			Trace:    trace,
		},
		File: path,
		Flags: map[string]string{
			"bottom":     strconv.FormatBool(bottom),
			"ignoreCase": strconv.FormatBool(ignoreCase),
			"lines":      strconv.Itoa(lines),
			"prompt":     prompt,
			"fast":       strconv.FormatBool(fast),
			"trace":      strconv.FormatBool(trace),
			"logFile":    logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func loadFile(path string, required bool) (fileConfig, error) {
	var file fileConfig
	if strings.TrimSpace(path) == "" {
		return file, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return file, nil
		}
		return file, fmt.Errorf("read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		return file, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return file, nil
}

func defaultConfigPath(env map[string]string) string {
	if dir := strings.TrimSpace(env["XDG_CONFIG_HOME"]); dir != "" {
		return filepath.Join(dir, programName, "config.toml")
	}
	if home := strings.TrimSpace(env["HOME"]); home != "" {
		return filepath.Join(home, ".config", programName, "config.toml")
	}
	return ""
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func hasEnv(env map[string]string, key string) bool {
	v, ok := env[key]
	return ok && strings.TrimSpace(v) != ""
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func pickBool(fs *pflag.FlagSet, name string, flagValue bool, env map[string]string, key string, fileValue bool) bool {
	if fs.Changed(name) {
		return flagValue
	}
	return envOrBool(env, key, fileValue)
}

func pickInt(fs *pflag.FlagSet, name string, flagValue int, env map[string]string, key string, fileValue int) int {
	if fs.Changed(name) {
		return flagValue
	}
	return envOrInt(env, key, fileValue)
}

func pickString(fs *pflag.FlagSet, name string, flagValue string, env map[string]string, key string, fileValue string) string {
	if fs.Changed(name) {
		return flagValue
	}
	return envOrDefault(env, key, fileValue)
}

// MustLoad returns configuration or exits. Help requests print usage and
// exit successfully.
func MustLoad() Config {
	cfg, err := Load()
	if errors.Is(err, ErrHelp) {
		fmt.Fprint(os.Stdout, Usage())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		fmt.Fprint(os.Stderr, Usage())
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the configuration is usable.
func Validate(cfg Config) error {
	if cfg.App.Lines < 0 {
		return fmt.Errorf("lines must be >= 0 (got %d)", cfg.App.Lines)
	}
	return nil
}
