package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/scenebrowse/similar-scenes/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envEndpoint   = "SIMILAR_SCENES_ENDPOINT"
	envAPIKey     = "SIMILAR_SCENES_API_KEY"
	envWidth      = "SIMILAR_SCENES_WIDTH"
	envHeight     = "SIMILAR_SCENES_HEIGHT"
	envInterval   = "SIMILAR_SCENES_INTERVAL_MS"
	envSampleSize = "SIMILAR_SCENES_SAMPLE_SIZE"
	envTrace      = "SIMILAR_SCENES_TRACE"
	envLogFile    = "SIMILAR_SCENES_LOG_FILE"
)

const defaultEndpoint = "http://localhost:9999/graphql"

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("similar-scenes", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	endpoint := fs.String("endpoint", envOrDefault(env, envEndpoint, defaultEndpoint), "GraphQL endpoint of the media server")
	apiKey := fs.String("api-key", envOrDefault(env, envAPIKey, ""), "API key sent with every query (optional)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	interval := fs.Int("interval", envOrInt(env, envInterval, 500), "detection interval in milliseconds")
	sample := fs.Int("sample-size", envOrInt(env, envSampleSize, 10), "number of similar scenes shown in the panel")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *interval <= 0 {
		return Config{}, fmt.Errorf("interval must be > 0 (got %d)", *interval)
	}
	if *sample <= 0 {
		return Config{}, fmt.Errorf("sample-size must be > 0 (got %d)", *sample)
	}

	cfg := Config{
		App: app.Config{
			Endpoint:   *endpoint,
			APIKey:     *apiKey,
			Width:      *width,
			Height:     *height,
			Interval:   time.Duration(*interval) * time.Millisecond,
			SampleSize: *sample,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"endpoint":    *endpoint,
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"interval":    strconv.Itoa(*interval),
			"sample-size": strconv.Itoa(*sample),
			"trace":       strconv.FormatBool(*trace),
			"logFile":     *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
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

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.Endpoint) == "" {
		return fmt.Errorf("endpoint must not be empty")
	}
	return nil
}
