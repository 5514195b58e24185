package config

import (
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Endpoint != defaultEndpoint {
		t.Fatalf("endpoint = %q, want %q", cfg.App.Endpoint, defaultEndpoint)
	}
	if cfg.App.Interval != 500*time.Millisecond {
		t.Fatalf("interval = %v, want 500ms", cfg.App.Interval)
	}
	if cfg.App.SampleSize != 10 {
		t.Fatalf("sample size = %d, want 10", cfg.App.SampleSize)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected auto dimensions, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.Logging.Trace {
		t.Fatal("trace enabled by default")
	}
}

func TestLoadArgsEnvironmentOverrides(t *testing.T) {
	environ := []string{
		"SIMILAR_SCENES_ENDPOINT=http://stash.local/graphql",
		"SIMILAR_SCENES_API_KEY=secret",
		"SIMILAR_SCENES_INTERVAL_MS=250",
		"SIMILAR_SCENES_SAMPLE_SIZE=4",
		"SIMILAR_SCENES_TRACE=true",
		"SIMILAR_SCENES_LOG_FILE=/tmp/panel.log",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Endpoint != "http://stash.local/graphql" {
		t.Fatalf("endpoint = %q", cfg.App.Endpoint)
	}
	if cfg.App.APIKey != "secret" {
		t.Fatalf("api key = %q", cfg.App.APIKey)
	}
	if cfg.App.Interval != 250*time.Millisecond {
		t.Fatalf("interval = %v, want 250ms", cfg.App.Interval)
	}
	if cfg.App.SampleSize != 4 {
		t.Fatalf("sample size = %d, want 4", cfg.App.SampleSize)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/panel.log" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
}

func TestLoadArgsFlagsBeatEnvironment(t *testing.T) {
	environ := []string{"SIMILAR_SCENES_ENDPOINT=http://env.local/graphql"}
	args := []string{"--endpoint", "http://flag.local/graphql", "--sample-size", "3"}
	cfg, err := LoadArgs(args, environ)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Endpoint != "http://flag.local/graphql" {
		t.Fatalf("endpoint = %q, flag should win", cfg.App.Endpoint)
	}
	if cfg.App.SampleSize != 3 {
		t.Fatalf("sample size = %d, want 3", cfg.App.SampleSize)
	}
	if cfg.Flags["endpoint"] != "http://flag.local/graphql" {
		t.Fatalf("flags snapshot = %v", cfg.Flags)
	}
}

func TestLoadArgsRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"negative width", []string{"--width", "-1"}},
		{"negative height", []string{"--height", "-2"}},
		{"zero interval", []string{"--interval", "0"}},
		{"zero sample size", []string{"--sample-size", "0"}},
		{"unknown flag", []string{"--bogus"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadArgs(tc.args, nil); err == nil {
				t.Fatalf("expected error for %v", tc.args)
			}
		})
	}
}

func TestLoadArgsIgnoresMalformedEnvNumbers(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"SIMILAR_SCENES_INTERVAL_MS=soon"})
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if cfg.App.Interval != 500*time.Millisecond {
		t.Fatalf("interval = %v, want default 500ms", cfg.App.Interval)
	}
}

func TestValidateRequiresEndpoint(t *testing.T) {
	cfg, err := LoadArgs([]string{"--endpoint", "  "}, nil)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation error for blank endpoint")
	}

	good, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs returned error: %v", err)
	}
	if err := Validate(good); err != nil {
		t.Fatalf("Validate failed for defaults: %v", err)
	}
}
