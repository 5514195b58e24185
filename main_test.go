package main

import (
	"testing"
	"time"

	"github.com/scenebrowse/similar-scenes/internal/app"
	"github.com/scenebrowse/similar-scenes/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Endpoint:   "http://stash.local/graphql",
			Width:      120,
			Height:     40,
			Interval:   500 * time.Millisecond,
			SampleSize: 10,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"endpoint":    "http://stash.local/graphql",
			"width":       "120",
			"sample-size": "10",
		},
		Args: []string{"--endpoint", "http://stash.local/graphql"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["endpoint"] != "http://stash.local/graphql" {
		t.Fatalf("expected endpoint flag, got %v", flagsValue["endpoint"])
	}
	if flagsValue["sample-size"] != "10" {
		t.Fatalf("expected sample-size 10, got %v", flagsValue["sample-size"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace true, got %v", flagsValue["trace"])
	}
}
