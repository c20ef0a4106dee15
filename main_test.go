package main

import (
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/hero-slider/internal/app"
	"github.com/atomicstack/hero-slider/internal/catalog"
	"github.com/atomicstack/hero-slider/internal/config"
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
			CatalogPath: "catalog.json",
			Width:       80,
			Height:      24,
			Cooldown:    time.Second,
			ShowFooter:  true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		EnvFile: ".env",
		Flags: map[string]string{
			"catalog":  "catalog.json",
			"width":    "80",
			"cooldown": "1s",
		},
		Args: []string{"--catalog", "catalog.json"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["catalog"] != "catalog.json" {
		t.Fatalf("expected catalog flag, got %v", flagsValue["catalog"])
	}
	if flagsValue["cooldown"] != "1s" {
		t.Fatalf("expected cooldown 1s, got %v", flagsValue["cooldown"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["envFile"] != ".env" {
		t.Fatalf("expected env file in payload, got %v", payload["envFile"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestPrintCatalogListsEveryItem(t *testing.T) {
	var b strings.Builder
	printCatalog(&b, catalog.Default())
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d:\n%s", len(lines), b.String())
	}
	if !strings.HasPrefix(lines[0], "#  NAME") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[3], "BLACK ORCHID") || !strings.Contains(lines[3], "assets/Orchid.mp4 (freeze)") {
		t.Fatalf("unexpected row %q", lines[3])
	}
}
