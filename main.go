package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/atomicstack/hero-slider/internal/app"
	"github.com/atomicstack/hero-slider/internal/catalog"
	"github.com/atomicstack/hero-slider/internal/config"
	"github.com/atomicstack/hero-slider/internal/format/table"
	"github.com/atomicstack/hero-slider/internal/logging"
	"github.com/atomicstack/hero-slider/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	if runtimeCfg.Features.List {
		c, err := app.LoadCatalog(runtimeCfg.App)
		if err != nil {
			logging.Error(err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printCatalog(os.Stdout, c)
		return
	}

	err := app.Run(runtimeCfg.App)
	events.App.Exit(err)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// printCatalog writes one aligned row per catalog item.
func printCatalog(w io.Writer, c *catalog.Catalog) {
	rows := [][]string{{"#", "NAME", "BRAND", "NOTES", "MEDIA"}}
	for i, item := range c.Items() {
		mediaRef := item.ImageRef
		if item.HasVideo() {
			mediaRef = item.VideoRef + " (" + item.VideoEnd.String() + ")"
		}
		rows = append(rows, []string{strconv.Itoa(i + 1), item.DisplayName, item.BrandName, item.HighlightText, mediaRef})
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignRight}) {
		fmt.Fprintln(w, line)
	}
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg,
		"envFile": cfg.EnvFile,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and
// dimensions. The slider needs a terminal on stdout to draw into.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
