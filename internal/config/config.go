package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/hero-slider/internal/app"
	"github.com/atomicstack/hero-slider/internal/gesture"
	"github.com/atomicstack/hero-slider/internal/slide"
	"github.com/joho/godotenv"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	EnvFile  string
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	// List prints the catalog and exits instead of starting the slider.
	List bool
}

const (
	envCatalog        = "HERO_SLIDER_CATALOG"
	envWidth          = "HERO_SLIDER_WIDTH"
	envHeight         = "HERO_SLIDER_HEIGHT"
	envCooldown       = "HERO_SLIDER_COOLDOWN"
	envWheelThreshold = "HERO_SLIDER_WHEEL_THRESHOLD"
	envWheelStep      = "HERO_SLIDER_WHEEL_STEP"
	envSwipeThreshold = "HERO_SLIDER_SWIPE_THRESHOLD"
	envDragScale      = "HERO_SLIDER_DRAG_SCALE"
	envShowFooter     = "HERO_SLIDER_FOOTER"
	envTrace          = "HERO_SLIDER_TRACE"
	envLogFile        = "HERO_SLIDER_LOG_FILE"
	envEnvFile        = "HERO_SLIDER_ENV_FILE"

	defaultEnvFile   = ".env"
	defaultWheelStep = 40.0
	defaultDragScale = 12.0
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values from the
// dotenv file only fill keys missing from environ.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)
	envFile, explicit := locateEnvFile(args, env)
	if envFile != "" {
		fileEnv, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			for k, v := range fileEnv {
				if _, ok := env[k]; !ok {
					env[k] = v
				}
			}
		case explicit || !errors.Is(err, os.ErrNotExist):
			return Config{}, fmt.Errorf("read env file %s: %w", envFile, err)
		default:
			envFile = ""
		}
	}

	fs := flag.NewFlagSet("hero-slider", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("env-file", envFile, "dotenv file with HERO_SLIDER_* defaults")
	catalogPath := fs.String("catalog", envOrDefault(env, envCatalog, ""), "path to a JSON catalog (built-in catalog when empty)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	cooldown := fs.Duration("cooldown", envOrDuration(env, envCooldown, slide.DefaultCooldown), "lock duration after each slide transition")
	wheelThreshold := fs.Float64("wheel-threshold", envOrFloat(env, envWheelThreshold, gesture.DefaultWheelThreshold), "smallest wheel delta that changes slide")
	wheelStep := fs.Float64("wheel-step", envOrFloat(env, envWheelStep, defaultWheelStep), "delta reported for one mouse wheel notch")
	swipeThreshold := fs.Float64("swipe-threshold", envOrFloat(env, envSwipeThreshold, gesture.DefaultSwipeThreshold), "vertical distance a drag must exceed")
	dragScale := fs.Float64("drag-scale", envOrFloat(env, envDragScale, defaultDragScale), "vertical units per terminal row when dragging")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the social footer row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	list := fs.Bool("list", false, "print the catalog and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			CatalogPath:    *catalogPath,
			Width:          *width,
			Height:         *height,
			Cooldown:       *cooldown,
			WheelThreshold: *wheelThreshold,
			WheelStep:      *wheelStep,
			SwipeThreshold: *swipeThreshold,
			DragScale:      *dragScale,
			ShowFooter:     *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			List: *list,
		},
		EnvFile: envFile,
		Flags: map[string]string{
			"catalog":         *catalogPath,
			"width":           strconv.Itoa(*width),
			"height":          strconv.Itoa(*height),
			"cooldown":        cooldown.String(),
			"wheel-threshold": formatFloat(*wheelThreshold),
			"wheel-step":      formatFloat(*wheelStep),
			"swipe-threshold": formatFloat(*swipeThreshold),
			"drag-scale":      formatFloat(*dragScale),
			"footer":          strconv.FormatBool(*footer),
			"trace":           strconv.FormatBool(*trace),
			"logFile":         *logFile,
			"list":            strconv.FormatBool(*list),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// locateEnvFile finds the dotenv path before the flag set is built so its
// values can seed flag defaults. explicit is true when the user named a file.
func locateEnvFile(args []string, env map[string]string) (string, bool) {
	for i, arg := range args {
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") || name != "env-file" {
			continue
		}
		if hasValue {
			return value, true
		}
		if i+1 < len(args) {
			return args[i+1], true
		}
	}
	if v, ok := env[envEnvFile]; ok && strings.TrimSpace(v) != "" {
		return v, true
	}
	return defaultEnvFile, false
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

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
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

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
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

// Validate rejects values the slider cannot run with.
func Validate(cfg Config) error {
	a := cfg.App
	switch {
	case a.Width < 0:
		return fmt.Errorf("width must be >= 0 (got %d)", a.Width)
	case a.Height < 0:
		return fmt.Errorf("height must be >= 0 (got %d)", a.Height)
	case a.Cooldown <= 0:
		return fmt.Errorf("cooldown must be positive (got %s)", a.Cooldown)
	case a.WheelThreshold <= 0:
		return fmt.Errorf("wheel-threshold must be positive (got %s)", formatFloat(a.WheelThreshold))
	case a.SwipeThreshold <= 0:
		return fmt.Errorf("swipe-threshold must be positive (got %s)", formatFloat(a.SwipeThreshold))
	case a.WheelStep <= 0:
		return fmt.Errorf("wheel-step must be positive (got %s)", formatFloat(a.WheelStep))
	case a.DragScale <= 0:
		return fmt.Errorf("drag-scale must be positive (got %s)", formatFloat(a.DragScale))
	}
	return nil
}
