// Package config provides hierarchical configuration for notekit using
// koanf. Values are loaded with priority: environment variables (NOTEKIT_*)
// > project config (.notekit/config.yml) > user config
// (~/.config/notekit/config.yml) > defaults. YAML is the primary format with
// legacy JSON support.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces notekit's environment variables.
const envPrefix = "NOTEKIT_"

// Settings is the notekit CLI configuration.
type Settings struct {
	// RootDir is the installation root, relative to the project root.
	RootDir string `koanf:"root_dir"`
	// NoColor disables colored terminal output.
	NoColor bool `koanf:"no_color"`
	// ShowProgress toggles the install spinner on TTYs.
	ShowProgress bool `koanf:"show_progress"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// LogFile is an optional path for JSON log output.
	LogFile string `koanf:"log_file"`
}

// LoadOptions configures where config files are looked up.
type LoadOptions struct {
	// ProjectDir is the directory whose project config applies.
	// Empty means the current working directory.
	ProjectDir string
	// SkipUser skips the user-level config, used by tests.
	SkipUser bool
}

// Load resolves the effective settings.
func Load(opts LoadOptions) (*Settings, error) {
	k := koanf.New(".")

	paths := make([]string, 0, 2)
	if !opts.SkipUser {
		if p := userConfigPath(); p != "" {
			paths = append(paths, p)
		}
	}
	paths = append(paths, projectConfigPath(opts.ProjectDir))

	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := k.Load(file.Provider(p), parserFor(p)); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", p, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	settings := Defaults()
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &settings, nil
}

func parserFor(path string) koanf.Parser {
	if strings.HasSuffix(path, ".json") {
		return kjson.Parser()
	}
	return kyaml.Parser()
}

// userConfigPath returns ~/.config/notekit/config.yml (or the JSON legacy
// variant when only that exists). Empty when no user config dir resolves.
func userConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(base, "notekit")
	return firstExisting(dir, filepath.Join(dir, "config.yml"))
}

// projectConfigPath returns <dir>/.notekit/config.yml, preferring an
// existing legacy config.json when the YAML file is absent.
func projectConfigPath(dir string) string {
	base := filepath.Join(dir, ".notekit")
	return firstExisting(base, filepath.Join(base, "config.yml"))
}

// firstExisting probes the known config filenames under dir and returns the
// first present, falling back to fallback so Stat can decide.
func firstExisting(dir, fallback string) string {
	for _, name := range []string{"config.yml", "config.yaml", "config.json"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return fallback
}
