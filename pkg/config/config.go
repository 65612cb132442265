// Package config carries the Dojo toolkit settings the widget catalog and the
// dijit renderer depend on: toolkit version, base URL for toolkit assets, and
// the page theme. Configurations load from YAML documents or start from
// Default.
package config

import (
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultVersion is the toolkit version assumed when none is configured.
	DefaultVersion = "1.6.1"
	// DefaultBaseURL points at the Google CDN hosting of the toolkit.
	DefaultBaseURL = "https://ajax.googleapis.com/ajax/libs/dojo/1.6.1"
	// DefaultTheme is the dijit theme applied to rendered forms.
	DefaultTheme = "claro"
)

// Config describes the client toolkit deployment rendered markup targets.
type Config struct {
	Version string `yaml:"version"`
	BaseURL string `yaml:"base_url"`
	Theme   string `yaml:"theme"`
}

// Default returns the CDN-backed configuration.
func Default() Config {
	return Config{
		Version: DefaultVersion,
		BaseURL: DefaultBaseURL,
		Theme:   DefaultTheme,
	}
}

// Load reads a YAML configuration from disk, filling unset values from
// Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return parse(data, path)
}

// LoadFS reads a YAML configuration from the provided filesystem.
func LoadFS(fsys fs.FS, path string) (Config, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return parse(data, path)
}

func parse(data []byte, path string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Version = strings.TrimSpace(cfg.Version)
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	cfg.Theme = strings.TrimSpace(cfg.Theme)
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Theme == "" {
		cfg.Theme = DefaultTheme
	}
	return cfg, nil
}

// VersionBefore reports whether the configured toolkit version predates the
// given one. Versions compare segment by segment numerically; malformed
// segments compare as zero. Several widgets swap their module requires on
// this answer (pre-1.3 toolkits bundle sliders and radio buttons
// differently).
func (c Config) VersionBefore(version string) bool {
	return compareVersions(c.Version, version) < 0
}

// ThemeCSS returns the URL of the configured theme stylesheet.
func (c Config) ThemeCSS() string {
	theme := c.Theme
	if theme == "" {
		theme = DefaultTheme
	}
	return fmt.Sprintf("%s/dijit/themes/%s/%s.css", c.BaseURL, theme, theme)
}

// AssetURL resolves a toolkit-relative asset path (for example
// "dojox/form/resources/Rating.css") against the configured base URL.
func (c Config) AssetURL(path string) string {
	return c.BaseURL + "/" + strings.TrimLeft(path, "/")
}

func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		av, bv := 0, 0
		if i < len(as) {
			av, _ = strconv.Atoi(strings.TrimSpace(as[i]))
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(strings.TrimSpace(bs[i]))
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}
