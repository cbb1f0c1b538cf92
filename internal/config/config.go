// Package config loads and validates the pages.json project
// configuration.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/davestewart/wxt-module-pages/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "pages.json"

	// DefaultDriver is the driver used when none is configured.
	DefaultDriver = "vue"

	// DefaultOutDir is the default output directory for generated route
	// modules, relative to the project directory.
	DefaultOutDir = ".generated/pages"

	// DefaultPort is the default development server port.
	DefaultPort = 3100

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// GlobalScope is the scope assigned to the top-level pages root and
	// always present in generated output.
	GlobalScope = "global"
)

// RootConfig names one pages root and its ambient scope.
type RootConfig struct {
	// Dir is the pages directory, relative to the project directory.
	Dir string `json:"dir"`

	// Scope is the ambient scope label; defaults to "global".
	Scope string `json:"scope,omitempty"`
}

// DevConfig contains development server configuration.
type DevConfig struct {
	// Host is the address the dev server binds to.
	Host string `json:"host,omitempty"`

	// Port is the dev server port.
	Port int `json:"port,omitempty"`

	// Debounce is the watcher debounce interval in milliseconds.
	Debounce int `json:"debounce,omitempty"`
}

// Config represents the complete pages.json configuration.
type Config struct {
	// Driver selects the rendering driver ("vue" or "react").
	Driver string `json:"driver,omitempty"`

	// SrcDir is the directory searched for pages roots when Roots is
	// empty, relative to the project directory.
	SrcDir string `json:"srcDir,omitempty"`

	// OutDir is where generated route modules are written.
	OutDir string `json:"outDir,omitempty"`

	// Roots lists the pages roots explicitly. Empty means discover by
	// convention (pages/ and entrypoints/*/pages).
	Roots []RootConfig `json:"roots,omitempty"`

	// LayoutFile overrides the driver's layout file name.
	LayoutFile string `json:"layoutFile,omitempty"`

	// ParentFile overrides the driver's parent file name.
	ParentFile string `json:"parentFile,omitempty"`

	// Dev contains development server configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// configPath is where the config was loaded from, empty for
	// defaults.
	configPath string
	dir        string
}

// New returns a configuration with defaults applied, anchored at dir.
func New(dir string) *Config {
	cfg := &Config{dir: dir}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from the specified directory, looking for
// pages.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E101").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " or run without a config to use defaults")
		}
		return nil, errors.New("E102").Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E102").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.dir = filepath.Dir(path)
	cfg.applyDefaults()
	cfg.applyEnv()

	return cfg, nil
}

// LoadFromWorkingDir loads pages.json from the working directory or the
// nearest parent containing one. A missing config is not an error; the
// defaults apply, anchored at the working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	dir := wd
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	cfg := New(wd)
	cfg.applyEnv()
	return cfg, nil
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Driver == "" {
		c.Driver = DefaultDriver
	}
	if c.SrcDir == "" {
		c.SrcDir = "."
	}
	if c.OutDir == "" {
		c.OutDir = DefaultOutDir
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	for i := range c.Roots {
		if c.Roots[i].Scope == "" {
			c.Roots[i].Scope = GlobalScope
		}
	}
}

// applyEnv loads a .env file if present and applies PAGEGEN_*
// environment overrides.
func (c *Config) applyEnv() {
	_ = godotenv.Load(filepath.Join(c.dir, ".env"))

	if v := os.Getenv("PAGEGEN_DRIVER"); v != "" {
		c.Driver = v
	}
	if v := os.Getenv("PAGEGEN_OUT_DIR"); v != "" {
		c.OutDir = v
	}
	if v := os.Getenv("PAGEGEN_DEV_HOST"); v != "" {
		c.Dev.Host = v
	}
	if v := os.Getenv("PAGEGEN_DEV_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			c.Dev.Port = port
		}
	}
}

// Path returns the path the config was loaded from, empty for defaults.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the project directory.
func (c *Config) Dir() string {
	return c.dir
}

// SrcPath returns the absolute path of the source directory.
func (c *Config) SrcPath() string {
	return filepath.Join(c.dir, c.SrcDir)
}

// OutPath returns the absolute path of the output directory.
func (c *Config) OutPath() string {
	if filepath.IsAbs(c.OutDir) {
		return c.OutDir
	}
	return filepath.Join(c.dir, c.OutDir)
}

// DevAddress returns the host:port address for the dev server.
func (c *Config) DevAddress() string {
	return c.Dev.Host + ":" + strconv.Itoa(c.Dev.Port)
}
