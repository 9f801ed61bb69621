package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/domweave/domweave/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "domweave.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 4800

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutputDir is the default directory for generated bindings.
	DefaultOutputDir = "pkg/hdom"

	// DefaultFacadeDir is the default directory for the facade wrappers.
	DefaultFacadeDir = "el"

	// DefaultDocsOutput is the default path for the rendered schema
	// reference.
	DefaultDocsOutput = "dist/reference.html"
)

// Config represents the complete domweave.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Schema is the path to the binding schema table. Empty means the
	// embedded default table.
	Schema string `json:"schema,omitempty"`

	// Output contains binding generation settings.
	Output OutputConfig `json:"output,omitempty"`

	// Preview contains preview server settings.
	Preview PreviewConfig `json:"preview,omitempty"`

	// Publish contains docs publishing settings.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path the config was loaded from.
	configPath string
}

// OutputConfig contains binding generation settings.
type OutputConfig struct {
	// Dir receives the core binding files.
	Dir string `json:"dir,omitempty"`

	// FacadeDir receives the facade wrapper files.
	FacadeDir string `json:"facadeDir,omitempty"`

	// ImportPath is the import path of the core binding package, used
	// by the facade wrappers.
	ImportPath string `json:"importPath,omitempty"`

	// Docs is the output path for the rendered schema reference.
	Docs string `json:"docs,omitempty"`
}

// PreviewConfig contains preview server settings.
type PreviewConfig struct {
	// Port is the port the preview server listens on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Watch contains extra paths to watch for changes besides the
	// schema file.
	Watch []string `json:"watch,omitempty"`
}

// PublishConfig contains docs publishing settings.
type PublishConfig struct {
	// Bucket is the S3 bucket receiving the rendered docs.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the key prefix inside the bucket.
	Prefix string `json:"prefix,omitempty"`

	// Region is the bucket region. Empty defers to the SDK defaults.
	Region string `json:"region,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:        DefaultOutputDir,
			FacadeDir:  DefaultFacadeDir,
			ImportPath: "github.com/domweave/domweave/pkg/hdom",
			Docs:       DefaultDocsOutput,
		},
		Preview: PreviewConfig{
			Port: DefaultPort,
			Host: DefaultHost,
		},
	}
}

// Load reads configuration from the specified directory, looking for
// domweave.json.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E001").
				WithDetail("No domweave.json found in " + filepath.Dir(path)).
				WithSuggestion("Create domweave.json in the project root")
		}
		return nil, errors.FromError(err, "E001")
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E002").
			WithDetail(err.Error()).
			WithSuggestion("Check domweave.json for trailing commas or unquoted keys")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromWorkingDir walks up from the current directory to the first
// domweave.json.
func LoadFromWorkingDir() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, errors.FromError(err, "E001")
	}

	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, errors.New("E001").
				WithSuggestion("Create domweave.json in the project root")
		}
		dir = parent
	}
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.FromError(err, "E002")
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.FromError(err, "E002")
	}
	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

func (c *Config) applyDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Output.FacadeDir == "" {
		c.Output.FacadeDir = DefaultFacadeDir
	}
	if c.Output.Docs == "" {
		c.Output.Docs = DefaultDocsOutput
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
}

func (c *Config) validate() error {
	if c.Preview.Port < 1 || c.Preview.Port > 65535 {
		return errors.New("E003").
			WithDetail("preview.port must be between 1 and 65535")
	}
	return nil
}
