package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cyb3rnet/xhtml/internal/errors"
	"github.com/cyb3rnet/xhtml/pkg/document"
	"github.com/cyb3rnet/xhtml/pkg/render"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "xhtml.json"

	// DefaultLang is the language code written by New.
	DefaultLang = "en"

	// DefaultEncoding is the output charset written by New.
	DefaultEncoding = "utf-8"

	// DefaultBlueprint is the default blueprint file.
	DefaultBlueprint = "page.yaml"

	// DefaultOutput is the default generated file.
	DefaultOutput = "dist/index.html"

	// DefaultPort is the default preview server port.
	DefaultPort = 4000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultDebounce is the default delay between a file change and a reload.
	DefaultDebounce = "200ms"

	// DefaultContentType is the media type documents are served with.
	DefaultContentType = "text/html"
)

// Config represents the complete xhtml.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Lang is the short language code set on the html root.
	Lang string `json:"lang"`

	// Encoding is the output charset.
	Encoding string `json:"encoding"`

	// Doctype names the document type declaration.
	Doctype string `json:"doctype,omitempty"`

	// Blueprint is the path to the document blueprint.
	Blueprint string `json:"blueprint,omitempty"`

	// Output is the path the generated document is written to.
	Output string `json:"output,omitempty"`

	// Preview contains preview server configuration.
	Preview PreviewConfig `json:"preview,omitempty"`

	// Publish contains upload configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PreviewConfig contains preview server settings.
type PreviewConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// Watch reloads connected browsers when the blueprint changes.
	Watch bool `json:"watch,omitempty"`

	// Debounce is the quiet period after a change before reloading (e.g. "200ms").
	Debounce string `json:"debounce,omitempty"`

	// ContentType is the media type documents are served with.
	ContentType string `json:"contentType,omitempty"`
}

// PublishConfig contains S3 upload settings.
type PublishConfig struct {
	// Bucket is the destination bucket.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to the object key.
	Prefix string `json:"prefix,omitempty"`

	// Key is the object key. Defaults to the base name of Output.
	Key string `json:"key,omitempty"`

	// Region is the bucket region.
	Region string `json:"region,omitempty"`

	// Endpoint is a custom S3-compatible endpoint.
	Endpoint string `json:"endpoint,omitempty"`

	// PathStyle forces path-style addressing. Implied by Endpoint.
	PathStyle bool `json:"pathStyle,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Lang:      DefaultLang,
		Encoding:  DefaultEncoding,
		Doctype:   render.DefaultDoctype,
		Blueprint: DefaultBlueprint,
		Output:    DefaultOutput,
		Preview: PreviewConfig{
			Host:        DefaultHost,
			Port:        DefaultPort,
			Watch:       true,
			Debounce:    DefaultDebounce,
			ContentType: DefaultContentType,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for xhtml.json in the directory.
func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	return LoadFile(configPath)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigNotFound).
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Run 'xhtml init' to create one")
		}
		return nil, errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		e := errors.New(errors.CodeConfigInvalid).
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
		if se, ok := err.(*json.SyntaxError); ok {
			line, col := position(data, se.Offset)
			e = e.WithLocation(path, line, col)
		}
		return nil, e
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// position converts a byte offset into a 1-based line and column.
func position(data []byte, offset int64) (int, int) {
	line, col := 1, 1
	for i := int64(0); i < offset && i < int64(len(data)); i++ {
		if data[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
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
		return errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.CodeWriteFailed).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
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

// applyDefaults fills in default values for empty fields.
// Lang and Encoding are left alone: an explicit empty value fails Validate.
func (c *Config) applyDefaults() {
	if c.Doctype == "" {
		c.Doctype = render.DefaultDoctype
	}
	if c.Blueprint == "" {
		c.Blueprint = DefaultBlueprint
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}

	// Preview
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Preview.Debounce == "" {
		c.Preview.Debounce = DefaultDebounce
	}
	if c.Preview.ContentType == "" {
		c.Preview.ContentType = DefaultContentType
	}

	// Publish
	if c.Publish.Key == "" {
		c.Publish.Key = filepath.Base(c.Output)
	}
	if c.Publish.Endpoint != "" {
		c.Publish.PathStyle = true
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Lang == "" {
		return errors.New(errors.CodeMissingInitParameter).
			WithDetail("short_lang").
			WithSuggestion(`Set "lang" in ` + ConfigFileName)
	}
	if c.Encoding == "" {
		return errors.New(errors.CodeMissingInitParameter).
			WithDetail("encoding").
			WithSuggestion(`Set "encoding" in ` + ConfigFileName)
	}
	if _, err := render.NewRenderer(render.RendererConfig{Doctype: c.Doctype, Encoding: c.Encoding}); err != nil {
		return err
	}
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("Port must be between 0 and 65535")
	}
	if _, err := time.ParseDuration(c.Preview.Debounce); err != nil {
		return errors.New(errors.CodeConfigInvalid).
			WithDetailf("Invalid preview debounce %q", c.Preview.Debounce).
			Wrap(err)
	}
	return nil
}

// Params returns the document parameters described by the configuration.
func (c *Config) Params() document.Params {
	return document.Params{
		Lang:     c.Lang,
		Encoding: c.Encoding,
		Doctype:  c.Doctype,
	}
}

// PreviewAddress returns the address string for the preview server.
func (c *Config) PreviewAddress() string {
	return net.JoinHostPort(c.Preview.Host, strconv.Itoa(c.Preview.Port))
}

// PreviewURL returns the full URL for the preview server.
func (c *Config) PreviewURL() string {
	return "http://" + c.PreviewAddress()
}

// DebounceDuration returns the parsed preview debounce, falling back to
// DefaultDebounce.
func (c *Config) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.Preview.Debounce)
	if err != nil {
		d, _ = time.ParseDuration(DefaultDebounce)
	}
	return d
}

// BlueprintPath returns the absolute path to the blueprint.
func (c *Config) BlueprintPath() string {
	return c.resolve(c.Blueprint, DefaultBlueprint)
}

// OutputPath returns the absolute path to the generated document.
func (c *Config) OutputPath() string {
	return c.resolve(c.Output, DefaultOutput)
}

// ObjectKey returns the full S3 object key.
func (c *Config) ObjectKey() string {
	key := c.Publish.Key
	if key == "" {
		key = filepath.Base(c.OutputPath())
	}
	return c.Publish.Prefix + key
}

func (c *Config) resolve(path, fallback string) string {
	if path == "" {
		path = fallback
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing xhtml.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New(errors.CodeConfigNotFound).
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory").
				WithSuggestion("Run 'xhtml init' to create one")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
