package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/df07/go-weekend-raytracer/pkg/logging"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

const (
	// DefaultWidth is the image width in pixels
	DefaultWidth = 400
	// DefaultAspectRatio is the image width/height ratio
	DefaultAspectRatio = 16.0 / 9.0
	// DefaultSamplesPerPixel is the number of jittered samples averaged per pixel
	DefaultSamplesPerPixel = 100
	// DefaultMaxDepth bounds the number of bounces per primary ray
	DefaultMaxDepth = 50
	// DefaultOutputPath is where the rendered image is written
	DefaultOutputPath = "image.ppm"
	// DefaultLogLevel controls verbosity
	DefaultLogLevel = "info"
	// DefaultSceneName selects the built-in scene when no scene is described
	DefaultSceneName = "default"
)

// Output formats
const (
	FormatPPM = "ppm"
	FormatPNG = "png"
)

// Output compression codecs
const (
	CompressionNone   = "none"
	CompressionZstd   = "zstd"
	CompressionSnappy = "snappy"
)

// Config represents the main configuration
type Config struct {
	Image     ImageConfig    `yaml:"image"`
	Sampling  SamplingConfig `yaml:"sampling"`
	Output    OutputConfig   `yaml:"output"`
	Log       LogConfig      `yaml:"log"`
	SceneName string         `yaml:"scene_name"`
	Scene     *SceneConfig   `yaml:"scene,omitempty"`
}

// ImageConfig contains image dimensions
type ImageConfig struct {
	Width       int     `yaml:"width"`
	AspectRatio float64 `yaml:"aspect_ratio"`
}

// SamplingConfig contains sampler and integrator parameters
type SamplingConfig struct {
	SamplesPerPixel int   `yaml:"samples_per_pixel"`
	MaxDepth        int   `yaml:"max_depth"`
	Seed            int64 `yaml:"seed"` // 0 means seed from the clock
}

// OutputConfig describes the image file
type OutputConfig struct {
	Path        string `yaml:"path"`
	Format      string `yaml:"format"`      // ppm, png; empty infers from path
	Compression string `yaml:"compression"` // none, zstd, snappy; empty infers from path
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
}

// SceneConfig describes a scene made of spheres
type SceneConfig struct {
	Materials []MaterialConfig `yaml:"materials"`
	Spheres   []SphereConfig   `yaml:"spheres"`
}

// MaterialConfig describes a named material
type MaterialConfig struct {
	Name   string    `yaml:"name"`
	Type   string    `yaml:"type"`
	Albedo []float64 `yaml:"albedo"`
}

// SphereConfig describes a sphere referencing a material by name
type SphereConfig struct {
	Center   []float64 `yaml:"center"`
	Radius   float64   `yaml:"radius"`
	Material string    `yaml:"material"`
}

// Default creates a default configuration
func Default() *Config {
	return &Config{
		Image: ImageConfig{
			Width:       DefaultWidth,
			AspectRatio: DefaultAspectRatio,
		},
		Sampling: SamplingConfig{
			SamplesPerPixel: DefaultSamplesPerPixel,
			MaxDepth:        DefaultMaxDepth,
		},
		Output: OutputConfig{
			Path: DefaultOutputPath,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		SceneName: DefaultSceneName,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := Parse(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping values the document does not mention
func Parse(data []byte, cfg *Config) error {
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// Save writes the configuration as YAML
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("serialize config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Height returns the image height derived from width and aspect ratio
func (c *Config) Height() int {
	return int(float64(c.Image.Width) / c.Image.AspectRatio)
}

// ResolvedFormat returns the output format, inferring it from the path when unset
func (c *Config) ResolvedFormat() string {
	if c.Output.Format != "" {
		return strings.ToLower(c.Output.Format)
	}
	ext := strings.ToLower(filepath.Ext(trimCompressionSuffix(c.Output.Path)))
	if ext == ".png" {
		return FormatPNG
	}
	return FormatPPM
}

// ResolvedCompression returns the output codec, inferring it from the path when unset
func (c *Config) ResolvedCompression() string {
	if c.Output.Compression != "" {
		return strings.ToLower(c.Output.Compression)
	}
	switch strings.ToLower(filepath.Ext(c.Output.Path)) {
	case ".zst":
		return CompressionZstd
	case ".sz":
		return CompressionSnappy
	default:
		return CompressionNone
	}
}

func trimCompressionSuffix(path string) string {
	lower := strings.ToLower(path)
	for _, suffix := range []string{".zst", ".sz"} {
		if strings.HasSuffix(lower, suffix) {
			return path[:len(path)-len(suffix)]
		}
	}
	return path
}

// Validate returns a descriptive error for the first invalid setting
func (c *Config) Validate() error {
	if c.Image.Width < 1 {
		return fmt.Errorf("image.width must be at least 1, got %d", c.Image.Width)
	}
	if c.Image.AspectRatio <= 0 {
		return fmt.Errorf("image.aspect_ratio must be positive, got %g", c.Image.AspectRatio)
	}
	if c.Height() < 1 {
		return fmt.Errorf("image height %d/%g rounds to zero", c.Image.Width, c.Image.AspectRatio)
	}
	if c.Sampling.SamplesPerPixel < 1 {
		return fmt.Errorf("sampling.samples_per_pixel must be at least 1, got %d", c.Sampling.SamplesPerPixel)
	}
	if c.Sampling.MaxDepth < 1 {
		return fmt.Errorf("sampling.max_depth must be at least 1, got %d", c.Sampling.MaxDepth)
	}
	if strings.TrimSpace(c.Output.Path) == "" {
		return fmt.Errorf("output.path must be specified")
	}
	switch c.ResolvedFormat() {
	case FormatPPM, FormatPNG:
	default:
		return fmt.Errorf("unknown output.format %q", c.Output.Format)
	}
	switch c.ResolvedCompression() {
	case CompressionNone, CompressionZstd, CompressionSnappy:
	default:
		return fmt.Errorf("unknown output.compression %q", c.Output.Compression)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Scene != nil {
		return c.Scene.Validate()
	}
	return nil
}

// Validate checks material types, radii and material references
func (s *SceneConfig) Validate() error {
	names := make(map[string]bool, len(s.Materials))
	for i, m := range s.Materials {
		if m.Name == "" {
			return fmt.Errorf("scene.materials[%d]: name must be specified", i)
		}
		if names[m.Name] {
			return fmt.Errorf("scene.materials[%d]: duplicate material name %q", i, m.Name)
		}
		if _, err := material.ParseKind(m.Type); err != nil {
			return fmt.Errorf("scene.materials[%d]: %w", i, err)
		}
		if err := checkVec3(m.Albedo); err != nil {
			return fmt.Errorf("scene.materials[%d]: albedo %w", i, err)
		}
		names[m.Name] = true
	}
	for i, sp := range s.Spheres {
		if err := checkVec3(sp.Center); err != nil {
			return fmt.Errorf("scene.spheres[%d]: center %w", i, err)
		}
		if !(sp.Radius > 0) || math.IsInf(sp.Radius, 1) {
			return fmt.Errorf("scene.spheres[%d]: radius must be positive and finite, got %g", i, sp.Radius)
		}
		if !names[sp.Material] {
			return fmt.Errorf("scene.spheres[%d]: unknown material %q", i, sp.Material)
		}
	}
	return nil
}

// checkVec3 requires exactly three finite components
func checkVec3(v []float64) error {
	if len(v) != 3 {
		return fmt.Errorf("needs 3 components, got %d", len(v))
	}
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("components must be finite, got %v", v)
		}
	}
	return nil
}
