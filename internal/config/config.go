package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/team1160/assistant-vision/internal/imaging"
	"github.com/team1160/assistant-vision/internal/particle"
	"github.com/team1160/assistant-vision/internal/vision"
)

// DefaultConfigPath is where the CLI looks for a tuning file when --config
// is not given.
const DefaultConfigPath = "config/vision.json"

// Camera sources.
const (
	// SourceAxis reads JPEG snapshots from the network camera.
	SourceAxis = "axis"
	// SourceDirectory replays the images of a directory in name order.
	SourceDirectory = "directory"
	// SourceFile serves one image for every frame.
	SourceFile = "file"
	// SourceVideo reads a video file or capture device (gocv builds only).
	SourceVideo = "video"
)

// Config is the complete tuning of the vision pipeline.
type Config struct {
	Camera    Camera           `json:"camera"`
	Threshold imaging.HSVRange `json:"threshold"`
	Particles Particles        `json:"particles"`
	Limits    vision.Limits    `json:"limits"`
	Artifacts Artifacts        `json:"artifacts"`

	// Verbose logs every particle's classification and scores.
	Verbose bool `json:"verbose"`
}

// Camera selects and describes the frame source.
type Camera struct {
	Source string `json:"source"`
	// Host is the address of the network camera (axis source).
	Host string `json:"host,omitempty"`
	// Path is an image directory, image file or video file/device.
	Path    string `json:"path,omitempty"`
	Timeout string `json:"timeout,omitempty"` // duration string like "2s"

	// Width and Height resize incoming frames; 0 keeps them as is.
	Width  int `json:"width"`
	Height int `json:"height"`

	// YResolution and ViewAngle describe the lens for ranging. YResolution
	// is the vertical resolution the view angle was measured at.
	YResolution int     `json:"y_resolution"`
	ViewAngle   float64 `json:"view_angle"`
}

// Particles configures particle analysis.
type Particles struct {
	// Backend is "go" or "gocv".
	Backend      string  `json:"backend,omitempty"`
	AreaMinimum  float64 `json:"area_minimum"`
	AreaMaximum  float64 `json:"area_maximum"`
	MaxParticles int     `json:"max_particles"`
}

// Artifacts are the paths of the diagnostic images. Empty disables a write.
type Artifacts struct {
	Threshold string `json:"threshold,omitempty"`
	Filtered  string `json:"filtered,omitempty"`
}

// Default returns the tuning used on the competition robot.
func Default() *Config {
	return &Config{
		Camera: Camera{
			Source:      SourceAxis,
			Host:        "10.11.60.11",
			Timeout:     "2s",
			Width:       640,
			Height:      480,
			YResolution: 480,
			ViewAngle:   49,
		},
		Threshold: imaging.HSVRange{
			HueLow: 136, HueHigh: 182,
			SatLow: 45, SatHigh: 255,
			ValLow: 116, ValHigh: 255,
		},
		Particles: Particles{
			Backend:      particle.BackendGo,
			AreaMinimum:  150,
			AreaMaximum:  65535,
			MaxParticles: 8,
		},
		Limits: vision.DefaultLimits(),
		Artifacts: Artifacts{
			Threshold: "/threshold.bmp",
			Filtered:  "/filteredImage.bmp",
		},
	}
}

// Load reads a Config from a JSON file. The file must have a .json extension
// and be under 1MB. Fields omitted from the file keep their Default values,
// so partial configs are safe.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads path, or returns Default when path is empty or the
// default path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultConfigPath); errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		path = DefaultConfigPath
	}
	return Load(path)
}

// Save writes c to path as indented JSON.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks that the configuration values are valid.
func (c *Config) Validate() error {
	switch c.Camera.Source {
	case SourceAxis:
		if c.Camera.Host == "" {
			return errors.New("camera.host is required for the axis source")
		}
	case SourceDirectory, SourceFile, SourceVideo:
		if c.Camera.Path == "" {
			return fmt.Errorf("camera.path is required for the %s source", c.Camera.Source)
		}
	default:
		return fmt.Errorf("unknown camera source %q", c.Camera.Source)
	}

	if c.Camera.Timeout != "" {
		if _, err := time.ParseDuration(c.Camera.Timeout); err != nil {
			return fmt.Errorf("invalid camera.timeout '%s': %w", c.Camera.Timeout, err)
		}
	}
	if c.Camera.Width < 0 || c.Camera.Height < 0 {
		return fmt.Errorf("camera resolution must be non-negative, got %dx%d", c.Camera.Width, c.Camera.Height)
	}
	if c.Camera.YResolution <= 0 {
		return fmt.Errorf("camera.y_resolution must be positive, got %d", c.Camera.YResolution)
	}
	if c.Camera.ViewAngle <= 0 || c.Camera.ViewAngle >= 180 {
		return fmt.Errorf("camera.view_angle must be between 0 and 180, got %f", c.Camera.ViewAngle)
	}

	if err := c.Threshold.Validate(); err != nil {
		return fmt.Errorf("threshold: %w", err)
	}

	if c.Particles.AreaMinimum < 0 || c.Particles.AreaMaximum < c.Particles.AreaMinimum {
		return fmt.Errorf("particles area range [%f, %f] is invalid", c.Particles.AreaMinimum, c.Particles.AreaMaximum)
	}
	if c.Particles.MaxParticles < 0 {
		return fmt.Errorf("particles.max_particles must be non-negative, got %d", c.Particles.MaxParticles)
	}
	switch c.Particles.Backend {
	case "", particle.BackendGo, particle.BackendGoCV:
	default:
		return fmt.Errorf("unknown particle backend %q", c.Particles.Backend)
	}

	limits := []struct {
		name  string
		value float64
	}{
		{"rectangularity", c.Limits.Rectangularity},
		{"aspect_ratio", c.Limits.AspectRatio},
		{"tape_width", c.Limits.TapeWidth},
		{"vertical_score", c.Limits.VerticalScore},
		{"lr_score", c.Limits.LRScore},
	}
	for _, l := range limits {
		if l.value < 0 || l.value > 100 {
			return fmt.Errorf("limits.%s must be between 0 and 100, got %f", l.name, l.value)
		}
	}
	return nil
}

// GetTimeout parses and returns the camera timeout.
func (c *Config) GetTimeout() time.Duration {
	if c.Camera.Timeout == "" {
		return 2 * time.Second // default
	}
	d, err := time.ParseDuration(c.Camera.Timeout)
	if err != nil {
		return 2 * time.Second // default on parse error
	}
	return d
}

// Geometry returns the camera geometry used for ranging.
func (c *Config) Geometry() vision.CameraGeometry {
	return vision.CameraGeometry{YResolution: c.Camera.YResolution, ViewAngle: c.Camera.ViewAngle}
}

// Criteria returns the particle area filter.
func (c *Config) Criteria() particle.Criteria {
	return particle.AreaRange(c.Particles.AreaMinimum, c.Particles.AreaMaximum)
}

// Scorer returns the scoring stage parameters.
func (c *Config) Scorer() vision.Scorer {
	return vision.Scorer{
		Limits:       c.Limits,
		Geometry:     c.Geometry(),
		MaxParticles: c.Particles.MaxParticles,
	}
}

// ProcessorOptions returns the Processor options described by c.
func (c *Config) ProcessorOptions(logger *log.Logger) vision.Options {
	return vision.Options{
		Scorer:        c.Scorer(),
		HSV:           c.Threshold,
		Criteria:      c.Criteria(),
		FrameWidth:    c.Camera.Width,
		FrameHeight:   c.Camera.Height,
		ThresholdPath: c.Artifacts.Threshold,
		FilteredPath:  c.Artifacts.Filtered,
		Verbose:       c.Verbose,
		Logger:        logger,
	}
}
