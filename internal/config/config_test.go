package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/team1160/assistant-vision/internal/particle"
	"github.com/team1160/assistant-vision/internal/vision"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Camera.Source != SourceAxis || cfg.Camera.Host != "10.11.60.11" {
		t.Errorf("Expected axis camera at 10.11.60.11, got %s %q", cfg.Camera.Source, cfg.Camera.Host)
	}
	if cfg.Threshold.HueLow != 136 || cfg.Threshold.HueHigh != 182 {
		t.Errorf("Expected hue 136-182, got %d-%d", cfg.Threshold.HueLow, cfg.Threshold.HueHigh)
	}
	if cfg.Particles.AreaMinimum != 150 || cfg.Particles.AreaMaximum != 65535 {
		t.Errorf("Expected area range [150, 65535], got [%f, %f]", cfg.Particles.AreaMinimum, cfg.Particles.AreaMaximum)
	}
	if cfg.Artifacts.Threshold != "/threshold.bmp" || cfg.Artifacts.Filtered != "/filteredImage.bmp" {
		t.Errorf("Unexpected artifact paths %+v", cfg.Artifacts)
	}
	if diff := cmp.Diff(vision.DefaultLimits(), cfg.Limits); diff != "" {
		t.Errorf("Limits mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(vision.DefaultGeometry(), cfg.Geometry()); diff != "" {
		t.Errorf("Geometry mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config is invalid: %v", err)
	}
	if cfg.GetTimeout() != 2*time.Second {
		t.Errorf("GetTimeout() = %v, want 2s", cfg.GetTimeout())
	}
}

func TestLoad_PartialConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "vision.json")

	testJSON := `{
  "camera": {"source": "directory", "path": "frames", "timeout": "500ms"},
  "limits": {"lr_score": 45},
  "verbose": true
}`
	if err := os.WriteFile(configPath, []byte(testJSON), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Camera.Source != SourceDirectory || cfg.Camera.Path != "frames" {
		t.Errorf("Expected directory source on frames, got %s %q", cfg.Camera.Source, cfg.Camera.Path)
	}
	if cfg.GetTimeout() != 500*time.Millisecond {
		t.Errorf("GetTimeout() = %v, want 500ms", cfg.GetTimeout())
	}
	if cfg.Limits.LRScore != 45 {
		t.Errorf("Expected LRScore 45, got %f", cfg.Limits.LRScore)
	}
	if !cfg.Verbose {
		t.Error("Expected Verbose true")
	}

	// Values absent from the file keep their defaults.
	if cfg.Limits.Rectangularity != 40 {
		t.Errorf("Expected default Rectangularity 40, got %f", cfg.Limits.Rectangularity)
	}
	if cfg.Camera.Width != 640 || cfg.Camera.Height != 480 {
		t.Errorf("Expected default 640x480, got %dx%d", cfg.Camera.Width, cfg.Camera.Height)
	}
	if cfg.Particles.MaxParticles != 8 {
		t.Errorf("Expected default MaxParticles 8, got %d", cfg.Particles.MaxParticles)
	}
}

func TestLoad_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(tmpDir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
		return path
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"wrong extension", write("vision.yaml", "{}"), ".json extension"},
		{"missing file", filepath.Join(tmpDir, "missing.json"), "failed to stat"},
		{"bad json", write("bad.json", "{"), "failed to parse"},
		{"invalid limit", write("limit.json", `{"limits": {"tape_width": 150}}`), "limits.tape_width"},
		{"invalid source", write("source.json", `{"camera": {"source": "kinect"}}`), "unknown camera source"},
		{"missing path", write("path.json", `{"camera": {"source": "file"}}`), "camera.path is required"},
		{"zero y resolution", write("yres.json", `{"camera": {"y_resolution": 0}}`), "camera.y_resolution"},
		{"bad timeout", write("timeout.json", `{"camera": {"timeout": "soon"}}`), "camera.timeout"},
		{"bad hsv", write("hsv.json", `{"threshold": {"hue_low": 200, "hue_high": 100}}`), "threshold"},
		{"bad area", write("area.json", `{"particles": {"area_minimum": 500, "area_maximum": 10}}`), "area range"},
		{"bad backend", write("backend.json", `{"particles": {"backend": "imaq"}}`), "unknown particle backend"},
		{"too large", write("large.json", `{"verbose": true, "pad": "`+strings.Repeat("x", 1024*1024)+`"}`), "too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "vision.json")

	cfg := Default()
	cfg.Camera.Source = SourceFile
	cfg.Camera.Path = "frame.jpg"
	cfg.Limits.VerticalScore = 60

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("Round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestGeometry_IndependentOfResize(t *testing.T) {
	strip := particle.Report{
		Left: 200, Top: 100, Width: 16, Height: 128,
		CenterX: 208, CenterY: 164, Area: 2048, Perimeter: 288,
		RectLong: 128, RectShort: 16,
	}

	want, err := Default().Scorer().Evaluate([]particle.Report{strip})
	if err != nil {
		t.Fatalf("Evaluate with defaults failed: %v", err)
	}
	if want.Distance <= 0 {
		t.Fatalf("Default distance: got %f, want > 0", want.Distance)
	}

	cfg := Default()
	cfg.Camera.Width, cfg.Camera.Height = 0, 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Config without resize should be valid: %v", err)
	}
	if cfg.Geometry().YResolution != 480 {
		t.Errorf("YResolution: got %d, want 480", cfg.Geometry().YResolution)
	}

	got, err := cfg.Scorer().Evaluate([]particle.Report{strip})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if got.Target == nil {
		t.Fatal("Expected the vertical strip to be a target")
	}
	if got.Distance != want.Distance {
		t.Errorf("Distance: got %f, want %f", got.Distance, want.Distance)
	}
}

func TestSave_RejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Camera.ViewAngle = 0
	if err := cfg.Save(filepath.Join(t.TempDir(), "vision.json")); err == nil {
		t.Error("Expected Save to reject an invalid config")
	}
}

func TestLoadOrDefault(t *testing.T) {
	// No config/vision.json relative to the package directory.
	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Expected defaults (-want +got):\n%s", diff)
	}

	if _, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected an error for an explicit missing path")
	}
}

func TestProcessorOptions(t *testing.T) {
	cfg := Default()
	cfg.Verbose = true
	cfg.Particles.MaxParticles = 4

	opts := cfg.ProcessorOptions(nil)
	if opts.Scorer.MaxParticles != 4 {
		t.Errorf("Expected MaxParticles 4, got %d", opts.Scorer.MaxParticles)
	}
	if opts.FrameWidth != 640 || opts.FrameHeight != 480 {
		t.Errorf("Expected 640x480 frames, got %dx%d", opts.FrameWidth, opts.FrameHeight)
	}
	if opts.ThresholdPath != "/threshold.bmp" || opts.FilteredPath != "/filteredImage.bmp" {
		t.Errorf("Unexpected artifact paths %q %q", opts.ThresholdPath, opts.FilteredPath)
	}
	if !opts.Verbose {
		t.Error("Expected Verbose true")
	}
	if len(opts.Criteria) != 1 || opts.Criteria[0].Lower != 150 || opts.Criteria[0].Upper != 65535 {
		t.Errorf("Unexpected criteria %+v", opts.Criteria)
	}
}
