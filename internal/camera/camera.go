package camera

import (
	"context"
	"fmt"
	"image"
	"io"

	"github.com/team1160/assistant-vision/internal/config"
)

// Camera supplies frames.
type Camera interface {
	GetImage(ctx context.Context) (image.Image, error)
}

// New returns the camera selected by cfg.Camera.Source.
func New(cfg *config.Config) (Camera, error) {
	switch cfg.Camera.Source {
	case config.SourceAxis:
		return NewAxisCamera(cfg.Camera.Host, cfg.GetTimeout()), nil
	case config.SourceDirectory:
		return NewDirectoryCamera(cfg.Camera.Path)
	case config.SourceFile:
		return NewFileCamera(cfg.Camera.Path)
	case config.SourceVideo:
		return newVideoCamera(cfg.Camera.Path)
	default:
		return nil, fmt.Errorf("unknown camera source: %s", cfg.Camera.Source)
	}
}

// Close releases cam if it holds a device. Cameras without resources are
// left alone.
func Close(cam Camera) error {
	if c, ok := cam.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
