//go:build gocv

package camera

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"
)

// VideoCamera reads frames from a video file or capture device with OpenCV.
type VideoCamera struct {
	mu      sync.Mutex
	capture *gocv.VideoCapture
	frame   gocv.Mat
}

// NewVideoCamera opens source, a file path or a device id such as "0".
func NewVideoCamera(source string) (*VideoCamera, error) {
	capture, err := gocv.OpenVideoCapture(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open video source %s: %w", source, err)
	}
	return &VideoCamera{capture: capture, frame: gocv.NewMat()}, nil
}

func newVideoCamera(source string) (Camera, error) {
	return NewVideoCamera(source)
}

// GetImage reads the next frame. It fails once a video file is exhausted.
func (c *VideoCamera) GetImage(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if ok := c.capture.Read(&c.frame); !ok || c.frame.Empty() {
		return nil, errors.New("no frame available from video source")
	}
	img, err := c.frame.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert frame: %w", err)
	}
	return img, nil
}

// Close releases the capture device.
func (c *VideoCamera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frame.Close()
	return c.capture.Close()
}
