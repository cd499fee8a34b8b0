package camera

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG format decoder
	"net/http"
	"strings"
	"time"
)

// snapshotPath is the Axis VAPIX still image endpoint.
const snapshotPath = "/axis-cgi/jpg/image.cgi"

// AxisCamera fetches JPEG snapshots from an Axis network camera.
type AxisCamera struct {
	url    string
	client *http.Client
}

// NewAxisCamera returns a camera for host. host is an address such as
// "10.11.60.11" or a base URL with scheme; timeout bounds each request.
func NewAxisCamera(host string, timeout time.Duration) *AxisCamera {
	base := host
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}
	return &AxisCamera{
		url:    strings.TrimRight(base, "/") + snapshotPath,
		client: &http.Client{Timeout: timeout},
	}
}

// URL returns the snapshot URL the camera polls.
func (c *AxisCamera) URL() string {
	return c.url
}

// GetImage requests one snapshot and decodes it.
func (c *AxisCamera) GetImage(ctx context.Context) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("snapshot request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("snapshot request returned %s", resp.Status)
	}
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return img, nil
}
