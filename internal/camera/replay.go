package camera

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/team1160/assistant-vision/internal/imaging"
)

var imageExtensions = map[string]bool{
	".bmp":  true,
	".gif":  true,
	".jpeg": true,
	".jpg":  true,
	".png":  true,
}

// DirectoryCamera replays the image files of a directory in lexical order,
// starting over after the last one.
type DirectoryCamera struct {
	mu    sync.Mutex
	files []string
	next  int
	cache *imaging.ImageCache
}

// NewDirectoryCamera lists the image files in dir. It fails when dir holds
// none.
func NewDirectoryCamera(dir string) (*DirectoryCamera, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no image files in %s", dir)
	}
	sort.Strings(files)

	return &DirectoryCamera{files: files, cache: imaging.NewImageCache()}, nil
}

// Files returns the frames in replay order.
func (c *DirectoryCamera) Files() []string {
	return append([]string(nil), c.files...)
}

// GetImage returns the next frame.
func (c *DirectoryCamera) GetImage(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	path := c.files[c.next]
	c.next = (c.next + 1) % len(c.files)
	c.mu.Unlock()

	return c.cache.Load(path)
}

// FileCamera returns the same image on every call.
type FileCamera struct {
	path  string
	cache *imaging.ImageCache
}

// NewFileCamera decodes path once to check it is a readable image.
func NewFileCamera(path string) (*FileCamera, error) {
	c := &FileCamera{path: path, cache: imaging.NewImageCache()}
	if _, err := c.cache.Load(path); err != nil {
		return nil, err
	}
	return c, nil
}

// GetImage returns the image.
func (c *FileCamera) GetImage(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.cache.Load(c.path)
}
