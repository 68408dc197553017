// Package debug provides developer aids for the running demo.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Screenshots writes framebuffer captures as PNG files named
// <prefix>_<timestamp>.png, adding a counter when two captures land in
// the same second.
type Screenshots struct {
	Dir    string
	Prefix string

	now  func() time.Time
	last string
	seq  int
}

// NewScreenshots creates a capture writer. An empty prefix is "blockyworld".
func NewScreenshots(dir, prefix string) *Screenshots {
	if prefix == "" {
		prefix = "blockyworld"
	}
	return &Screenshots{Dir: dir, Prefix: prefix, now: time.Now}
}

// FromPixels converts bottom-up RGBA rows, as glReadPixels returns them,
// into a top-down image.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("bad capture size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// SavePixels flips and saves a raw capture.
func (s *Screenshots) SavePixels(pixels []byte, width, height int) (string, error) {
	img, err := FromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	return s.Save(img)
}

// Save writes img and returns the path.
func (s *Screenshots) Save(img image.Image) (string, error) {
	if s.Dir != "" {
		if err := os.MkdirAll(s.Dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	path := filepath.Join(s.Dir, s.nextName())
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return path, file.Close()
}

func (s *Screenshots) nextName() string {
	stamp := s.now().Format("2006-01-02_15-04-05")
	if stamp == s.last {
		s.seq++
		return fmt.Sprintf("%s_%s_%d.png", s.Prefix, stamp, s.seq)
	}
	s.last, s.seq = stamp, 0
	return fmt.Sprintf("%s_%s.png", s.Prefix, stamp)
}
