// Package debug provides developer tooling for the client.
package debug

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// ErrPixelSize is returned when a pixel buffer does not match its dimensions.
var ErrPixelSize = errors.New("pixel buffer size mismatch")

// Screenshots writes captured frames as PNG files named after the track
// being driven and the capture time.
type Screenshots struct {
	Dir string
	Now func() time.Time
}

// NewScreenshots creates a screenshot writer for dir.
func NewScreenshots(dir string) *Screenshots {
	return &Screenshots{Dir: dir, Now: time.Now}
}

// Filename returns the path the next capture of track would be written to.
func (s *Screenshots) Filename(track string) string {
	base := filepath.Base(track)
	base = base[:len(base)-len(filepath.Ext(base))]
	if base == "" || base == "." {
		base = "stunts"
	}
	name := fmt.Sprintf("%s_%s.png", base, s.Now().Format("2006-01-02_15-04-05.000"))
	return filepath.Join(s.Dir, name)
}

// Save writes an RGBA framebuffer read bottom-up from OpenGL.
func (s *Screenshots) Save(track string, pixels []byte, width, height int) (string, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return "", fmt.Errorf("%w: %dx%d with %d bytes", ErrPixelSize, width, height, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pixels[src:src+row])
	}

	if s.Dir != "" {
		if err := os.MkdirAll(s.Dir, 0755); err != nil {
			return "", fmt.Errorf("creating screenshot dir: %w", err)
		}
	}

	path := s.Filename(track)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating screenshot: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encoding screenshot: %w", err)
	}
	return path, f.Close()
}
