package devtools

import (
	"fmt"
	"image"
	"time"

	"github.com/disintegration/imaging"
	"github.com/hajimehoshi/ebiten/v2"
)

// SaveScreenshotPNG saves the composited frame as a timestamped PNG next to
// the binary, plus a half-size preview. Returns the main filename.
func SaveScreenshotPNG(screen *ebiten.Image) (string, error) {
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return "", fmt.Errorf("devtools: empty screen %dx%d", w, h)
	}

	pix := make([]byte, 4*w*h)
	screen.ReadPixels(pix)
	img := &image.RGBA{Pix: pix, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}

	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.png", timestamp)
	if err := imaging.Save(img, filename); err != nil {
		return "", fmt.Errorf("devtools: save screenshot: %w", err)
	}

	preview := imaging.Resize(img, w/2, 0, imaging.Lanczos)
	previewName := fmt.Sprintf("screenshot-%s-preview.png", timestamp)
	if err := imaging.Save(preview, previewName); err != nil {
		return "", fmt.Errorf("devtools: save preview: %w", err)
	}

	return filename, nil
}
