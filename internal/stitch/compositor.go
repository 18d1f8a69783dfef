package stitch

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// TileImage pairs a grid coordinate with the raw bytes fetched for it.
type TileImage struct {
	Row  int
	Col  int
	Data []byte
}

// Compositor assembles tiles into page images and encodes the result.
type Compositor struct {
	jpegQuality int
}

// NewCompositor creates a Compositor encoding JPEG output at the given
// quality (1-100).
func NewCompositor(jpegQuality int) *Compositor {
	return &Compositor{jpegQuality: jpegQuality}
}

// Compose pastes the given tiles onto a blank width x height canvas.
//
// Each tile lands at pixel offset (Row*tileSize, Col*tileSize): row along
// the x-axis, col along the y-axis, matching the grid planner. Tiles whose
// bytes do not decode are skipped and counted; their region stays blank.
// The input order of tiles does not affect the output because no two grid
// coordinates overlap.
func (c *Compositor) Compose(width, height, tileSize int, tiles []TileImage) (*image.RGBA, int) {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))

	decodeFailures := 0
	for _, tile := range tiles {
		img, _, err := image.Decode(bytes.NewReader(tile.Data))
		if err != nil {
			decodeFailures++
			continue
		}

		offset := image.Pt(tile.Row*tileSize, tile.Col*tileSize)
		draw.Copy(canvas, offset, img, img.Bounds(), draw.Src, nil)
	}

	return canvas, decodeFailures
}

// EncodeJPEG encodes a composed page for writing to disk.
func (c *Compositor) EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: c.jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
