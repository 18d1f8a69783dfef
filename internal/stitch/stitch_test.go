package stitch

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"testing"
)

// jpegTile encodes a solid-color square tile as JPEG bytes.
func jpegTile(t *testing.T, size int, c color.RGBA) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encoding tile: %v", err)
	}
	return buf.Bytes()
}

func TestComposePlacement(t *testing.T) {
	comp := NewCompositor(90)

	// 2x2 grid of 10px tiles on a 19x19 page: edge tiles are clipped.
	tiles := []TileImage{
		{Row: 0, Col: 0, Data: jpegTile(t, 10, color.RGBA{R: 200, A: 255})},
		{Row: 1, Col: 0, Data: jpegTile(t, 10, color.RGBA{G: 200, A: 255})},
		{Row: 0, Col: 1, Data: jpegTile(t, 10, color.RGBA{B: 200, A: 255})},
		{Row: 1, Col: 1, Data: jpegTile(t, 10, color.RGBA{R: 200, G: 200, A: 255})},
	}

	img, failures := comp.Compose(19, 19, 10, tiles)
	if failures != 0 {
		t.Fatalf("decode failures = %d, want 0", failures)
	}

	if got := img.Bounds(); got.Dx() != 19 || got.Dy() != 19 {
		t.Fatalf("canvas = %dx%d, want 19x19", got.Dx(), got.Dy())
	}

	// Row maps to the x-axis, col to the y-axis.
	checks := []struct {
		x, y    int
		r, g, b bool // dominant channel
	}{
		{3, 3, true, false, false},   // tile (0,0)
		{15, 3, false, true, false},  // tile (1,0): x from row
		{3, 15, false, false, true},  // tile (0,1): y from col
		{15, 15, true, true, false},  // tile (1,1)
	}
	for _, c := range checks {
		r, g, b, a := img.At(c.x, c.y).RGBA()
		if a == 0 {
			t.Errorf("pixel (%d,%d) is blank, want painted", c.x, c.y)
			continue
		}
		if (r > 0x7000) != c.r || (g > 0x7000) != c.g || (b > 0x7000) != c.b {
			t.Errorf("pixel (%d,%d) = (%d,%d,%d), wrong tile placed", c.x, c.y, r>>8, g>>8, b>>8)
		}
	}
}

func TestComposeOrderIndependent(t *testing.T) {
	comp := NewCompositor(90)

	tiles := []TileImage{
		{Row: 0, Col: 0, Data: jpegTile(t, 10, color.RGBA{R: 255, A: 255})},
		{Row: 1, Col: 0, Data: jpegTile(t, 10, color.RGBA{G: 255, A: 255})},
		{Row: 0, Col: 1, Data: jpegTile(t, 10, color.RGBA{B: 255, A: 255})},
		{Row: 1, Col: 1, Data: jpegTile(t, 10, color.RGBA{R: 255, B: 255, A: 255})},
	}
	reversed := []TileImage{tiles[3], tiles[2], tiles[1], tiles[0]}
	shuffled := []TileImage{tiles[2], tiles[0], tiles[3], tiles[1]}

	encode := func(order []TileImage) []byte {
		img, failures := comp.Compose(19, 19, 10, order)
		if failures != 0 {
			t.Fatalf("decode failures = %d, want 0", failures)
		}
		data, err := comp.EncodeJPEG(img)
		if err != nil {
			t.Fatalf("encoding: %v", err)
		}
		return data
	}

	first := encode(tiles)
	if !bytes.Equal(first, encode(reversed)) {
		t.Error("reversed tile order produced different output")
	}
	if !bytes.Equal(first, encode(shuffled)) {
		t.Error("shuffled tile order produced different output")
	}
}

func TestComposeMissingTilesLeaveBlankRegions(t *testing.T) {
	comp := NewCompositor(90)

	// Only tile (0,0) of a 2x1 grid arrived.
	tiles := []TileImage{
		{Row: 0, Col: 0, Data: jpegTile(t, 10, color.RGBA{R: 255, A: 255})},
	}

	img, failures := comp.Compose(19, 9, 10, tiles)
	if failures != 0 {
		t.Fatalf("decode failures = %d, want 0", failures)
	}

	if _, _, _, a := img.At(3, 3).RGBA(); a == 0 {
		t.Error("fetched tile region is blank")
	}
	if r, g, b, a := img.At(15, 3).RGBA(); r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("missing tile region = (%d,%d,%d,%d), want blank", r, g, b, a)
	}
}

func TestComposeCountsDecodeFailures(t *testing.T) {
	comp := NewCompositor(90)

	tiles := []TileImage{
		{Row: 0, Col: 0, Data: jpegTile(t, 10, color.RGBA{R: 255, A: 255})},
		{Row: 1, Col: 0, Data: []byte("not an image")},
	}

	img, failures := comp.Compose(19, 9, 10, tiles)
	if failures != 1 {
		t.Fatalf("decode failures = %d, want 1", failures)
	}

	if _, _, _, a := img.At(3, 3).RGBA(); a == 0 {
		t.Error("valid tile region is blank")
	}
	if _, _, _, a := img.At(15, 3).RGBA(); a != 0 {
		t.Error("undecodable tile region is painted")
	}
}
