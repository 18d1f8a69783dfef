package legacy

import "fmt"

// Tile identifies one cell of a page's tile grid.
type Tile struct {
	Row int
	Col int
}

// Grid describes the tile layout of one page. The convention is the
// server's, not the usual raster one: Rows is driven by width, Cols by
// height, and the pixel offset of a tile is (Row*TileSize, Col*TileSize).
type Grid struct {
	Rows     int
	Cols     int
	TileSize int
}

// PlanGrid computes the tile grid for a page of the given effective
// dimensions. tileSize must be positive.
func PlanGrid(width, height, tileSize int) (Grid, error) {
	if tileSize <= 0 {
		return Grid{}, fmt.Errorf("invalid tile size %d", tileSize)
	}
	if width < 0 || height < 0 {
		return Grid{}, fmt.Errorf("invalid page dimensions %dx%d", width, height)
	}

	return Grid{
		Rows:     width/tileSize + 1,
		Cols:     height/tileSize + 1,
		TileSize: tileSize,
	}, nil
}

// Count returns the number of tiles in the grid.
func (g Grid) Count() int {
	return g.Rows * g.Cols
}

// Tiles returns every coordinate of the grid exactly once, row-major.
func (g Grid) Tiles() []Tile {
	tiles := make([]Tile, 0, g.Count())
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			tiles = append(tiles, Tile{Row: row, Col: col})
		}
	}
	return tiles
}

// TileURL builds the URL of one tile at the given zoom level.
func TileURL(baseURL, manuscriptID, stem string, zoom, row, col int) string {
	return fmt.Sprintf("%s%s_%s_files/%d/%d_%d.jpg", baseURL, manuscriptID, stem, zoom, row, col)
}
