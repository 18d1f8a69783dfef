// Package legacy handles the deep-zoom tile pyramid path: per-page XML
// metadata descriptors, tile grid planning, and tile URL construction.
//
// Legacy pages are served as fixed-size JPEG tiles at a fixed zoom level.
// Downloading a page means fetching its descriptor to learn the pixel
// dimensions and tile size, planning the tile grid, fetching every tile,
// and stitching them back together.
//
// # Metadata
//
//	meta, err := legacy.FetchMetadata(ctx, client, baseURL, "add_ms_19352", "f001r")
//	// meta.Width and meta.Height already carry the off-by-one correction:
//	// the server reports dimension+1.
//
// # Grid Planning
//
//	grid, err := legacy.PlanGrid(meta.Width, meta.Height, meta.TileSize)
//	for _, tile := range grid.Tiles() {
//	    url := legacy.TileURL(baseURL, "add_ms_19352", "f001r", 13, tile.Row, tile.Col)
//	}
//
// The grid convention is pinned to the server's: width drives the row
// count, height drives the column count, and a tile's pixel offset is
// (row*tileSize, col*tileSize).
package legacy
