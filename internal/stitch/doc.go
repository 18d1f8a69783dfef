// Package stitch reassembles deep-zoom tiles into a single page image.
//
// The Compositor allocates a blank canvas of the page's full dimensions and
// pastes each successfully fetched tile at its pixel offset. Placement is
// keyed purely by tile coordinate, so any arrival order produces an
// identical composite. Tiles that fail to decode are counted and their
// region left blank; the page still completes.
//
// # Usage
//
//	comp := stitch.NewCompositor(90)
//	img, decodeFailures := comp.Compose(width, height, tileSize, tiles)
//	data, err := comp.EncodeJPEG(img)
//	os.WriteFile(path, data, 0644)
package stitch
