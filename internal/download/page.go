package download

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/foliofetch/folio-downloader/internal/fetch"
	"github.com/foliofetch/folio-downloader/internal/iiif"
	ioutils "github.com/foliofetch/folio-downloader/internal/io"
	"github.com/foliofetch/folio-downloader/internal/legacy"
	"github.com/foliofetch/folio-downloader/internal/model"
	"github.com/foliofetch/folio-downloader/internal/stitch"
)

// processCanvas downloads a single manifest canvas and returns its terminal
// state. Counters are the Manager's business; this only reports events and
// the outcome, so sibling canvases keep going on failure.
func (m *Manager) processCanvas(ctx context.Context, canvas iiif.Canvas, index int, dir string) PageState {
	page := model.NewCanvasPage(index, canvas.Label.Text(index))
	path := filepath.Join(dir, page.FileName)

	if ioutils.FileExists(path) {
		m.progress(ProgressEvent{
			Message: "Skipped existing: " + page.FileName,
			Level:   LevelVerbose,
			Page:    page.Label,
		})
		return StateSkipped
	}

	imageURL, err := canvas.ImageURL()
	if err != nil {
		m.progress(ProgressEvent{
			Message: fmt.Sprintf("No image available for %s: %v", page.Label, err),
			Level:   LevelWarning,
			Page:    page.Label,
		})
		return StateSkipped
	}

	data, err := m.imageExec.FetchOne(ctx, m.client, imageURL)
	if err != nil {
		return m.failPage(page, fmt.Errorf("downloading %s: %w", imageURL, err))
	}

	if err := ioutils.WriteFile(ctx, path, data); err != nil {
		return m.failPage(page, err)
	}

	m.progress(ProgressEvent{
		Message: "Downloaded " + page.FileName,
		Level:   LevelSuccess,
		Page:    page.Label,
	})
	return StateSaved
}

// processLegacyPage downloads and stitches a single deep-zoom page and
// returns its terminal state.
//
// A page with failed tiles is still saved, with blank gaps, and ends
// Degraded with the failed-tile count on the event. Metadata failures fail
// the page; nothing here fails the run.
func (m *Manager) processLegacyPage(ctx context.Context, manuscriptID string, page model.Page, dir string) PageState {
	path := filepath.Join(dir, page.FileName)

	if ioutils.FileExists(path) {
		m.progress(ProgressEvent{
			Message: "Skipped existing: " + page.FileName,
			Level:   LevelVerbose,
			Page:    page.Label,
		})
		return StateSkipped
	}

	// Descriptor fetches share the tile retry policy: a 503 on the XML is
	// as transient as a 503 on a tile.
	metaClient := fetch.RetryingClient{Exec: &m.tileExec, Client: m.client}
	meta, err := legacy.FetchMetadata(ctx, metaClient, m.settings.BaseURL, manuscriptID, page.Stem)
	if err != nil {
		return m.failPage(page, err)
	}

	grid, err := legacy.PlanGrid(meta.Width, meta.Height, meta.TileSize)
	if err != nil {
		return m.failPage(page, fmt.Errorf("planning grid for %s: %w", page.Stem, err))
	}

	tiles := grid.Tiles()
	urls := make([]string, len(tiles))
	for i, tile := range tiles {
		urls[i] = legacy.TileURL(m.settings.BaseURL, manuscriptID, page.Stem, m.settings.ZoomLevel, tile.Row, tile.Col)
	}

	results := m.tileExec.FetchAll(ctx, m.client, urls)

	failedTiles := 0
	fetched := make([]stitch.TileImage, 0, len(tiles))
	for i, res := range results {
		if res.Err != nil {
			failedTiles++
			m.progress(ProgressEvent{
				Message: fmt.Sprintf("Tile (%d,%d) of %s failed: %v", tiles[i].Row, tiles[i].Col, page.Stem, res.Err),
				Level:   LevelVerbose,
				Page:    page.Label,
			})
			continue
		}
		fetched = append(fetched, stitch.TileImage{Row: tiles[i].Row, Col: tiles[i].Col, Data: res.Data})
	}

	img, decodeFailures := m.compositor.Compose(meta.Width, meta.Height, grid.TileSize, fetched)
	failedTiles += decodeFailures

	data, err := m.compositor.EncodeJPEG(img)
	if err != nil {
		return m.failPage(page, fmt.Errorf("encoding %s: %w", page.FileName, err))
	}
	if err := ioutils.WriteFile(ctx, path, data); err != nil {
		return m.failPage(page, err)
	}

	if failedTiles > 0 {
		m.progress(ProgressEvent{
			Message:     fmt.Sprintf("Saved %s with %d failed tiles", page.FileName, failedTiles),
			Level:       LevelWarning,
			Page:        page.Label,
			FailedTiles: failedTiles,
		})
		return StateDegraded
	}

	m.progress(ProgressEvent{
		Message: "Downloaded " + page.FileName,
		Level:   LevelSuccess,
		Page:    page.Label,
	})
	return StateSaved
}

func (m *Manager) failPage(page model.Page, err error) PageState {
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Error downloading %s: %v", page.Label, err),
		Level:   LevelError,
		Page:    page.Label,
	})
	return StateFailed
}
