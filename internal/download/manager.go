package download

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/foliofetch/folio-downloader/internal/config"
	"github.com/foliofetch/folio-downloader/internal/fetch"
	httpclient "github.com/foliofetch/folio-downloader/internal/http"
	"github.com/foliofetch/folio-downloader/internal/iiif"
	ioutils "github.com/foliofetch/folio-downloader/internal/io"
	"github.com/foliofetch/folio-downloader/internal/model"
	"github.com/foliofetch/folio-downloader/internal/stitch"
	"golang.org/x/sync/errgroup"
)

// Manager coordinates manuscript downloads.
type Manager struct {
	settings   *config.Settings
	client     *httpclient.Client
	tileExec   fetch.Executor
	imageExec  fetch.Executor
	compositor *stitch.Compositor

	total    int32
	done     int32
	saved    int32
	skipped  int32
	degraded int32
	failed   int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new download Manager. onProgress may be nil.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings: settings,
		client:   httpclient.NewClient(settings.HTTPTimeout(), settings.UserAgent),
		tileExec: fetch.Executor{
			Concurrency: settings.MaxConcurrentTiles,
			MaxAttempts: settings.DownloadMaxRetries,
			MinWait:     settings.RetryMinWait(),
			MaxWait:     settings.RetryMaxWait(),
		},
		imageExec: fetch.Executor{
			Concurrency: settings.MaxConcurrentCanvases,
			MaxAttempts: settings.DownloadMaxRetries,
			MinWait:     settings.RetryMinWait(),
			MaxWait:     settings.RetryMaxWait(),
		},
		compositor: stitch.NewCompositor(settings.JPEGQuality),
		onProgress: onProgress,
	}
}

// Run downloads a manuscript given a IIIF manifest URL or a legacy
// manuscript identifier, optionally restricted to an inclusive 1-based
// "start-end" page range.
//
// The returned error is fatal for the run: a malformed or out-of-bounds
// range, an unreachable or unparseable manifest, or a failure creating the
// output directory. Individual page failures are reported through the
// progress callback instead.
func (m *Manager) Run(ctx context.Context, input, rangeStr string) error {
	// Validate the range before touching the network.
	var pageRange *model.Range
	if rangeStr != "" {
		r, err := model.ParseRange(rangeStr)
		if err != nil {
			return err
		}
		pageRange = &r
	}

	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return m.runManifest(ctx, input, pageRange)
	}
	return m.runLegacy(ctx, input, pageRange)
}

// record folds a page's terminal state into the run counters.
func (m *Manager) record(state PageState) {
	atomic.AddInt32(&m.done, 1)
	switch state {
	case StateSkipped:
		atomic.AddInt32(&m.skipped, 1)
	case StateSaved:
		atomic.AddInt32(&m.saved, 1)
	case StateDegraded:
		atomic.AddInt32(&m.degraded, 1)
	case StateFailed:
		atomic.AddInt32(&m.failed, 1)
	}
}

// Progress returns a snapshot of the run-level counters.
func (m *Manager) Progress() Stats {
	return Stats{
		Total:    atomic.LoadInt32(&m.total),
		Done:     atomic.LoadInt32(&m.done),
		Saved:    atomic.LoadInt32(&m.saved),
		Skipped:  atomic.LoadInt32(&m.skipped),
		Degraded: atomic.LoadInt32(&m.degraded),
		Failed:   atomic.LoadInt32(&m.failed),
	}
}

// runManifest downloads every canvas of a IIIF manifest. Canvases are all
// launched at once; the canvas concurrency ceiling is the only brake.
func (m *Manager) runManifest(ctx context.Context, manifestURL string, pageRange *model.Range) error {
	m.progress(ProgressEvent{Message: "Fetching manifest: " + manifestURL, Level: LevelInfo})

	manifest, err := iiif.FetchManifest(ctx, m.client, manifestURL)
	if err != nil {
		return err
	}

	canvases := manifest.Items
	if pageRange != nil {
		if pageRange.End > len(canvases) {
			return fmt.Errorf("range %d-%d out of bounds: manifest has %d canvases",
				pageRange.Start, pageRange.End, len(canvases))
		}
		canvases = canvases[pageRange.Start-1 : pageRange.End]
	}

	dir := filepath.Join(m.settings.OutputDir, manifestFolderName(manifestURL))
	if err := ioutils.EnsureDir(dir); err != nil {
		return err
	}

	atomic.StoreInt32(&m.total, int32(len(canvases)))
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Downloading %d canvases to %s", len(canvases), dir),
		Level:   LevelInfo,
	})

	var g errgroup.Group
	g.SetLimit(m.settings.MaxConcurrentCanvases)
	for i, canvas := range canvases {
		i, canvas := i, canvas
		g.Go(func() error {
			m.record(m.processCanvas(ctx, canvas, i+1, dir))
			return nil
		})
	}
	_ = g.Wait()

	m.summarize()
	return nil
}

// runLegacy downloads a legacy manuscript: every folio of the range, recto
// then verso, in fixed-size batches processed to completion before the
// next batch starts.
func (m *Manager) runLegacy(ctx context.Context, manuscriptID string, pageRange *model.Range) error {
	start, end := m.settings.RangeBegin, m.settings.RangeEnd
	if pageRange != nil {
		start, end = pageRange.Start, pageRange.End
	}

	dir := filepath.Join(m.settings.OutputDir, manuscriptID)
	if err := ioutils.EnsureDir(dir); err != nil {
		return err
	}

	var pages []model.Page
	for folio := start; folio <= end; folio++ {
		pages = append(pages, model.NewLegacyPage(len(pages)+1, folio, model.SideRecto))
		pages = append(pages, model.NewLegacyPage(len(pages)+1, folio, model.SideVerso))
	}

	atomic.StoreInt32(&m.total, int32(len(pages)))
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Downloading %d pages of %s to %s", len(pages), manuscriptID, dir),
		Level:   LevelInfo,
	})

	batchSize := m.settings.LegacyBatchSize
	if batchSize < 1 {
		batchSize = 1
	}
	for i := 0; i < len(pages); i += batchSize {
		batch := pages[i:min(i+batchSize, len(pages))]

		var g errgroup.Group
		for _, page := range batch {
			page := page
			g.Go(func() error {
				m.record(m.processLegacyPage(ctx, manuscriptID, page, dir))
				return nil
			})
		}
		_ = g.Wait()
	}

	m.summarize()
	return nil
}

// manifestFolderName derives the output folder from the manifest URL: its
// last non-empty path segment, or "download" when there is none.
func manifestFolderName(manifestURL string) string {
	u, err := url.Parse(manifestURL)
	if err != nil {
		return "download"
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	name := segments[len(segments)-1]
	if name == "" {
		return "download"
	}
	return name
}

func (m *Manager) summarize() {
	stats := m.Progress()
	m.progress(ProgressEvent{
		Message: fmt.Sprintf("Complete: %d saved, %d skipped, %d degraded, %d failed",
			stats.Saved, stats.Skipped, stats.Degraded, stats.Failed),
		Level: LevelInfo,
	})
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
