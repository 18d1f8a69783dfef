// Package download provides the orchestration logic for fetching
// manuscript pages, in both IIIF-manifest and legacy deep-zoom modes.
//
// # Manager
//
// The Manager coordinates the entire download:
//
//  1. Determine the mode from the input: a URL means a IIIF manifest,
//     anything else a legacy manuscript identifier
//  2. Build the ordered page list (applying any requested sub-range)
//  3. Fan pages out under the mode's concurrency policy
//  4. Per page: skip if the output file exists, fetch (and for legacy
//     pages stitch tiles), save, and report the outcome
//
// # Basic Usage
//
//	manager := download.NewManager(settings, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	err := manager.Run(ctx, "add_ms_19352", "1-10")
//	if err != nil {
//	    log.Fatal(err) // input error or manifest fetch failure
//	}
//
// # Concurrency
//
// Manifest canvases are all launched at once, bounded by
// MaxConcurrentCanvases. Legacy pages run in fixed-size batches
// (LegacyBatchSize) processed to completion before the next batch starts;
// within one page, tile fetches are bounded by MaxConcurrentTiles.
//
// # Failure Policy
//
// Individual page failures never fail the run; they are reported through
// the progress callback and counted. A legacy page with some failed tiles
// is still saved, with blank gaps, and reported as a degraded save with
// the failed-tile count. Only input errors (bad range) and the top-level
// manifest fetch are fatal.
package download
