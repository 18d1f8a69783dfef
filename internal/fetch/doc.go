// Package fetch provides a bounded-concurrency download executor with
// retry and exponential backoff.
//
// The Executor runs a batch of independent byte fetches while capping the
// number of in-flight requests. Each fetch is retried on transient failures
// (network errors and HTTP status errors); failures that survive all
// attempts are returned as per-task values, never as a batch-level error,
// so one bad tile cannot sink the rest of a page.
//
// # Basic Usage
//
//	exec := fetch.Executor{
//	    Concurrency: 5,
//	    MaxAttempts: 5,
//	    MinWait:     time.Second,
//	    MaxWait:     10 * time.Second,
//	}
//
//	results := exec.FetchAll(ctx, client, tileURLs)
//	for i, res := range results {
//	    if res.Err != nil {
//	        // tile i failed after all retries; siblings are unaffected
//	        continue
//	    }
//	    paste(res.Data)
//	}
//
// Both the per-page tile fan-out and the whole-image canvas downloads share
// this executor; only the concurrency ceiling differs between the two call
// sites.
package fetch
