// Package http provides an HTTP client configured for manuscript
// image-server requests.
//
// The Client in this package handles:
//   - User-Agent headers (some image servers reject unidentified clients)
//   - Timeout handling
//   - Typed status errors so callers can classify retryable failures
//
// # Basic Usage
//
//	client := http.NewClient(60*time.Second, "Mozilla/5.0")
//
//	// Fetch a tile or metadata document
//	data, err := client.Get(ctx, "http://server/ms1_f001r_files/13/0_0.jpg")
//
// # Status Errors
//
// Non-2xx responses are returned as *StatusError, which the fetch executor
// treats as retryable alongside plain network errors:
//
//	var se *http.StatusError
//	if errors.As(err, &se) {
//	    fmt.Println(se.Code) // e.g. 503
//	}
package http
