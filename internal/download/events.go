package download

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a download progress update.
//
// Page is set on page-scoped events. FailedTiles is non-zero only on
// degraded saves, where a page was written with blank regions; it is what
// distinguishes a degraded save from a clean success.
type ProgressEvent struct {
	Message     string
	Level       ProgressLevel
	Page        string
	FailedTiles int
}

// PageState is the terminal outcome of one page.
//
// Every page ends in exactly one of these; the Manager folds the state into
// the run counters. Degraded is a save that completed with blank regions
// where tiles failed. Skipped, Saved and Degraded are successes.
type PageState int

const (
	StateSkipped PageState = iota
	StateSaved
	StateDegraded
	StateFailed
)

// String returns the state name.
func (s PageState) String() string {
	switch s {
	case StateSkipped:
		return "skipped"
	case StateSaved:
		return "saved"
	case StateDegraded:
		return "degraded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Stats is a snapshot of run-level completion counters.
type Stats struct {
	Total    int32
	Done     int32
	Saved    int32
	Skipped  int32
	Degraded int32
	Failed   int32
}
