package model

import (
	"fmt"
	"regexp"
	"strings"
)

// Side is the face of a manuscript folio.
type Side string

const (
	// SideRecto is the front face of a folio.
	SideRecto Side = "r"

	// SideVerso is the back face of a folio.
	SideVerso Side = "v"
)

// Page identifies one output unit of a download run. It is created by the
// orchestrator (legacy range expansion) or from a manifest canvas, read
// thereafter, and discarded once its page completes.
type Page struct {
	// Index is the 1-based ordinal of the page within the run.
	Index int

	// Label is the human-readable page label, used in events.
	Label string

	// FileName is the name of the output file within the manuscript
	// directory.
	FileName string

	// Stem is the server-side page identifier without extension
	// (e.g. "f001r"). Set for legacy pages only.
	Stem string
}

// NewLegacyPage builds the page descriptor for one folio face. The file
// name follows the legacy convention f{page:03d}{side}.jpg.
func NewLegacyPage(index, folio int, side Side) Page {
	stem := fmt.Sprintf("f%03d%s", folio, side)
	return Page{
		Index:    index,
		Label:    stem,
		FileName: stem + ".jpg",
		Stem:     stem,
	}
}

// NewCanvasPage builds the page descriptor for one manifest canvas. The
// file name follows the convention {index:04d}_{label}.jpg with the label
// normalized for the filesystem.
func NewCanvasPage(index int, label string) Page {
	return Page{
		Index:    index,
		Label:    label,
		FileName: fmt.Sprintf("%04d_%s.jpg", index, sanitizeFileName(label)),
	}
}

// sanitizeFileName makes a label safe to embed in a file name: spaces
// become underscores and characters invalid on common filesystems are
// replaced.
func sanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")
	return strings.TrimRight(name, ". ")
}
