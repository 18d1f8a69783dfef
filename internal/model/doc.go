// Package model defines the core data structures shared across the
// downloader.
//
// # Pages
//
// Page describes one output unit: its ordinal, human label, and target
// file name. Legacy folios and manifest canvases build their pages through
// different constructors because their naming conventions differ:
//
//	p := model.NewLegacyPage(1, 1, model.SideRecto) // f001r.jpg
//	p := model.NewCanvasPage(3, "fol. 2v")          // 0003_fol._2v.jpg
//
// # Ranges
//
// ParseRange validates the inclusive 1-based "start-end" page range the
// CLI accepts:
//
//	r, err := model.ParseRange("1-10")
package model
