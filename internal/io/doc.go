// Package ioutils provides small file system helpers.
//
//	// Ensure the manuscript output directory exists
//	err := ioutils.EnsureDir("/downloads/add_ms_19352")
//
//	// Write a finished page image
//	err := ioutils.WriteFile(ctx, "/downloads/add_ms_19352/f001r.jpg", data)
package ioutils
