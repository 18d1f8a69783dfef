// Package iiif parses IIIF Presentation manifests and derives full
// resolution image URLs from their nested canvas structure.
//
// A manifest is an ordered list of canvases (pages). Each canvas nests
// annotation pages, annotations, an image body, and finally a service
// descriptor naming the image server endpoint and its API version. This
// package models that shape and walks it with explicit, named failure
// reasons instead of reflective traversal.
//
// # Fetching a Manifest
//
//	manifest, err := iiif.FetchManifest(ctx, client, manifestURL)
//	if err != nil {
//	    // fatal: without the manifest there is no page list
//	}
//
// # Deriving an Image URL
//
//	for i, canvas := range manifest.Items {
//	    url, err := canvas.ImageURL()
//	    if err != nil {
//	        // "no image available" for this canvas; skip it
//	        continue
//	    }
//	    download(url)
//	}
//
// Image API v3 services resolve to {base}/full/max/0/default.jpg, earlier
// versions to {base}/full/full/0/default.jpg.
//
// # Labels
//
// Canvas labels are either a plain string or a per-language map. Label is a
// closed two-variant type with one extraction rule: plain strings are used
// as-is, maps prefer the first "en" value, and everything else falls back
// to the canvas index.
package iiif
