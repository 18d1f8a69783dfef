package iiif

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	httpclient "github.com/foliofetch/folio-downloader/internal/http"
)

// Named reasons an image URL cannot be derived from a canvas. Callers
// collapse all of them into a single "no image available" outcome.
var (
	ErrNoAnnotationPage = errors.New("canvas has no annotation page")
	ErrNoAnnotation     = errors.New("annotation page has no annotations")
	ErrNoService        = errors.New("image body has no service entry")
	ErrNoServiceBase    = errors.New("service has no id")
)

// Service identifies a IIIF image server endpoint and its API version.
// v2 manifests use "@id"/"@type", v3 manifests use "id"/"type"; both forms
// appear in the wild, sometimes mixed within one manifest.
type Service struct {
	ID      string `json:"@id"`
	IDv3    string `json:"id"`
	Type    string `json:"@type"`
	TypeV3  string `json:"type"`
	Profile string `json:"profile"`
}

// Base returns the image service base URL, preferring the v3 id, with any
// trailing slash removed.
func (s Service) Base() string {
	base := s.IDv3
	if base == "" {
		base = s.ID
	}
	return strings.TrimRight(base, "/")
}

// IsV3 reports whether the service speaks Image API v3, judged by its type
// marker or a "/3/" segment in its id.
func (s Service) IsV3() bool {
	t := strings.ToLower(s.TypeV3)
	if t == "" {
		t = strings.ToLower(s.Type)
	}
	return strings.Contains(t, "3") || strings.Contains(s.Base(), "/3/")
}

// ImageBody is the image resource referenced by an annotation.
type ImageBody struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Format  string    `json:"format"`
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	Service []Service `json:"service"`
}

// Annotation links a canvas to its image body.
type Annotation struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Motivation string    `json:"motivation"`
	Body       ImageBody `json:"body"`
}

// AnnotationPage groups the annotations of one canvas.
type AnnotationPage struct {
	ID    string       `json:"id"`
	Type  string       `json:"type"`
	Items []Annotation `json:"items"`
}

// Canvas represents a single page of the manifest.
type Canvas struct {
	ID     string           `json:"id"`
	Type   string           `json:"type"`
	Label  Label            `json:"label"`
	Width  int              `json:"width"`
	Height int              `json:"height"`
	Items  []AnnotationPage `json:"items"`
}

// ImageURL derives the full-resolution image URL for the canvas: first
// annotation page, first annotation, image body, first service. A v3
// service yields {base}/full/max/0/default.jpg, anything else
// {base}/full/full/0/default.jpg.
//
// Any missing link in the chain returns one of the named errors above;
// all of them mean "no image available" to the caller.
func (c Canvas) ImageURL() (string, error) {
	if len(c.Items) == 0 {
		return "", ErrNoAnnotationPage
	}
	if len(c.Items[0].Items) == 0 {
		return "", ErrNoAnnotation
	}

	body := c.Items[0].Items[0].Body
	if len(body.Service) == 0 {
		return "", ErrNoService
	}

	service := body.Service[0]
	base := service.Base()
	if base == "" {
		return "", ErrNoServiceBase
	}

	if service.IsV3() {
		return base + "/full/max/0/default.jpg", nil
	}
	return base + "/full/full/0/default.jpg", nil
}

// Manifest represents the whole document: an ordered list of canvases.
type Manifest struct {
	ID    string   `json:"id"`
	Type  string   `json:"type"`
	Label Label    `json:"label"`
	Items []Canvas `json:"items"`
}

// FetchManifest retrieves and parses a IIIF manifest. Failure here is fatal
// for the run: without the manifest there is no page list to work from.
func FetchManifest(ctx context.Context, client *httpclient.Client, url string) (*Manifest, error) {
	body, err := client.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching manifest %s: %w", url, err)
	}

	var manifest Manifest
	if err := json.Unmarshal(body, &manifest); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", url, err)
	}

	return &manifest, nil
}
