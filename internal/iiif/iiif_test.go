package iiif

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpclient "github.com/foliofetch/folio-downloader/internal/http"
)

func TestLabelText(t *testing.T) {
	tests := []struct {
		name  string
		json  string
		index int
		want  string
	}{
		{"plain string", `"f. 1r"`, 1, "f. 1r"},
		{"english map", `{"en": ["front cover"]}`, 1, "front cover"},
		{"english preferred over others", `{"de": ["Vorderdeckel"], "en": ["front cover"]}`, 1, "front cover"},
		{"no english falls back to index", `{"de": ["Vorderdeckel"]}`, 7, "7"},
		{"empty english list falls back to index", `{"en": []}`, 3, "3"},
		{"empty map falls back to index", `{}`, 12, "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var label Label
			if err := json.Unmarshal([]byte(tt.json), &label); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if got := label.Text(tt.index); got != tt.want {
				t.Errorf("Text(%d) = %q, want %q", tt.index, got, tt.want)
			}
		})
	}
}

func TestLabelRejectsOtherShapes(t *testing.T) {
	var label Label
	if err := json.Unmarshal([]byte(`42`), &label); err == nil {
		t.Error("expected error for numeric label")
	}
}

func TestServiceVersion(t *testing.T) {
	tests := []struct {
		name     string
		service  Service
		wantBase string
		wantV3   bool
	}{
		{
			name:     "v2 service",
			service:  Service{ID: "http://x/svc", Type: "ImageService2"},
			wantBase: "http://x/svc",
			wantV3:   false,
		},
		{
			name:     "v3 service",
			service:  Service{IDv3: "http://x/svc", TypeV3: "ImageService3"},
			wantBase: "http://x/svc",
			wantV3:   true,
		},
		{
			name:     "v3 id preferred over v2 id",
			service:  Service{ID: "http://x/old", IDv3: "http://x/new", TypeV3: "ImageService3"},
			wantBase: "http://x/new",
			wantV3:   true,
		},
		{
			name:     "version from id path segment",
			service:  Service{ID: "http://x/iiif/3/abc", Type: "ImageService"},
			wantBase: "http://x/iiif/3/abc",
			wantV3:   true,
		},
		{
			name:     "trailing slash trimmed",
			service:  Service{ID: "http://x/svc/", Type: "ImageService2"},
			wantBase: "http://x/svc",
			wantV3:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.service.Base(); got != tt.wantBase {
				t.Errorf("Base() = %q, want %q", got, tt.wantBase)
			}
			if got := tt.service.IsV3(); got != tt.wantV3 {
				t.Errorf("IsV3() = %v, want %v", got, tt.wantV3)
			}
		})
	}
}

func canvasWithService(svc Service) Canvas {
	return Canvas{
		ID: "http://x/canvas/1",
		Items: []AnnotationPage{{
			Items: []Annotation{{
				Body: ImageBody{Service: []Service{svc}},
			}},
		}},
	}
}

func TestCanvasImageURL(t *testing.T) {
	t.Run("v2 service", func(t *testing.T) {
		canvas := canvasWithService(Service{ID: "http://x/svc", Type: "ImageService2"})
		url, err := canvas.ImageURL()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "http://x/svc/full/full/0/default.jpg"; url != want {
			t.Errorf("ImageURL() = %q, want %q", url, want)
		}
	})

	t.Run("v3 service", func(t *testing.T) {
		canvas := canvasWithService(Service{IDv3: "http://x/svc", TypeV3: "ImageService3"})
		url, err := canvas.ImageURL()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "http://x/svc/full/max/0/default.jpg"; url != want {
			t.Errorf("ImageURL() = %q, want %q", url, want)
		}
	})

	missing := []struct {
		name    string
		canvas  Canvas
		wantErr error
	}{
		{"no annotation page", Canvas{}, ErrNoAnnotationPage},
		{"no annotation", Canvas{Items: []AnnotationPage{{}}}, ErrNoAnnotation},
		{
			"no service",
			Canvas{Items: []AnnotationPage{{Items: []Annotation{{}}}}},
			ErrNoService,
		},
		{"no service id", canvasWithService(Service{}), ErrNoServiceBase},
	}

	for _, tt := range missing {
		t.Run(tt.name, func(t *testing.T) {
			url, err := tt.canvas.ImageURL()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if url != "" {
				t.Errorf("url = %q, want empty", url)
			}
		})
	}
}

const manifestJSON = `{
	"id": "https://iiif.example.org/manifest.json",
	"type": "Manifest",
	"label": {"en": ["Test Manuscript"]},
	"items": [
		{
			"id": "https://iiif.example.org/canvas/1",
			"type": "Canvas",
			"label": "f. 1r",
			"width": 4000,
			"height": 5000,
			"items": [
				{
					"id": "https://iiif.example.org/page/1",
					"type": "AnnotationPage",
					"items": [
						{
							"id": "https://iiif.example.org/annotation/1",
							"type": "Annotation",
							"motivation": "painting",
							"body": {
								"id": "https://iiif.example.org/image/1/full/full/0/default.jpg",
								"type": "Image",
								"format": "image/jpeg",
								"width": 4000,
								"height": 5000,
								"service": [
									{"@id": "https://iiif.example.org/image/1", "@type": "ImageService2", "profile": "level1"}
								]
							}
						}
					]
				}
			]
		},
		{
			"id": "https://iiif.example.org/canvas/2",
			"type": "Canvas",
			"label": {"en": ["f. 1v"]},
			"width": 4000,
			"height": 5000,
			"items": []
		}
	]
}`

func TestFetchManifest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/manifest.json":
			w.Write([]byte(manifestJSON))
		case "/broken.json":
			w.Write([]byte("{not json"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := httpclient.NewClient(5*time.Second, "test")

	manifest, err := FetchManifest(context.Background(), client, server.URL+"/manifest.json")
	if err != nil {
		t.Fatalf("FetchManifest failed: %v", err)
	}

	if len(manifest.Items) != 2 {
		t.Fatalf("canvas count = %d, want 2", len(manifest.Items))
	}
	if got := manifest.Label.Text(1); got != "Test Manuscript" {
		t.Errorf("manifest label = %q, want %q", got, "Test Manuscript")
	}

	url, err := manifest.Items[0].ImageURL()
	if err != nil {
		t.Fatalf("ImageURL failed: %v", err)
	}
	if want := "https://iiif.example.org/image/1/full/full/0/default.jpg"; url != want {
		t.Errorf("ImageURL() = %q, want %q", url, want)
	}

	// Second canvas has no annotation pages: no image available.
	if _, err := manifest.Items[1].ImageURL(); !errors.Is(err, ErrNoAnnotationPage) {
		t.Errorf("err = %v, want %v", err, ErrNoAnnotationPage)
	}

	if _, err := FetchManifest(context.Background(), client, server.URL+"/broken.json"); err == nil {
		t.Error("expected error for malformed manifest")
	}
	if _, err := FetchManifest(context.Background(), client, server.URL+"/missing.json"); err == nil {
		t.Error("expected error for missing manifest")
	}
}
