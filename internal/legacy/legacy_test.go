package legacy

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpclient "github.com/foliofetch/folio-downloader/internal/http"
)

func TestParseMetadata(t *testing.T) {
	tests := []struct {
		name    string
		xml     string
		want    Metadata
		wantErr bool
	}{
		{
			name: "reported dimensions corrected by one",
			xml:  `<Image TileSize="256"><Size Width="1000" Height="2000"/></Image>`,
			want: Metadata{Width: 999, Height: 1999, TileSize: 256},
		},
		{
			name: "single tile page",
			xml:  `<Image TileSize="100"><Size Width="100" Height="100"/></Image>`,
			want: Metadata{Width: 99, Height: 99, TileSize: 100},
		},
		{
			name:    "missing width",
			xml:     `<Image TileSize="256"><Size Height="2000"/></Image>`,
			wantErr: true,
		},
		{
			name:    "missing tile size",
			xml:     `<Image><Size Width="1000" Height="2000"/></Image>`,
			wantErr: true,
		},
		{
			name:    "non-numeric width",
			xml:     `<Image TileSize="256"><Size Width="wide" Height="2000"/></Image>`,
			wantErr: true,
		},
		{
			name:    "not xml",
			xml:     `{"width": 1000}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMetadata([]byte(tt.xml))

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error but got none (got %+v)", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseMetadata() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFetchMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.String() != "/ms1_f001r.xml" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`<Image TileSize="256"><Size Width="513" Height="257"/></Image>`))
	}))
	defer server.Close()

	client := httpclient.NewClient(5*time.Second, "test")

	meta, err := FetchMetadata(context.Background(), client, server.URL+"/", "ms1", "f001r")
	if err != nil {
		t.Fatalf("FetchMetadata failed: %v", err)
	}
	want := Metadata{Width: 512, Height: 256, TileSize: 256}
	if meta != want {
		t.Errorf("FetchMetadata() = %+v, want %+v", meta, want)
	}

	if _, err := FetchMetadata(context.Background(), client, server.URL+"/", "ms1", "f999r"); err == nil {
		t.Error("expected error for missing descriptor")
	}
}

func TestPlanGrid(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		tileSize int
		wantRows int
		wantCols int
		wantErr  bool
	}{
		{"single tile", 99, 99, 100, 1, 1, false},
		{"width drives rows, height drives cols", 999, 1999, 256, 4, 8, false},
		{"exact multiple gains a row", 512, 256, 256, 3, 2, false},
		{"zero tile size rejected", 100, 100, 0, 0, 0, true},
		{"negative tile size rejected", 100, 100, -1, 0, 0, true},
		{"negative width rejected", -1, 100, 256, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := PlanGrid(tt.width, tt.height, tt.tileSize)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error but got none (got %+v)", grid)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if grid.Rows != tt.wantRows || grid.Cols != tt.wantCols {
				t.Errorf("grid = %dx%d, want %dx%d", grid.Rows, grid.Cols, tt.wantRows, tt.wantCols)
			}
		})
	}
}

func TestGridTilesUnique(t *testing.T) {
	grid, err := PlanGrid(999, 1999, 256)
	if err != nil {
		t.Fatalf("PlanGrid failed: %v", err)
	}

	tiles := grid.Tiles()
	if len(tiles) != grid.Count() {
		t.Fatalf("got %d tiles, want %d", len(tiles), grid.Count())
	}

	seen := make(map[Tile]bool, len(tiles))
	for _, tile := range tiles {
		if seen[tile] {
			t.Errorf("duplicate tile coordinate %+v", tile)
		}
		seen[tile] = true

		if tile.Row < 0 || tile.Row >= grid.Rows || tile.Col < 0 || tile.Col >= grid.Cols {
			t.Errorf("tile %+v out of bounds for %dx%d grid", tile, grid.Rows, grid.Cols)
		}
	}
}

func TestURLs(t *testing.T) {
	base := "http://www.bl.uk/manuscripts/Proxy.ashx?view="

	if got, want := MetadataURL(base, "add_ms_19352", "f001r"), base+"add_ms_19352_f001r.xml"; got != want {
		t.Errorf("MetadataURL = %q, want %q", got, want)
	}

	if got, want := TileURL(base, "add_ms_19352", "f001r", 13, 2, 7), base+"add_ms_19352_f001r_files/13/2_7.jpg"; got != want {
		t.Errorf("TileURL = %q, want %q", got, want)
	}
}
