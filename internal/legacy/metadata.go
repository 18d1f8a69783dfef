package legacy

import (
	"context"
	"encoding/xml"
	"fmt"
)

// Getter fetches one URL and returns its body. Both the raw HTTP client and
// the retrying executor wrapper satisfy it; the orchestrator passes the
// latter so a transient server error on the descriptor does not fail the
// page outright.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Metadata holds the effective pixel dimensions and tile edge length of one
// legacy page, after the off-by-one correction has been applied.
type Metadata struct {
	Width    int
	Height   int
	TileSize int
}

// imageDescriptor is the wire shape of the per-page XML document:
//
//	<Image TileSize="256"><Size Width="4097" Height="5121"/></Image>
type imageDescriptor struct {
	XMLName  xml.Name `xml:"Image"`
	TileSize int      `xml:"TileSize,attr"`
	Size     struct {
		Width  int `xml:"Width,attr"`
		Height int `xml:"Height,attr"`
	} `xml:"Size"`
}

// MetadataURL builds the descriptor URL for a page.
func MetadataURL(baseURL, manuscriptID, stem string) string {
	return fmt.Sprintf("%s%s_%s.xml", baseURL, manuscriptID, stem)
}

// ParseMetadata decodes a page descriptor document.
//
// The server reports each dimension one pixel larger than the real image,
// so the returned Width and Height are the reported values minus one. Get
// this wrong and the tile grid gains or loses a whole row or column.
func ParseMetadata(data []byte) (Metadata, error) {
	var desc imageDescriptor
	if err := xml.Unmarshal(data, &desc); err != nil {
		return Metadata{}, fmt.Errorf("parsing page descriptor: %w", err)
	}

	if desc.Size.Width <= 0 || desc.Size.Height <= 0 {
		return Metadata{}, fmt.Errorf("page descriptor missing width/height (got %dx%d)", desc.Size.Width, desc.Size.Height)
	}
	if desc.TileSize <= 0 {
		return Metadata{}, fmt.Errorf("page descriptor missing tile size")
	}

	return Metadata{
		Width:    desc.Size.Width - 1,
		Height:   desc.Size.Height - 1,
		TileSize: desc.TileSize,
	}, nil
}

// FetchMetadata retrieves and parses the descriptor for one page. Failure
// is fatal for that page only; sibling pages are unaffected.
func FetchMetadata(ctx context.Context, get Getter, baseURL, manuscriptID, stem string) (Metadata, error) {
	url := MetadataURL(baseURL, manuscriptID, stem)
	data, err := get.Get(ctx, url)
	if err != nil {
		return Metadata{}, fmt.Errorf("fetching metadata for %s: %w", stem, err)
	}

	meta, err := ParseMetadata(data)
	if err != nil {
		return Metadata{}, fmt.Errorf("metadata for %s: %w", stem, err)
	}
	return meta, nil
}
