package present

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"toolbox/internal/lifecycle"
	"toolbox/internal/operation"
)

// CopyFeedback is how long the "copied" confirmation stays visible.
const CopyFeedback = 2 * time.Second

// ImageBaseName is the file name, without extension, of downloaded images.
const ImageBaseName = "generated"

// View is what a panel shows for its current state.
type View struct {
	Phase   lifecycle.Phase
	Shape   operation.ResultShape
	Text    string
	Image   string
	IsError bool
	// CanCopy and CanDownload gate the two result affordances.
	CanCopy     bool
	CanDownload bool
}

// HasImage reports whether the view shows an image.
func (v View) HasImage() bool {
	return v.Image != ""
}

// Render decides what a panel displays. An image suppresses the text view
// and offers a download; otherwise any text is shown with a copy
// affordance.
func Render(st lifecycle.State) View {
	v := View{Phase: st.Phase, Shape: st.Shape, IsError: st.IsError}
	if st.Image != "" {
		v.Image = st.Image
		v.CanDownload = true
		return v
	}
	v.Text = st.Text
	v.CanCopy = st.Text != ""
	return v
}

// Fetcher downloads hosted images.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, string, error)
}

// ErrNoImage is returned by SaveImage for an empty reference.
var ErrNoImage = errors.New("no image to save")

// SaveImage writes the image behind ref into dir as generated.<ext> and
// returns the written path. ref is either a data: URI or an http(s) URL;
// URLs need a fetcher.
func SaveImage(ctx context.Context, ref, dir string, fetcher Fetcher) (string, error) {
	if ref == "" {
		return "", ErrNoImage
	}

	var (
		data     []byte
		mimeType string
		err      error
	)
	if strings.HasPrefix(ref, "data:") {
		data, mimeType, err = DecodeDataURI(ref)
		if err != nil {
			return "", err
		}
	} else {
		if fetcher == nil {
			return "", fmt.Errorf("cannot download %s: no fetcher", ref)
		}
		data, mimeType, err = fetcher.Fetch(ctx, ref)
		if err != nil {
			return "", fmt.Errorf("failed to download image: %w", err)
		}
		if mimeType == "" {
			mimeType = mime.TypeByExtension(filepath.Ext(urlPath(ref)))
		}
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}
	path := filepath.Join(dir, ImageBaseName+extensionFor(mimeType))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return path, nil
}

// DecodeDataURI parses data:[<mediatype>][;base64],<data> and returns the
// payload with its media type.
func DecodeDataURI(ref string) ([]byte, string, error) {
	header, payload, ok := strings.Cut(strings.TrimPrefix(ref, "data:"), ",")
	if !ok {
		return nil, "", fmt.Errorf("malformed data URI")
	}
	params := strings.Split(header, ";")
	mimeType := params[0]
	isBase64 := false
	for _, p := range params[1:] {
		if p == "base64" {
			isBase64 = true
		}
	}
	if !isBase64 {
		s, err := url.PathUnescape(payload)
		if err != nil {
			return nil, "", fmt.Errorf("malformed data URI: %w", err)
		}
		return []byte(s), mimeType, nil
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("malformed base64 image: %w", err)
	}
	return data, mimeType, nil
}

func extensionFor(mimeType string) string {
	mt, _, _ := mime.ParseMediaType(mimeType)
	switch mt {
	case "image/png", "":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	}
	if exts, err := mime.ExtensionsByType(mt); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ".png"
}

func urlPath(ref string) string {
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return u.Path
}

// Summary describes an image reference in one line, since a terminal cannot
// show the image itself.
func Summary(v View) string {
	if !v.HasImage() {
		return ""
	}
	if strings.HasPrefix(v.Image, "data:") {
		data, mimeType, err := DecodeDataURI(v.Image)
		if err != nil {
			return "embedded image (unreadable)"
		}
		if mimeType == "" {
			mimeType = "image"
		}
		return fmt.Sprintf("%s, %s", mimeType, humanBytes(len(data)))
	}
	return v.Image
}

func humanBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
