package jigsaw

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrImageLoad is wrapped by every failure to resolve or decode an image:
// missing files, bad URLs, HTTP errors and undecodable bytes alike.
var ErrImageLoad = errors.New("jigsaw: image load failed")

// maxImageBytes bounds how much of a remote image is read.
const maxImageBytes = 64 << 20

// ImageSource is something the game can turn into a decoded image.
type ImageSource interface {
	// Name is a short human-readable label shown on the setup screen.
	Name() string
	Open(ctx context.Context) (io.ReadCloser, error)
}

// FileSource is an image on the local filesystem.
type FileSource string

// Name returns the file's base name.
func (f FileSource) Name() string { return filepath.Base(string(f)) }

// Open opens the file.
func (f FileSource) Open(context.Context) (io.ReadCloser, error) {
	return os.Open(string(f))
}

// URLSource is an image fetched over HTTP(S).
type URLSource struct {
	URL    string
	Client *http.Client // nil uses a client with a 30s timeout
}

// Name returns the URL.
func (u URLSource) Name() string { return u.URL }

// Open performs a GET request and returns the response body.
func (u URLSource) Open(ctx context.Context) (io.ReadCloser, error) {
	client := u.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", u.URL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096)) // drain
		resp.Body.Close()
		return nil, fmt.Errorf("get %s: status %d", u.URL, resp.StatusCode)
	}
	return struct {
		io.Reader
		io.Closer
	}{io.LimitReader(resp.Body, maxImageBytes), resp.Body}, nil
}

// FSSource is a file inside an fs.FS, such as the set returned by
// ebiten.DroppedFiles.
type FSSource struct {
	FS   fs.FS
	Path string
}

// Name returns the file's base name.
func (s FSSource) Name() string { return filepath.Base(s.Path) }

// Open opens the file within the filesystem.
func (s FSSource) Open(context.Context) (io.ReadCloser, error) {
	if s.FS == nil {
		return nil, errors.New("nil filesystem")
	}
	return s.FS.Open(s.Path)
}

// BytesSource is an image already held in memory.
type BytesSource struct {
	Label string
	Data  []byte
}

// Name returns the label.
func (s BytesSource) Name() string { return s.Label }

// Open returns a reader over the bytes.
func (s BytesSource) Open(context.Context) (io.ReadCloser, error) {
	if len(s.Data) == 0 {
		return nil, errors.New("no data")
	}
	return io.NopCloser(bytes.NewReader(s.Data)), nil
}

// ParseSource picks a source for a command-line argument: http(s) URLs become
// URLSource, anything else a FileSource. An empty string yields nil.
func ParseSource(ref string) ImageSource {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return nil
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return URLSource{URL: ref}
	default:
		return FileSource(ref)
	}
}

// LoadImage opens and decodes src. Every failure wraps ErrImageLoad.
func LoadImage(ctx context.Context, src ImageSource) (image.Image, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: no image selected", ErrImageLoad)
	}
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageLoad, src.Name(), err)
	}
	defer rc.Close()

	img, format, err := image.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrImageLoad, src.Name(), err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: %s: empty %s image", ErrImageLoad, src.Name(), format)
	}
	return img, nil
}
