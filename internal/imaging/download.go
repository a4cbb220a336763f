package imaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// DefaultFetchTimeout bounds the outbound image download.
const DefaultFetchTimeout = 30 * time.Second

// Download failures count as validation errors: the URL came from the
// caller, so a broken or non-image URL is a client problem.
var (
	ErrEmptyURL = errors.New("image URL is required")
	ErrNotImage = errors.New("URL does not point to an image")
	ErrDownload = errors.New("image download failed")
)

// Downloader fetches images from remote URLs with a bounded timeout and
// the same size ceiling the validator enforces.
type Downloader struct {
	client  *resty.Client
	maxSize int64
}

// NewDownloader returns a Downloader with the default timeout and size limit.
func NewDownloader() *Downloader {
	return &Downloader{
		client:  resty.New().SetTimeout(DefaultFetchTimeout),
		maxSize: MaxImageSize,
	}
}

// WithTimeout overrides the download timeout.
func (d *Downloader) WithTimeout(timeout time.Duration) *Downloader {
	d.client.SetTimeout(timeout)
	return d
}

// WithMaxSize overrides the size ceiling.
func (d *Downloader) WithMaxSize(maxSize int64) *Downloader {
	d.maxSize = maxSize
	return d
}

// FetchImage downloads the image at imageURL and returns its bytes and
// the content type reported by the server.
func (d *Downloader) FetchImage(ctx context.Context, imageURL string) ([]byte, string, error) {
	if imageURL == "" {
		return nil, "", ErrEmptyURL
	}

	resp, err := d.client.R().SetContext(ctx).Get(imageURL)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDownload, err)
	}
	if resp.IsError() {
		return nil, "", fmt.Errorf("%w: status %d", ErrDownload, resp.StatusCode())
	}

	contentType := resp.Header().Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", fmt.Errorf("%w: content type %q", ErrNotImage, contentType)
	}

	data := resp.Body()
	if int64(len(data)) > d.maxSize {
		return nil, "", fmt.Errorf("%w: %d bytes exceeds limit of %d bytes", ErrTooLarge, len(data), d.maxSize)
	}

	log.Debug().Str("url", imageURL).Int("bytes", len(data)).Str("contentType", contentType).Msg("image downloaded")
	return data, contentType, nil
}
