package imaging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchImage_Success(t *testing.T) {
	imageData := []byte{0x89, 0x50, 0x4E, 0x47}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		w.Write(imageData)
	}))
	defer ts.Close()

	data, contentType, err := NewDownloader().FetchImage(context.Background(), ts.URL)
	require.NoError(t, err)
	assert.Equal(t, imageData, data)
	assert.Equal(t, "image/png", contentType)
}

func TestFetchImage_EmptyURL(t *testing.T) {
	_, _, err := NewDownloader().FetchImage(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyURL)
}

func TestFetchImage_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	_, _, err := NewDownloader().FetchImage(context.Background(), ts.URL)
	assert.ErrorIs(t, err, ErrDownload)
}

func TestFetchImage_NonImageContentType(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>not an image</html>"))
	}))
	defer ts.Close()

	_, _, err := NewDownloader().FetchImage(context.Background(), ts.URL)
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestFetchImage_TooLarge(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(make([]byte, 100))
	}))
	defer ts.Close()

	_, _, err := NewDownloader().WithMaxSize(50).FetchImage(context.Background(), ts.URL)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestFetchImage_ContextCanceled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should have been canceled")
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewDownloader().FetchImage(ctx, ts.URL)
	assert.ErrorIs(t, err, ErrDownload)
}

func TestFetchImage_UnreachableHost(t *testing.T) {
	_, _, err := NewDownloader().FetchImage(context.Background(), "http://127.0.0.1:1/nope.png")
	assert.ErrorIs(t, err, ErrDownload)
}
