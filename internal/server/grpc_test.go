package server

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/imagelens/product-analyzer/internal/extract"
	"github.com/imagelens/product-analyzer/internal/imaging"
	"github.com/imagelens/product-analyzer/productanalyzerpb"
)

type stubService struct {
	listing *extract.Listing
	err     error

	gotData        []byte
	gotFilename    string
	gotContentType string
	gotURL         string
}

func (s *stubService) GenerateFromImage(ctx context.Context, data []byte, filename, contentType string) (*extract.Listing, error) {
	s.gotData = data
	s.gotFilename = filename
	s.gotContentType = contentType
	return s.listing, s.err
}

func (s *stubService) GenerateFromImageURL(ctx context.Context, imageURL string) (*extract.Listing, error) {
	s.gotURL = imageURL
	return s.listing, s.err
}

func TestGRPCGenerateFromImage_Success(t *testing.T) {
	svc := &stubService{listing: &extract.Listing{
		Title:       "Steel Thermos",
		Description: "One liter vacuum flask.",
		SearchInfo:  "compared against 3 models",
	}}
	s := NewGRPC(svc)

	resp, err := s.GenerateFromImage(context.Background(), &productanalyzerpb.ImageRequest{
		Image:       []byte{1, 2, 3},
		Filename:    "thermos.jpg",
		ContentType: "image/jpeg",
	})
	require.NoError(t, err)
	assert.Equal(t, "Steel Thermos", resp.GetTitle())
	assert.Equal(t, "One liter vacuum flask.", resp.GetDescription())
	assert.Equal(t, "compared against 3 models", resp.GetSearchInfo())
	assert.Equal(t, []byte{1, 2, 3}, svc.gotData)
	assert.Equal(t, "thermos.jpg", svc.gotFilename)
	assert.Equal(t, "image/jpeg", svc.gotContentType)
}

func TestGRPCGenerateFromImage_StatusCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode codes.Code
	}{
		{"invalid format", fmt.Errorf("wrap: %w", imaging.ErrInvalidFormat), codes.InvalidArgument},
		{"too large", imaging.ErrTooLarge, codes.InvalidArgument},
		{"undecodable", imaging.ErrDecode, codes.InvalidArgument},
		{"extraction failure", &extract.ExtractionError{Preview: "garbage"}, codes.Internal},
		{"upstream failure", errors.New("engine rejected the request"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewGRPC(&stubService{err: tt.err})

			_, err := s.GenerateFromImage(context.Background(), &productanalyzerpb.ImageRequest{})
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, status.Code(err))
		})
	}
}

func TestGRPCGenerateFromImageUrl(t *testing.T) {
	svc := &stubService{listing: &extract.Listing{Title: "T", Description: "D"}}
	s := NewGRPC(svc)

	resp, err := s.GenerateFromImageUrl(context.Background(), &productanalyzerpb.ImageUrlRequest{
		ImageUrl: "https://example.com/a.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "T", resp.GetTitle())
	assert.Equal(t, "https://example.com/a.png", svc.gotURL)
}

func TestGRPCGenerateFromImageUrl_BadURLIsInvalidArgument(t *testing.T) {
	s := NewGRPC(&stubService{err: fmt.Errorf("wrap: %w", imaging.ErrNotImage)})

	_, err := s.GenerateFromImageUrl(context.Background(), &productanalyzerpb.ImageUrlRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGRPCHealthCheck(t *testing.T) {
	s := NewGRPC(&stubService{})

	resp, err := s.HealthCheck(context.Background(), &productanalyzerpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, "healthy", resp.GetStatus())
	assert.Equal(t, "ProductAnalyzer", resp.GetService())
}
