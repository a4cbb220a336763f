// Package server exposes the analyzer over the two transport variants:
// a gRPC service and an HTTP service.
package server

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/imagelens/product-analyzer/internal/extract"
	"github.com/imagelens/product-analyzer/internal/imaging"
	"github.com/imagelens/product-analyzer/productanalyzerpb"
)

// ServiceName is reported by the health check.
const ServiceName = "ProductAnalyzer"

// Service is what the transports need from the analyzer.
type Service interface {
	GenerateFromImage(ctx context.Context, data []byte, filename, contentType string) (*extract.Listing, error)
	GenerateFromImageURL(ctx context.Context, imageURL string) (*extract.Listing, error)
}

// GRPC implements productanalyzerpb.ProductAnalyzerServer.
type GRPC struct {
	productanalyzerpb.UnimplementedProductAnalyzerServer
	service Service
}

// NewGRPC returns the gRPC transport over service.
func NewGRPC(service Service) *GRPC {
	return &GRPC{service: service}
}

func (s *GRPC) GenerateFromImage(ctx context.Context, req *productanalyzerpb.ImageRequest) (*productanalyzerpb.ImageResponse, error) {
	start := time.Now()
	listing, err := s.service.GenerateFromImage(ctx, req.GetImage(), req.GetFilename(), req.GetContentType())
	if err != nil {
		return nil, grpcError("GenerateFromImage", err)
	}
	generateRequests.WithLabelValues("grpc", outcomeOK).Inc()
	generateDuration.WithLabelValues("grpc").Observe(time.Since(start).Seconds())
	return listingResponse(listing), nil
}

func (s *GRPC) GenerateFromImageUrl(ctx context.Context, req *productanalyzerpb.ImageUrlRequest) (*productanalyzerpb.ImageResponse, error) {
	start := time.Now()
	listing, err := s.service.GenerateFromImageURL(ctx, req.GetImageUrl())
	if err != nil {
		return nil, grpcError("GenerateFromImageUrl", err)
	}
	generateRequests.WithLabelValues("grpc", outcomeOK).Inc()
	generateDuration.WithLabelValues("grpc").Observe(time.Since(start).Seconds())
	return listingResponse(listing), nil
}

// HealthCheck reports static liveness only; no dependencies are probed.
func (s *GRPC) HealthCheck(ctx context.Context, req *productanalyzerpb.HealthCheckRequest) (*productanalyzerpb.HealthCheckResponse, error) {
	return &productanalyzerpb.HealthCheckResponse{
		Status:  "healthy",
		Service: ServiceName,
	}, nil
}

func listingResponse(listing *extract.Listing) *productanalyzerpb.ImageResponse {
	return &productanalyzerpb.ImageResponse{
		Title:       listing.Title,
		Description: listing.Description,
		SearchInfo:  listing.SearchInfo,
	}
}

// grpcError maps the error taxonomy onto status codes: validation
// failures are the caller's fault, everything else is internal.
func grpcError(method string, err error) error {
	if imaging.IsValidationError(err) {
		generateRequests.WithLabelValues("grpc", outcomeInvalid).Inc()
		return status.Error(codes.InvalidArgument, err.Error())
	}
	log.Error().Err(err).Str("method", method).Msg("request failed")
	generateRequests.WithLabelValues("grpc", outcomeInternal).Inc()
	return status.Error(codes.Internal, err.Error())
}
