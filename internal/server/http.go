package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/imagelens/product-analyzer/internal/imaging"
)

// HTTP is the REST transport variant.
type HTTP struct {
	service Service
}

// NewHTTP returns the HTTP transport over service.
func NewHTTP(service Service) *HTTP {
	return &HTTP{service: service}
}

// Handler returns the chi router with all routes mounted.
func (s *HTTP) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Minute))
	r.Use(corsMiddleware)

	r.Get("/", s.handleRoot)
	r.Post("/generate-from-image", s.handleGenerateFromImage)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// handleRoot is the liveness endpoint. Static only.
func (s *HTTP) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Product Image Analyzer API is running",
		"status":  "healthy",
	})
}

// handleGenerateFromImage accepts a multipart upload under the "image"
// field and responds with the generated title and description.
func (s *HTTP) handleGenerateFromImage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file is missing from the request")
		generateRequests.WithLabelValues("http", outcomeInvalid).Inc()
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, imaging.MaxImageSize+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read image file")
		generateRequests.WithLabelValues("http", outcomeInvalid).Inc()
		return
	}

	contentType := header.Header.Get("Content-Type")
	// Passing the request context means a client disconnect cancels the
	// in-flight completion call instead of letting it run to completion.
	listing, err := s.service.GenerateFromImage(r.Context(), data, header.Filename, contentType)
	if err != nil {
		if imaging.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			generateRequests.WithLabelValues("http", outcomeInvalid).Inc()
			return
		}
		log.Error().Err(err).Str("filename", header.Filename).Msg("generate from image failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		generateRequests.WithLabelValues("http", outcomeInternal).Inc()
		return
	}

	generateRequests.WithLabelValues("http", outcomeOK).Inc()
	generateDuration.WithLabelValues("http").Observe(time.Since(start).Seconds())

	// The HTTP variant never exposes search_info.
	writeJSON(w, http.StatusOK, map[string]string{
		"title":       listing.Title,
		"description": listing.Description,
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, map[string]string{"detail": detail})
}

// corsMiddleware allows browser clients from any origin.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
