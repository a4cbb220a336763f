// Package analyzer wires validation, prompt building, the completion
// call and response extraction into the two logical operations both
// service boundaries expose.
package analyzer

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/imagelens/product-analyzer/internal/extract"
	"github.com/imagelens/product-analyzer/internal/imaging"
	"github.com/imagelens/product-analyzer/internal/prompt"
)

// Completer is the completion engine seam. Production uses the Gemini
// client; tests substitute a canned implementation.
type Completer interface {
	Complete(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}

// Analyzer generates listing copy from product images. Requests share no
// mutable state, so a single Analyzer serves all workers concurrently.
type Analyzer struct {
	completer  Completer
	downloader *imaging.Downloader
	extractor  *extract.Extractor
	prompt     string
}

// New builds an Analyzer around the given completion engine.
func New(completer Completer, variant prompt.Variant, extractCfg extract.Config) *Analyzer {
	return &Analyzer{
		completer:  completer,
		downloader: imaging.NewDownloader(),
		extractor:  extract.New(extractCfg),
		prompt:     prompt.Build(variant),
	}
}

// GenerateFromImage validates the uploaded bytes, sends them to the
// completion engine and extracts the listing fields from the reply.
func (a *Analyzer) GenerateFromImage(ctx context.Context, data []byte, filename, contentType string) (*extract.Listing, error) {
	img, err := imaging.Validate(filename, contentType, data)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	text, err := a.completer.Complete(ctx, a.prompt, img.Bytes, img.ContentType)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("filename", filename).
		Str("format", img.Format).
		Int("imageBytes", len(img.Bytes)).
		Dur("elapsed", time.Since(start)).
		Int("responseChars", len(text)).
		Msg("completion finished")

	return a.extractor.Extract(text)
}

// GenerateFromImageURL fetches the image at imageURL and processes it
// like an upload. The download's content type stands in for a declared
// MIME type, and no filename means no extension check.
func (a *Analyzer) GenerateFromImageURL(ctx context.Context, imageURL string) (*extract.Listing, error) {
	data, contentType, err := a.downloader.FetchImage(ctx, imageURL)
	if err != nil {
		return nil, err
	}
	return a.GenerateFromImage(ctx, data, "", contentType)
}
