// Package gemini wraps the Gemini API as the completion engine: one
// multimodal request in, concatenated response text out.
package gemini

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// DefaultModel is used when the deployment does not override the model.
const DefaultModel = "gemini-2.5-pro"

// Config carries the per-deployment sampling, tool and fallback settings.
type Config struct {
	Model string
	// Temperature is optional; nil leaves the model default.
	Temperature *float32
	// EnableSearch attaches the Google Search tool. Both deployments
	// require web research, so this is normally on.
	EnableSearch bool
	// EnableURLContext attaches the URL context tool (structured variant).
	EnableURLContext bool
	// ThinkingBudget is optional; -1 lets the model decide.
	ThinkingBudget *int32
	// StreamFallback retries once with a non-streaming call when the
	// streaming call fails. Without it a stream error is surfaced as-is.
	StreamFallback bool
}

type streamFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error]

type generateFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

// Client calls the Gemini API. Safe for concurrent use; it holds no
// per-request state.
type Client struct {
	cfg Config

	// The two SDK entry points, held as fields so tests can substitute
	// canned responses.
	stream   streamFunc
	generate generateFunc
}

// New creates a Client authenticated with apiKey.
func New(ctx context.Context, apiKey string, cfg Config) (*Client, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Client{
		cfg:      cfg,
		stream:   client.Models.GenerateContentStream,
		generate: client.Models.GenerateContent,
	}, nil
}

// Complete sends the prompt and the raw image bytes to Gemini and
// returns the concatenated response text. The streaming call is
// preferred; on a stream error either the configured non-streaming
// fallback runs once or the error is surfaced. No other retries.
func (c *Client) Complete(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		{InlineData: &genai.Blob{Data: image, MIMEType: mimeType}},
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}
	config := buildGenerateContentConfig(c.cfg)

	text, streamErr := c.completeStreaming(ctx, contents, config)
	if streamErr != nil {
		if !c.cfg.StreamFallback {
			return "", fmt.Errorf("streaming call failed: %w", streamErr)
		}
		log.Warn().Err(streamErr).Msg("streaming call failed, retrying without streaming")
		result, err := c.generate(ctx, c.cfg.Model, contents, config)
		if err != nil {
			return "", fmt.Errorf("fallback call failed: %w", err)
		}
		text = result.Text()
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("no text in Gemini response")
	}
	return text, nil
}

// completeStreaming concatenates streamed fragments in arrival order.
// Any partial text accumulated before a stream error is discarded.
func (c *Client) completeStreaming(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
	var sb strings.Builder
	for resp, err := range c.stream(ctx, c.cfg.Model, contents, config) {
		if err != nil {
			return "", err
		}
		sb.WriteString(resp.Text())
	}
	return sb.String(), nil
}

// buildGenerateContentConfig maps Config onto the SDK request config.
// Safety thresholds sit at the least restrictive non-blocking tier so
// benign product imagery is not over-blocked.
func buildGenerateContentConfig(cfg Config) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Temperature: cfg.Temperature,
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
		},
	}
	if cfg.ThinkingBudget != nil {
		config.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: cfg.ThinkingBudget}
	}
	if cfg.EnableURLContext {
		config.Tools = append(config.Tools, &genai.Tool{URLContext: &genai.URLContext{}})
	}
	if cfg.EnableSearch {
		config.Tools = append(config.Tools, &genai.Tool{GoogleSearch: &genai.GoogleSearch{}})
	}
	return config
}
