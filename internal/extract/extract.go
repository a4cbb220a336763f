// Package extract recovers structured listing fields from the free-form
// text Gemini returns. The model is told to reply with a single JSON
// object but regularly wraps it in prose or markdown, drifts to single
// quotes, or drops the braces entirely, so parsing is layered: strict
// JSON first, then field-level patterns, then a line-by-line salvage.
package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Listing is the structured result of a successful extraction.
type Listing struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	SearchInfo  string `json:"search_info"`
}

// Config selects per-deployment extractor behavior. The zero value
// performs no title truncation and clears search_info.
type Config struct {
	// TitleLimit truncates titles longer than the limit. 0 disables
	// truncation.
	TitleLimit int
	// IncludeSearchInfo keeps the search_info field in results. When
	// false the field is always empty.
	IncludeSearchInfo bool
}

// previewLimit bounds the diagnostic preview carried by ExtractionError.
const previewLimit = 500

// truncatedTitleLen is the number of characters kept when a title
// exceeds TitleLimit, before the ellipsis is appended.
const truncatedTitleLen = 97

// ExtractionError reports that no usable title/description pair could be
// recovered from the response text.
type ExtractionError struct {
	TitleFound       bool
	DescriptionFound bool
	Preview          string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf(
		"could not parse response: found title: %s, found description: %s, response preview: %s",
		yesNo(e.TitleFound), yesNo(e.DescriptionFound), e.Preview,
	)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// jsonCandidateRe finds brace-delimited substrings that mention both
// required keys. Non-greedy so that several candidates in one reply are
// tried one by one.
var jsonCandidateRe = regexp.MustCompile(`(?s)\{.*?"title".*?"description".*?\}`)

// Field pattern variants, strictest first: double-quoted key with
// double-quoted value, then single-quoted value, then the same pair for
// a bare key. Values may span lines.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)"title"\s*:\s*"([^"]+)"`),
	regexp.MustCompile(`(?is)"title"\s*:\s*'([^']+)'`),
	regexp.MustCompile(`(?is)title:\s*"([^"]+)"`),
	regexp.MustCompile(`(?is)title:\s*'([^']+)'`),
}

var descriptionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)"description"\s*:\s*"([^"]+)"`),
	regexp.MustCompile(`(?is)"description"\s*:\s*'([^']+)'`),
	regexp.MustCompile(`(?is)description:\s*"([^"]+)"`),
	regexp.MustCompile(`(?is)description:\s*'([^']+)'`),
}

// Marker words for the line salvage pass. The model answers in Turkish,
// so the localized field names count as markers too.
var (
	titleMarkers       = []string{"title", "başlık"}
	descriptionMarkers = []string{"description", "açıklama"}
)

// Extractor turns a raw model reply into a Listing according to its Config.
type Extractor struct {
	cfg Config
}

// New returns an Extractor with the given config.
func New(cfg Config) *Extractor {
	return &Extractor{cfg: cfg}
}

// Extract recovers title, description and search_info from raw text.
// Strategies run in priority order and a field filled by an earlier
// strategy is never overwritten by a later one. Pure function of its
// input: the same text always yields the same outcome.
func (e *Extractor) Extract(raw string) (*Listing, error) {
	listing := parseJSONCandidates(raw)

	if listing.Title == "" || listing.Description == "" {
		fillFromPatterns(&listing, raw)
	}

	if listing.Title == "" || listing.Description == "" {
		fillFromLines(&listing, raw)
	}

	if listing.Title == "" || listing.Description == "" {
		return nil, &ExtractionError{
			TitleFound:       listing.Title != "",
			DescriptionFound: listing.Description != "",
			Preview:          preview(raw),
		}
	}

	if e.cfg.TitleLimit > 0 {
		listing.Title = truncateTitle(listing.Title, e.cfg.TitleLimit)
	}
	if !e.cfg.IncludeSearchInfo {
		listing.SearchInfo = ""
	}
	return &listing, nil
}

// parseJSONCandidates tries a strict JSON parse on each brace-delimited
// candidate and returns the first one with both required fields. A
// candidate that fails to decode does not stop later candidates.
func parseJSONCandidates(raw string) Listing {
	for _, candidate := range jsonCandidateRe.FindAllString(raw, -1) {
		var l Listing
		if err := json.Unmarshal([]byte(candidate), &l); err != nil {
			continue
		}
		l.Title = strings.TrimSpace(l.Title)
		l.Description = strings.TrimSpace(l.Description)
		l.SearchInfo = strings.TrimSpace(l.SearchInfo)
		if l.Title != "" && l.Description != "" {
			return l
		}
	}
	return Listing{}
}

// fillFromPatterns searches each still-empty field independently with
// its pattern list, first match wins.
func fillFromPatterns(l *Listing, raw string) {
	if l.Title == "" {
		l.Title = firstMatch(titlePatterns, raw)
	}
	if l.Description == "" {
		l.Description = firstMatch(descriptionPatterns, raw)
	}
}

func firstMatch(patterns []*regexp.Regexp, raw string) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(raw); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// fillFromLines is the last-resort pass: any line containing a marker
// word is split on its first colon and the tail becomes the field value.
func fillFromLines(l *Listing, raw string) {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		switch {
		case l.Title == "" && containsAny(lower, titleMarkers):
			l.Title = lineValue(line)
		case l.Description == "" && containsAny(lower, descriptionMarkers):
			l.Description = lineValue(line)
		}
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func lineValue(line string) string {
	_, after, found := strings.Cut(line, ":")
	if !found {
		return ""
	}
	return strings.Trim(strings.TrimSpace(after), `"',`)
}

// preview returns the first previewLimit characters of raw, with an
// ellipsis marker when the text was longer.
func preview(raw string) string {
	runes := []rune(raw)
	if len(runes) <= previewLimit {
		return raw
	}
	return string(runes[:previewLimit]) + "..."
}

func truncateTitle(title string, limit int) string {
	runes := []rune(title)
	if len(runes) <= limit {
		return title
	}
	return string(runes[:truncatedTitleLen]) + "..."
}
