package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_StrictJSON(t *testing.T) {
	raw := `{"title": "Blue Ceramic Vase", "description": "A 30cm vase...", "search_info": "see example.com"}`

	listing, err := New(Config{IncludeSearchInfo: true}).Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "Blue Ceramic Vase", listing.Title)
	assert.Equal(t, "A 30cm vase...", listing.Description)
	assert.Equal(t, "see example.com", listing.SearchInfo)
}

func TestExtract_JSONWrappedInProse(t *testing.T) {
	raw := "Here is the listing you asked for:\n\n```json\n" +
		`{"title": "Oak Desk", "description": "Solid oak writing desk.", "search_info": "3 sources"}` +
		"\n```\nLet me know if you need changes!"

	listing, err := New(Config{IncludeSearchInfo: true}).Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "Oak Desk", listing.Title)
	assert.Equal(t, "Solid oak writing desk.", listing.Description)
	assert.Equal(t, "3 sources", listing.SearchInfo)
}

func TestExtract_PatternFallbackWithoutBraces(t *testing.T) {
	raw := "Sure! Here is the result:\n\"title\": \"Red Mug\"\n\"description\": \"A ceramic mug.\"\nEnjoy!"

	listing, err := New(Config{}).Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "Red Mug", listing.Title)
	assert.Equal(t, "A ceramic mug.", listing.Description)
}

func TestExtract_SingleQuotedValues(t *testing.T) {
	raw := `Result: {"title": 'Wool Scarf', "description": 'Warm winter scarf.'}`

	listing, err := New(Config{}).Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "Wool Scarf", listing.Title)
	assert.Equal(t, "Warm winter scarf.", listing.Description)
}

func TestExtract_BareKeys(t *testing.T) {
	raw := "title: \"Leather Belt\"\ndescription: \"Brown leather belt, size M.\""

	listing, err := New(Config{}).Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "Leather Belt", listing.Title)
	assert.Equal(t, "Brown leather belt, size M.", listing.Description)
}

func TestExtract_BrokenCandidateDoesNotBlockLaterOne(t *testing.T) {
	// First candidate has trailing-comma JSON and fails strict parsing;
	// the second candidate must still be tried.
	raw := `{"title": "Bad", "description": "Broken",}` + "\nCorrected:\n" +
		`{"title": "Good Lamp", "description": "A working desk lamp.", "search_info": ""}`

	listing, err := New(Config{}).Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "Good Lamp", listing.Title)
	assert.Equal(t, "A working desk lamp.", listing.Description)
}

func TestExtract_StricterStrategyWins(t *testing.T) {
	// The JSON object fills both fields; the salvage-style lines below
	// must not overwrite them.
	raw := `{"title": "JSON Title", "description": "JSON description."}` + "\n" +
		"title: pattern title\ndescription: pattern description"

	listing, err := New(Config{}).Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "JSON Title", listing.Title)
	assert.Equal(t, "JSON description.", listing.Description)
}

func TestExtract_LineSalvage(t *testing.T) {
	tests := []struct {
		name            string
		raw             string
		wantTitle       string
		wantDescription string
	}{
		{
			name:            "english markers",
			raw:             "Title: A Fine Chair\nDescription: Sturdy oak chair, barely used",
			wantTitle:       "A Fine Chair",
			wantDescription: "Sturdy oak chair, barely used",
		},
		{
			name:            "localized markers",
			raw:             "Başlık: El Yapımı Seramik Vazo\nAçıklama: 30 cm yüksekliğinde dekoratif vazo",
			wantTitle:       "El Yapımı Seramik Vazo",
			wantDescription: "30 cm yüksekliğinde dekoratif vazo",
		},
		{
			name:            "quotes and commas stripped",
			raw:             "the title: \"Tea Pot\",\nthe description: 'Cast iron tea pot',",
			wantTitle:       "Tea Pot",
			wantDescription: "Cast iron tea pot",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing, err := New(Config{}).Extract(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, listing.Title)
			assert.Equal(t, tt.wantDescription, listing.Description)
		})
	}
}

func TestExtract_FailureReportsBothFields(t *testing.T) {
	_, err := New(Config{}).Extract("The model refused to answer.")
	require.Error(t, err)

	var extractErr *ExtractionError
	require.True(t, errors.As(err, &extractErr))
	assert.False(t, extractErr.TitleFound)
	assert.False(t, extractErr.DescriptionFound)
	assert.Equal(t, "The model refused to answer.", extractErr.Preview)
}

func TestExtract_FailurePreviewTruncated(t *testing.T) {
	raw := strings.Repeat("x", 1200)

	_, err := New(Config{}).Extract(raw)
	require.Error(t, err)

	var extractErr *ExtractionError
	require.True(t, errors.As(err, &extractErr))
	assert.Equal(t, strings.Repeat("x", 500)+"...", extractErr.Preview)
	assert.LessOrEqual(t, len(extractErr.Preview), 503)
}

func TestExtract_PartialRecoveryStillFails(t *testing.T) {
	_, err := New(Config{}).Extract(`"title": "Only A Title"`)
	require.Error(t, err)

	var extractErr *ExtractionError
	require.True(t, errors.As(err, &extractErr))
	assert.True(t, extractErr.TitleFound)
	assert.False(t, extractErr.DescriptionFound)
}

func TestExtract_Idempotent(t *testing.T) {
	raw := `{"title": "Pine Shelf", "description": "Wall-mounted pine shelf.", "search_info": "two sources"}`
	e := New(Config{IncludeSearchInfo: true})

	first, err := e.Extract(raw)
	require.NoError(t, err)
	second, err := e.Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExtract_TitleTruncation(t *testing.T) {
	longTitle := strings.Repeat("a", 120)
	raw := `{"title": "` + longTitle + `", "description": "Something."}`

	listing, err := New(Config{TitleLimit: 100}).Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 97)+"...", listing.Title)

	// Without a configured limit the title passes through untouched.
	listing, err = New(Config{}).Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, longTitle, listing.Title)
}

func TestExtract_SearchInfoOnlyWhenConfigured(t *testing.T) {
	raw := `{"title": "Globe", "description": "Vintage desk globe.", "search_info": "avg price 40 EUR"}`

	listing, err := New(Config{IncludeSearchInfo: true}).Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "avg price 40 EUR", listing.SearchInfo)

	listing, err = New(Config{}).Extract(raw)
	require.NoError(t, err)
	assert.Empty(t, listing.SearchInfo)
}

func TestExtract_WhitespaceOnlyFieldsRejected(t *testing.T) {
	// A candidate whose fields trim to empty does not satisfy the strict
	// strategy; the next candidate wins.
	raw := `{"title": "  ", "description": "  "}` + "\n" +
		`{"title": "Real", "description": "Real description."}`

	listing, err := New(Config{}).Extract(raw)
	require.NoError(t, err)
	assert.Equal(t, "Real", listing.Title)
	assert.Equal(t, "Real description.", listing.Description)
}
