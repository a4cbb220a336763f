package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_VariantsDiffer(t *testing.T) {
	structured := Build(VariantStructured)
	plain := Build(VariantPlain)

	assert.NotEqual(t, structured, plain)
	assert.True(t, strings.HasPrefix(structured, "<prompt>"))
	assert.False(t, strings.Contains(plain, "<prompt>"))
}

func TestBuild_ContainsRequiredKeys(t *testing.T) {
	for name, p := range map[string]string{
		"structured": Build(VariantStructured),
		"plain":      Build(VariantPlain),
	} {
		t.Run(name, func(t *testing.T) {
			// Both templates must demand the exact three JSON keys and
			// the mandatory web search.
			assert.Contains(t, p, `"title"`)
			assert.Contains(t, p, `"description"`)
			assert.Contains(t, p, `"search_info"`)
			assert.Contains(t, p, "web araması")
			assert.Contains(t, p, "JSON")
		})
	}
}

func TestBuild_UnknownVariantFallsBackToPlain(t *testing.T) {
	assert.Equal(t, Build(VariantPlain), Build(Variant("bogus")))
}

func TestBuild_Stable(t *testing.T) {
	assert.Equal(t, Build(VariantStructured), Build(VariantStructured))
}
