package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palette/internal/models"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty", "", []string{}},
		{"blank", "   \t ", []string{}},
		{"lowercases", "SEO Guide", []string{"seo", "guide"}},
		{"collapses runs", "  a   b\n\tc ", []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.query)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScorer_Score(t *testing.T) {
	s := NewScorer(DefaultWeights())

	tests := []struct {
		name   string
		item   models.SearchableItem
		tokens []string
		want   float64
	}{
		{
			name:   "no tokens",
			item:   models.SearchableItem{Kind: models.KindArticle, Title: "seo"},
			tokens: nil,
			want:   0,
		},
		{
			name:   "exact title ignores case",
			item:   models.SearchableItem{Kind: models.KindArticle, Title: "SEO"},
			tokens: []string{"seo"},
			want:   20,
		},
		{
			name:   "title substring",
			item:   models.SearchableItem{Kind: models.KindArticle, Title: "SEO basics"},
			tokens: []string{"seo"},
			want:   10,
		},
		{
			name:   "exact tag suppresses tag substring",
			item:   models.SearchableItem{Kind: models.KindScript, Tags: []string{"seotools", "seo"}},
			tokens: []string{"seo"},
			want:   8,
		},
		{
			name:   "tag substring",
			item:   models.SearchableItem{Kind: models.KindScript, Tags: []string{"seotools"}},
			tokens: []string{"seo"},
			want:   5,
		},
		{
			name:   "description",
			item:   models.SearchableItem{Kind: models.KindEvent, Description: "An SEO workshop"},
			tokens: []string{"seo"},
			want:   3,
		},
		{
			name: "all bonuses stack",
			item: models.SearchableItem{
				Kind:        models.KindArticle,
				Title:       "seo",
				Tags:        []string{"seo"},
				Description: "seo",
			},
			tokens: []string{"seo"},
			want:   31,
		},
		{
			name:   "sums across tokens",
			item:   models.SearchableItem{Kind: models.KindArticle, Title: "Video editing", Description: "editing tips"},
			tokens: []string{"video", "editing"},
			want:   23,
		},
		{
			name:   "resource multiplier applied once",
			item:   models.SearchableItem{Kind: models.KindResource, Title: "Video editing pack"},
			tokens: []string{"video", "editing"},
			want:   30,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Score(tt.item, tt.tokens))
		})
	}
}

func TestWeights_Validate(t *testing.T) {
	assert.NoError(t, DefaultWeights().Validate())

	w := DefaultWeights()
	w.TagSubstring = -1
	assert.ErrorIs(t, w.Validate(), models.ErrValidation)
}

func TestWeights_ValidateReportsFirstNegativeField(t *testing.T) {
	w := DefaultWeights()
	w.Description = -3
	w.TitleSubstring = -1
	w.ResourceMultiplier = -0.5

	for i := 0; i < 20; i++ {
		err := w.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "title_substring")
	}
}
