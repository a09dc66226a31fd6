package search

import (
	"fmt"
	"strings"

	"palette/internal/models"
)

// Weights are the points awarded per token for each kind of match, plus the
// final multiplier applied to resources.
type Weights struct {
	TitleExact         float64 `mapstructure:"title_exact" validate:"gte=0"`
	TitleSubstring     float64 `mapstructure:"title_substring" validate:"gte=0"`
	TagExact           float64 `mapstructure:"tag_exact" validate:"gte=0"`
	TagSubstring       float64 `mapstructure:"tag_substring" validate:"gte=0"`
	Description        float64 `mapstructure:"description" validate:"gte=0"`
	ResourceMultiplier float64 `mapstructure:"resource_multiplier" validate:"gte=0"`
}

func DefaultWeights() Weights {
	return Weights{
		TitleExact:         20,
		TitleSubstring:     10,
		TagExact:           8,
		TagSubstring:       5,
		Description:        3,
		ResourceMultiplier: 1.5,
	}
}

// Validate rejects negative weights.
func (w Weights) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"title_exact", w.TitleExact},
		{"title_substring", w.TitleSubstring},
		{"tag_exact", w.TagExact},
		{"tag_substring", w.TagSubstring},
		{"description", w.Description},
		{"resource_multiplier", w.ResourceMultiplier},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: weight %s must be non-negative, got %v", models.ErrValidation, f.name, f.value)
		}
	}
	return nil
}

type Scorer struct {
	weights Weights
}

func NewScorer(w Weights) Scorer {
	return Scorer{weights: w}
}

func (s Scorer) Weights() Weights {
	return s.weights
}

// Score sums per-token contributions for item. Tokens are expected to be
// lowercase, as produced by Tokenize.
func (s Scorer) Score(item models.SearchableItem, tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}

	title := strings.ToLower(item.Title)
	description := strings.ToLower(item.Description)
	tags := make([]string, len(item.Tags))
	for i, t := range item.Tags {
		tags[i] = strings.ToLower(t)
	}

	var total float64
	for _, token := range tokens {
		total += s.scoreToken(token, title, description, tags)
	}

	if item.Kind == models.KindResource {
		total *= s.weights.ResourceMultiplier
	}
	return total
}

func (s Scorer) scoreToken(token, title, description string, tags []string) float64 {
	var points float64

	if title == token {
		points += s.weights.TitleExact
	} else if strings.Contains(title, token) {
		points += s.weights.TitleSubstring
	}

	// exact tag match suppresses the substring bonus for this token
	exact, partial := false, false
	for _, tag := range tags {
		if tag == token {
			exact = true
			break
		}
		if strings.Contains(tag, token) {
			partial = true
		}
	}
	if exact {
		points += s.weights.TagExact
	} else if partial {
		points += s.weights.TagSubstring
	}

	if strings.Contains(description, token) {
		points += s.weights.Description
	}
	return points
}
