package clix

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"palette/internal/models"
)

const dateLayout = "2006-01-02"

// openEnd stands in for an unbounded upper date.
var openEnd = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

type PaginationParams struct {
	Limit int
}

// ParsePagination reads --limit. Zero means "use the configured default".
func ParsePagination(flags *pflag.FlagSet) (PaginationParams, error) {
	limit, _ := flags.GetInt("limit")
	if limit < 0 {
		return PaginationParams{}, fmt.Errorf("--limit must not be negative: %w", models.ErrValidation)
	}
	return PaginationParams{Limit: limit}, nil
}

func ParseTags(flags *pflag.FlagSet) ([]string, error) {
	tagsStr, _ := flags.GetString("tags")
	return SplitList(tagsStr), nil
}

func ParseKinds(flags *pflag.FlagSet) ([]models.ContentKind, error) {
	kindsStr, _ := flags.GetString("kinds")
	return ParseKindList(kindsStr)
}

// ParseDateRange reads --from and --to. Either may be omitted.
func ParseDateRange(flags *pflag.FlagSet) (*models.DateRange, error) {
	from, _ := flags.GetString("from")
	to, _ := flags.GetString("to")
	return ParseDateBounds(from, to)
}

// ParseSearchFilters collects every filter flag of the search command.
func ParseSearchFilters(flags *pflag.FlagSet) (models.SearchFilters, error) {
	var f models.SearchFilters
	var err error
	if f.Kinds, err = ParseKinds(flags); err != nil {
		return f, err
	}
	if f.Tags, err = ParseTags(flags); err != nil {
		return f, err
	}
	if f.DateRange, err = ParseDateRange(flags); err != nil {
		return f, err
	}
	return f, nil
}

// SplitList splits a comma separated value, trimming blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func ParseKindList(s string) ([]models.ContentKind, error) {
	var kinds []models.ContentKind
	for _, raw := range SplitList(s) {
		k, err := models.ParseContentKind(raw)
		if err != nil {
			return nil, err
		}
		if !models.ContainsKind(kinds, k) {
			kinds = append(kinds, k)
		}
	}
	return kinds, nil
}

// ParseDateBounds builds an inclusive range from optional bounds. A bare
// date as the upper bound covers that whole day.
func ParseDateBounds(from, to string) (*models.DateRange, error) {
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if from == "" && to == "" {
		return nil, nil
	}

	r := &models.DateRange{End: openEnd}
	if from != "" {
		t, _, err := parseDate(from)
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
		r.Start = t
	}
	if to != "" {
		t, dateOnly, err := parseDate(to)
		if err != nil {
			return nil, fmt.Errorf("to: %w", err)
		}
		if dateOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		r.End = t
	}
	if r.End.Before(r.Start) {
		return nil, fmt.Errorf("%s is after %s: %w", from, to, models.ErrInvalidDateRange)
	}
	return r, nil
}

func parseDate(s string) (time.Time, bool, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%q is neither YYYY-MM-DD nor RFC3339: %w", s, models.ErrInvalidDateRange)
	}
	return t, false, nil
}
