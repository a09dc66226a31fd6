package models

import (
	"time"
)

// Article is a blog post owned by the editor subsystem.
type Article struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Body      string    `db:"body" json:"body"`
	Excerpt   string    `db:"excerpt" json:"excerpt"`
	Tags      []string  `db:"tags" json:"tags"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Resource is a downloadable asset. It carries an explicit URL and no date.
type Resource struct {
	ID          string   `db:"id" json:"id"`
	Title       string   `db:"title" json:"title"`
	Description string   `db:"description" json:"description"`
	Tags        []string `db:"tags" json:"tags"`
	URL         string   `db:"url" json:"url"`
}

// Script is a video or podcast script. Scripts have no navigation target.
type Script struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Body      string    `db:"body" json:"body"`
	Tags      []string  `db:"tags" json:"tags"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Event is a calendar entry. Events are never tagged.
type Event struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Start       time.Time `db:"start_at" json:"start"`
}

// Collections holds the four source sequences a search runs over.
// A nil slice is an absent collection and is treated as empty.
type Collections struct {
	Articles  []Article
	Resources []Resource
	Scripts   []Script
	Events    []Event
}

// Len returns the total number of source entities.
func (c Collections) Len() int {
	return len(c.Articles) + len(c.Resources) + len(c.Scripts) + len(c.Events)
}

// SearchableItem is the uniform projection of a source entity.
type SearchableItem struct {
	ID          string      `json:"id"`
	Kind        ContentKind `json:"kind"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Tags        []string    `json:"tags"`
	Date        *time.Time  `json:"date,omitempty"`
	Relevance   float64     `json:"relevance"`
	URL         string      `json:"url,omitempty"`
}

// DateRange is inclusive on both ends.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls within the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// SearchFilters narrows a search by structure rather than text.
// Zero values disable the corresponding filter.
type SearchFilters struct {
	Kinds     []ContentKind `json:"kinds,omitempty"`
	Tags      []string      `json:"tags,omitempty"`
	DateRange *DateRange    `json:"date_range,omitempty"`
}

type SearchQuery struct {
	ID           int64     `db:"id" json:"id"`
	Query        string    `db:"query" json:"query"`
	ResultsCount int       `db:"results_count" json:"results_count"`
	ExecutedAt   time.Time `db:"executed_at" json:"executed_at"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type SearchResult struct {
	ID             int64       `db:"id" json:"id"`
	SearchQueryID  int64       `db:"search_query_id" json:"search_query_id"`
	ItemID         string      `db:"item_id" json:"item_id"`
	Kind           ContentKind `db:"kind" json:"kind"`
	RelevanceScore float64     `db:"relevance_score" json:"relevance_score"`
	Rank           int         `db:"rank" json:"rank"`
	CreatedAt      time.Time   `db:"created_at" json:"created_at"`
}
