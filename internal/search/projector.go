package search

import (
	"strings"

	"palette/internal/models"
)

const (
	DefaultScriptExcerptLength = 150
	DefaultArticlePath         = "/blog"
	DefaultEventPath           = "/calendar"
)

// Routes holds the navigation prefixes for kinds whose target is implicit.
type Routes struct {
	ArticlePath string
	EventPath   string
}

func DefaultRoutes() Routes {
	return Routes{ArticlePath: DefaultArticlePath, EventPath: DefaultEventPath}
}

// Projector turns source entities into SearchableItems.
type Projector struct {
	ExcerptLength int
	Routes        Routes
}

func NewProjector() Projector {
	return Projector{ExcerptLength: DefaultScriptExcerptLength, Routes: DefaultRoutes()}
}

// Aggregate projects every entity of every permitted kind, in Article,
// Resource, Script, Event order. An empty kinds set permits all kinds.
// Relevance is left at zero.
func (p Projector) Aggregate(c models.Collections, kinds []models.ContentKind) []models.SearchableItem {
	allowed := func(k models.ContentKind) bool {
		return len(kinds) == 0 || models.ContainsKind(kinds, k)
	}

	items := make([]models.SearchableItem, 0, c.Len())
	if allowed(models.KindArticle) {
		for _, a := range c.Articles {
			items = append(items, p.ProjectArticle(a))
		}
	}
	if allowed(models.KindResource) {
		for _, r := range c.Resources {
			items = append(items, p.ProjectResource(r))
		}
	}
	if allowed(models.KindScript) {
		for _, s := range c.Scripts {
			items = append(items, p.ProjectScript(s))
		}
	}
	if allowed(models.KindEvent) {
		for _, e := range c.Events {
			items = append(items, p.ProjectEvent(e))
		}
	}
	return items
}

func (p Projector) ProjectArticle(a models.Article) models.SearchableItem {
	description := a.Excerpt
	if description == "" {
		description = truncate(a.Body, p.ExcerptLength)
	}
	created := a.CreatedAt
	return models.SearchableItem{
		ID:          a.ID,
		Kind:        models.KindArticle,
		Title:       a.Title,
		Description: description,
		Tags:        copyTags(a.Tags),
		Date:        &created,
		URL:         joinPath(p.Routes.ArticlePath, a.ID),
	}
}

func (p Projector) ProjectResource(r models.Resource) models.SearchableItem {
	return models.SearchableItem{
		ID:          r.ID,
		Kind:        models.KindResource,
		Title:       r.Title,
		Description: r.Description,
		Tags:        copyTags(r.Tags),
		URL:         r.URL,
	}
}

func (p Projector) ProjectScript(s models.Script) models.SearchableItem {
	updated := s.UpdatedAt
	return models.SearchableItem{
		ID:          s.ID,
		Kind:        models.KindScript,
		Title:       s.Title,
		Description: truncate(s.Body, p.ExcerptLength),
		Tags:        copyTags(s.Tags),
		Date:        &updated,
	}
}

func (p Projector) ProjectEvent(e models.Event) models.SearchableItem {
	start := e.Start
	return models.SearchableItem{
		ID:          e.ID,
		Kind:        models.KindEvent,
		Title:       e.Title,
		Description: e.Description,
		Tags:        []string{},
		Date:        &start,
		URL:         joinPath(p.Routes.EventPath, e.ID),
	}
}

// truncate keeps the first n runes of s. n <= 0 disables truncation.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func copyTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}

func joinPath(prefix, id string) string {
	return strings.TrimRight(prefix, "/") + "/" + id
}
