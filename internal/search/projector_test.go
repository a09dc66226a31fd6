package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palette/internal/models"
)

func TestProjector_FieldMapping(t *testing.T) {
	p := NewProjector()
	c := sampleCollections()

	items := p.Aggregate(c, nil)
	require.Len(t, items, c.Len())

	article := findItem(t, items, "a1")
	assert.Equal(t, models.KindArticle, article.Kind)
	assert.Equal(t, "Grow your audience with proven strategies.", article.Description)
	assert.Equal(t, "/blog/a1", article.URL)
	require.NotNil(t, article.Date)
	assert.True(t, article.Date.Equal(c.Articles[0].CreatedAt))

	resource := findItem(t, items, "r1")
	assert.Equal(t, "https://example.com/seo.pdf", resource.URL)
	assert.Nil(t, resource.Date)

	script := findItem(t, items, "s1")
	assert.Empty(t, script.URL)
	require.NotNil(t, script.Date)

	event := findItem(t, items, "e1")
	assert.Equal(t, "/calendar/e1", event.URL)
	assert.Empty(t, event.Tags)
	assert.NotNil(t, event.Tags)
}

func TestProjector_ArticleFallsBackToBody(t *testing.T) {
	item := NewProjector().ProjectArticle(models.Article{ID: "a", Body: "short body"})
	assert.Equal(t, "short body", item.Description)
}

func TestProjector_ScriptBodyIsTruncated(t *testing.T) {
	p := NewProjector()
	p.ExcerptLength = 10

	item := p.ProjectScript(models.Script{ID: "s", Body: strings.Repeat("é", 25)})

	assert.Equal(t, strings.Repeat("é", 10), item.Description)
}

func TestProjector_KindInclusion(t *testing.T) {
	items := NewProjector().Aggregate(sampleCollections(), []models.ContentKind{models.KindScript, models.KindEvent})

	require.Len(t, items, 2)
	assert.Equal(t, models.KindScript, items[0].Kind)
	assert.Equal(t, models.KindEvent, items[1].Kind)
}

func TestProjector_RoutesTrimSlash(t *testing.T) {
	p := NewProjector()
	p.Routes = Routes{ArticlePath: "/posts/", EventPath: "/events"}

	assert.Equal(t, "/posts/a", p.ProjectArticle(models.Article{ID: "a"}).URL)
	assert.Equal(t, "/events/e", p.ProjectEvent(models.Event{ID: "e"}).URL)
}
