package primary

import (
	"context"
	"fmt"

	"palette/internal/models"
	"palette/internal/store"
)

var _ store.CollectionStore = (*StoreImpl)(nil)

func (s *StoreImpl) ListArticles(ctx context.Context) ([]models.Article, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title, body, excerpt, tags, created_at
		FROM articles
		ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles := []models.Article{}
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.Excerpt, &a.Tags, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating article rows: %w", err)
	}
	return articles, nil
}

func (s *StoreImpl) ListResources(ctx context.Context) ([]models.Resource, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title, description, tags, url
		FROM resources
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	defer rows.Close()

	resources := []models.Resource{}
	for rows.Next() {
		var r models.Resource
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.Tags, &r.URL); err != nil {
			return nil, fmt.Errorf("failed to scan resource row: %w", err)
		}
		resources = append(resources, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating resource rows: %w", err)
	}
	return resources, nil
}

func (s *StoreImpl) ListScripts(ctx context.Context) ([]models.Script, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title, body, tags, updated_at
		FROM scripts
		ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list scripts: %w", err)
	}
	defer rows.Close()

	scripts := []models.Script{}
	for rows.Next() {
		var sc models.Script
		if err := rows.Scan(&sc.ID, &sc.Title, &sc.Body, &sc.Tags, &sc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan script row: %w", err)
		}
		scripts = append(scripts, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating script rows: %w", err)
	}
	return scripts, nil
}

func (s *StoreImpl) ListEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title, description, start_at
		FROM events
		ORDER BY start_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Start); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}
	return events, nil
}
