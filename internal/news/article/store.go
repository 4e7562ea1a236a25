// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package article

import (
	"context"
	"time"
)

// Repository defines typed access to the article graph.
//
// # Ordering Guarantees
//
// Every listing is totally deterministic: the documented sort key first,
// then id ascending as the tie-break. Two calls over the same snapshot
// return identical sequences.
type Repository interface {
	// GetByID fetches a single article, temp records included (the admin
	// editor needs to see drafts).
	GetByID(ctx context.Context, id int64) (*Article, error)

	// ListSection returns the non-temp articles of a (section, language)
	// pair sorted by display order. Home-slot records are excluded unless
	// includeHome is set. limit <= 0 means no limit.
	ListSection(ctx context.Context, section Section, lang Language, includeHome bool, limit, offset int) ([]*Article, error)

	// ListHome returns the home-page layout slots of a language sorted by
	// display order. Temp records are excluded.
	ListHome(ctx context.Context, lang Language) ([]*Article, error)

	// ListFeedArticles returns the non-temp articles of a language that
	// carry a non-empty published URL, sorted by published date descending
	// with NULL dates last.
	ListFeedArticles(ctx context.Context, lang Language) ([]*Article, error)

	// ListNewsWindow returns non-temp, non-retired articles published at or
	// after since, newest first, capped at maxCount. All languages.
	ListNewsWindow(ctx context.Context, since time.Time, maxCount int) ([]*Article, error)

	// GetDetail fetches the body of an article by its composite key.
	GetDetail(ctx context.Context, publishedURL string, lang Language) (*Detail, error)

	// GetTranslations returns every article of a translation group (the
	// canonical itself included), oldest first.
	GetTranslations(ctx context.Context, canonicalID int64) ([]*Article, error)

	// Create inserts a new article and assigns its id.
	Create(ctx context.Context, a *Article) error

	// Update persists the mutable fields of an article: layout, publication
	// flags, published date, image data, and descriptive attributes.
	Update(ctx context.Context, a *Article) error

	// Delete removes an article. Sibling canonical links are set to NULL by
	// the schema; re-canonicalization is the translation graph's job.
	Delete(ctx context.Context, id int64) error

	// UpsertDetail inserts or replaces an article body by its composite key.
	UpsertDetail(ctx context.Context, d *Detail) error
}
