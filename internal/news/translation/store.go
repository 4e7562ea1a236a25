// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package translation

import (
	"context"

	"github.com/nuukmedia/polarnews/internal/news/article"
)

// Repository defines the data access contract for translation groups.
//
// Write operations run inside a single transaction so feeds never observe a
// half-linked group.
type Repository interface {
	// GetArticle fetches one article by id.
	GetArticle(ctx context.Context, id int64) (*article.Article, error)

	// ListGroup returns every member of the translation group rooted at
	// rootID (the root included), ordered by id ascending.
	ListGroup(ctx context.Context, rootID int64) ([]*article.Article, error)

	// InsertTranslation inserts a new translation linked to canonicalID.
	// The canonical row is locked and normalized to self-canonical first, so
	// the (canonical_id, language) uniqueness covers the whole group.
	InsertTranslation(ctx context.Context, a *article.Article, canonicalID int64) error

	// LinkTranslation links an already-stored article into the group of
	// canonicalID under the same invariants as InsertTranslation.
	LinkTranslation(ctx context.Context, articleID, canonicalID int64) error

	// DetachArticle nulls the canonical link of the given article. When the
	// article is the group root and siblings survive, the oldest sibling is
	// promoted and every remaining member is re-pointed at it.
	DetachArticle(ctx context.Context, articleID int64) error
}
