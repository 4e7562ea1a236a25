// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

/*
Package translation maintains the translation graph: the in-memory view that
ties an article to its siblings in the other publication languages.

# Graph Shape

Every group has exactly one root (the canonical article, whose canonical id
is itself or null). Members point at the root, never at each other, so cycles
are impossible by construction; writes that would break the shape are
rejected before they reach the store.
*/
package translation

import (
	"context"
	"log/slog"

	"github.com/nuukmedia/polarnews/internal/news/article"
	"github.com/nuukmedia/polarnews/internal/platform/apperr"
)

// Errors surfaced by graph writes.
var (
	// ErrCanonicalMissing is returned when the referenced canonical article
	// does not exist.
	ErrCanonicalMissing = apperr.Unprocessable("Canonical article does not exist")

	// ErrDuplicateLanguage is returned when the group already holds an
	// article in the new translation's language.
	ErrDuplicateLanguage = apperr.Conflict("Translation group already contains this language")

	// ErrCanonicalCycle is returned when the referenced article is itself a
	// non-root member of another group.
	ErrCanonicalCycle = apperr.Conflict("Canonical reference must point at a group root")
)

// Alternate is one hreflang entry of an article's translation set.
type Alternate struct {
	Language article.Language `json:"language"`
	URL      string           `json:"url"`
}

// # Service Layer

// Service exposes the translation graph operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// # Graph Reads

/*
Resolve returns the full translation set of an article keyed by language.

The provided article is always present in the mapping; languages without a
translation are absent keys.
*/
func (service *Service) Resolve(ctx context.Context, a *article.Article) (map[article.Language]*article.Article, error) {
	group, err := service.repo.ListGroup(ctx, a.GroupID())
	if err != nil {
		return nil, err
	}

	resolved := make(map[article.Language]*article.Article, len(group))
	for _, member := range group {
		resolved[member.Language] = member
	}

	// Isolated records resolve to a group of one.
	if _, ok := resolved[a.Language]; !ok {
		resolved[a.Language] = a
	}

	return resolved, nil
}

/*
Alternates returns one hreflang entry per translation of the article.

The English entry uses the sibling's English-locale URL when it carries one;
every entry otherwise uses the canonical publisher URL. Members without any
URL (drafts, slot containers) are skipped.
*/
func (service *Service) Alternates(ctx context.Context, a *article.Article) ([]Alternate, error) {
	resolved, err := service.Resolve(ctx, a)
	if err != nil {
		return nil, err
	}

	alternates := make([]Alternate, 0, len(resolved))
	for _, lang := range article.Languages() {
		member, ok := resolved[lang]
		if !ok {
			continue
		}

		url := member.URLForLanguage(member.Language)
		if url == "" {
			continue
		}

		alternates = append(alternates, Alternate{Language: lang, URL: url})
	}

	return alternates, nil
}

// # Graph Writes

/*
Attach inserts a new translation into the group rooted at canonicalID.

Description: Fails with [ErrCanonicalMissing] when no such article exists,
with [ErrCanonicalCycle] when the target is not a group root, and with
[ErrDuplicateLanguage] when the group already contains the new article's
language. On success the new article's id is assigned.

Parameters:
  - ctx: context.Context
  - a: *article.Article (the unsaved translation)
  - canonicalID: int64 (the group root)

Returns:
  - error: Graph invariant or persistence errors
*/
func (service *Service) Attach(ctx context.Context, a *article.Article, canonicalID int64) error {
	if err := service.repo.InsertTranslation(ctx, a, canonicalID); err != nil {
		return err
	}

	service.logger.Info("translation_attached",
		slog.Int64("article_id", a.ID),
		slog.Int64("canonical_id", canonicalID),
		slog.String("language", string(a.Language)),
	)

	return nil
}

// Link attaches an already-stored article to the group rooted at
// canonicalID, under the same invariants as [Service.Attach].
func (service *Service) Link(ctx context.Context, articleID, canonicalID int64) error {
	if err := service.repo.LinkTranslation(ctx, articleID, canonicalID); err != nil {
		return err
	}

	service.logger.Info("translation_linked",
		slog.Int64("article_id", articleID),
		slog.Int64("canonical_id", canonicalID),
	)

	return nil
}

/*
Detach removes an article from its translation group.

Description: The article's canonical link is nulled. When the article was
the group root and siblings survive, the oldest sibling (smallest id) is
promoted to canonical and every remaining member is re-pointed at it. This
is the only operation that moves a group root.

Parameters:
  - ctx: context.Context
  - articleID: int64

Returns:
  - error: NotFound or persistence errors
*/
func (service *Service) Detach(ctx context.Context, articleID int64) error {
	if err := service.repo.DetachArticle(ctx, articleID); err != nil {
		return err
	}

	service.logger.Info("translation_detached", slog.Int64("article_id", articleID))
	return nil
}
