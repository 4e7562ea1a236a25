// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package article

import (
	"context"
	"log/slog"

	"github.com/nuukmedia/polarnews/internal/platform/validate"
	"github.com/nuukmedia/polarnews/pkg/slug"
)

const (
	FieldLanguage     = "language"
	FieldSection      = "section"
	FieldLayoutType   = "layout_type"
	FieldTitle        = "title"
	FieldPublishedURL = "published_url"
)

// # Service Layer

// Service orchestrates the business logic for article management.
//
// Writers are the admin editor and the crawler; the feed emitter and the
// placement service only read. Every write either preserves the translation
// group invariants or surfaces the violated constraint to the caller.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// # Read Operations

// GetArticle retrieves a single article by id, drafts included.
func (service *Service) GetArticle(ctx context.Context, id int64) (*Article, error) {
	return service.repo.GetByID(ctx, id)
}

// ListSection retrieves the published articles of a (section, language) pair
// in display order.
func (service *Service) ListSection(ctx context.Context, section Section, lang Language, limit, offset int) ([]*Article, error) {
	return service.repo.ListSection(ctx, section, lang, false, limit, offset)
}

// GetDetail retrieves an article body by its composite key.
func (service *Service) GetDetail(ctx context.Context, publishedURL string, lang Language) (*Detail, error) {
	return service.repo.GetDetail(ctx, publishedURL, lang)
}

// # Write Operations

/*
CreateArticle inserts a new article record.

Description: Validates the language/section/layout taxonomy, enforces the
slot-container rule (sliders carry no publisher URL), and derives a slug from
the title when none was supplied.

Parameters:
  - ctx: context.Context
  - a: *Article (the new record; ID is assigned on success)

Returns:
  - error: Validation, constraint, or persistence errors
*/
func (service *Service) CreateArticle(ctx context.Context, a *Article) error {
	if err := service.validateArticle(a); err != nil {
		return err
	}

	if a.Slug == "" && a.Title != "" {
		a.Slug = slug.From(a.Title)
	}
	if a.OriginalLanguage == "" {
		a.OriginalLanguage = a.Language
	}

	if err := service.repo.Create(ctx, a); err != nil {
		return err
	}

	service.logger.Info("article_created",
		slog.Int64("article_id", a.ID),
		slog.String("language", string(a.Language)),
		slog.String("section", string(a.Section)),
		slog.Bool("is_temp", a.IsTemp),
	)

	return nil
}

/*
UpdateArticle persists the mutable fields of an existing article.

Description: Only layout fields, publication flags, the published date, the
image bundle, and descriptive attributes may change. Identity and translation
linkage are managed by the translation graph.

Parameters:
  - ctx: context.Context
  - a: *Article (must carry a valid ID)

Returns:
  - error: NotFound, validation, or persistence errors
*/
func (service *Service) UpdateArticle(ctx context.Context, a *Article) error {
	if err := service.validateArticle(a); err != nil {
		return err
	}

	if err := service.repo.Update(ctx, a); err != nil {
		return err
	}

	service.logger.Info("article_updated",
		slog.Int64("article_id", a.ID),
		slog.String("section", string(a.Section)),
		slog.Bool("is_temp", a.IsTemp),
	)

	return nil
}

// DeleteArticle removes an article. Deletion is rare and manual; sibling
// canonical ids fall back to NULL via the schema's set-null rule.
func (service *Service) DeleteArticle(ctx context.Context, id int64) error {
	if err := service.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.Info("article_deleted", slog.Int64("article_id", id))
	return nil
}

// SaveDetail inserts or replaces an article body.
func (service *Service) SaveDetail(ctx context.Context, d *Detail) error {
	validator := &validate.Validator{}
	validator.Required(FieldPublishedURL, d.PublishedURL)
	validator.OneOf(FieldLanguage, string(d.Language), languageValues()...)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpsertDetail(ctx, d); err != nil {
		return err
	}

	service.logger.Info("article_detail_saved",
		slog.String("published_url", d.PublishedURL),
		slog.String("language", string(d.Language)),
		slog.Int("blocks", len(d.ContentBlocks)),
	)

	return nil
}

// # Validation

func (service *Service) validateArticle(a *Article) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, a.Title)
	validator.OneOf(FieldLanguage, string(a.Language), languageValues()...)
	validator.OneOf(FieldSection, string(a.Section), sectionValues()...)

	if a.LayoutType != nil {
		validator.OneOf(FieldLayoutType, string(*a.LayoutType), layoutTypeValues()...)

		// Slot containers have no publisher URL of their own.
		if a.LayoutType.IsContainer() {
			hasURL := a.PublishedURL != nil && *a.PublishedURL != ""
			validator.Custom(FieldPublishedURL, hasURL, "Slot containers must not carry a published URL")
		}
	}

	return validator.Err()
}

func languageValues() []string {
	langs := Languages()
	values := make([]string, len(langs))
	for i, l := range langs {
		values[i] = string(l)
	}
	return values
}

func sectionValues() []string {
	sections := Sections()
	values := make([]string, len(sections))
	for i, s := range sections {
		values[i] = string(s)
	}
	return values
}

func layoutTypeValues() []string {
	types := LayoutTypes()
	values := make([]string, len(types))
	for i, t := range types {
		values[i] = string(t)
	}
	return values
}
