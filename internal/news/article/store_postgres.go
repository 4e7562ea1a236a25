// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

/*
PostgreSQL implementation of the article store.

The repository leans on the composite indexes declared in the migrations:
(section, language, displayorder) for section listing, (ishome, displayorder)
for home rendering, (istemp, language) for exclusion filters, and the unique
(canonicalid, language) pair guarding translation groups.

Structured columns (layoutdata, imagedata, contentblocks) are stored as jsonb
and decoded leniently on read: a malformed bundle degrades to absent instead
of failing the query.
*/
package article

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nuukmedia/polarnews/internal/platform/database/schema"
	"github.com/nuukmedia/polarnews/internal/platform/dberr"
)

// # PostgreSQL Repository

// postgresRepository implements the [Repository] interface using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed article store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// articleColumns renders the full column list for SELECT statements.
func articleColumns() string {
	cols := schema.NewsArticle.Columns()
	list := ""
	for i, c := range cols {
		if i > 0 {
			list += ", "
		}
		list += c
	}
	return list
}

// scanArticle hydrates one article row. The column order must match
// [articleColumns].
func scanArticle(row pgx.Row) (*Article, error) {
	var (
		a           Article
		language    string
		originalLng string
		section     string
		layoutType  *string
		layoutData  []byte
		category    *string
		elementGUID *string
		imageData   []byte
	)

	err := row.Scan(
		&a.ID, &language, &a.CanonicalID, &originalLng, &section,
		&a.IsHome, &a.IsTemp, &layoutType, &layoutData, &a.DisplayOrder,
		&a.PublishedURL, &a.PublishedURLEn, &a.PublishedDate, &a.Title, &a.Slug,
		&category, &elementGUID, &imageData, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Language = Language(language)
	a.OriginalLanguage = Language(originalLng)
	a.Section = Section(section)
	if layoutType != nil {
		t := LayoutType(*layoutType)
		a.LayoutType = &t
	}
	if category != nil {
		a.Category = *category
	}
	if elementGUID != nil {
		a.ElementGUID = *elementGUID
	}

	// Lenient structured-column decoding — bad shapes degrade to absent.
	if len(layoutData) > 0 {
		_ = json.Unmarshal(layoutData, &a.LayoutData)
	}
	a.ImageData = DecodeImageData(imageData)

	return &a, nil
}

// collectArticles drains a row set into hydrated entities.
func collectArticles(rows pgx.Rows) ([]*Article, error) {
	defer rows.Close()

	var articles []*Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_article")
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "iterate_articles")
	}

	return articles, nil
}

// # Read Surface

func (repository *postgresRepository) GetByID(ctx context.Context, id int64) (*Article, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1;
	`,
		articleColumns(),
		schema.NewsArticle.Table,
		schema.NewsArticle.ID,
	)

	a, err := scanArticle(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_article")
	}
	return a, nil
}

func (repository *postgresRepository) ListSection(ctx context.Context, section Section, lang Language, includeHome bool, limit, offset int) ([]*Article, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = $2 AND %s = FALSE
	`,
		articleColumns(),
		schema.NewsArticle.Table,
		schema.NewsArticle.Section,
		schema.NewsArticle.Language,
		schema.NewsArticle.IsTemp,
	)

	args := []any{string(section), string(lang)}

	if !includeHome {
		query += fmt.Sprintf(" AND %s = FALSE", schema.NewsArticle.IsHome)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC, %s ASC",
		schema.NewsArticle.DisplayOrder, schema.NewsArticle.ID)

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}

	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_section")
	}
	return collectArticles(rows)
}

func (repository *postgresRepository) ListHome(ctx context.Context, lang Language) ([]*Article, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = TRUE AND %s = $1 AND %s = FALSE
		ORDER BY %s ASC, %s ASC;
	`,
		articleColumns(),
		schema.NewsArticle.Table,
		schema.NewsArticle.IsHome,
		schema.NewsArticle.Language,
		schema.NewsArticle.IsTemp,
		schema.NewsArticle.DisplayOrder,
		schema.NewsArticle.ID,
	)

	rows, err := repository.pool.Query(ctx, query, string(lang))
	if err != nil {
		return nil, dberr.Wrap(err, "list_home")
	}
	return collectArticles(rows)
}

func (repository *postgresRepository) ListFeedArticles(ctx context.Context, lang Language) ([]*Article, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s = FALSE
		  AND %s IS NOT NULL AND %s <> ''
		ORDER BY %s DESC NULLS LAST, %s ASC;
	`,
		articleColumns(),
		schema.NewsArticle.Table,
		schema.NewsArticle.Language,
		schema.NewsArticle.IsTemp,
		schema.NewsArticle.PublishedURL,
		schema.NewsArticle.PublishedURL,
		schema.NewsArticle.PublishedDate,
		schema.NewsArticle.ID,
	)

	rows, err := repository.pool.Query(ctx, query, string(lang))
	if err != nil {
		return nil, dberr.Wrap(err, "list_feed_articles")
	}
	return collectArticles(rows)
}

func (repository *postgresRepository) ListNewsWindow(ctx context.Context, since time.Time, maxCount int) ([]*Article, error) {
	// Retired records (empty URL) and slot containers never reach the news
	// sitemap; rows with no URL at all do — their loc is synthesized.
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = FALSE
		  AND %s IS NOT NULL AND %s >= $1
		  AND (%s IS NULL OR %s <> '')
		  AND (%s IS NULL OR %s NOT IN ('%s', '%s'))
		ORDER BY %s DESC, %s ASC
		LIMIT $2;
	`,
		articleColumns(),
		schema.NewsArticle.Table,
		schema.NewsArticle.IsTemp,
		schema.NewsArticle.PublishedDate,
		schema.NewsArticle.PublishedDate,
		schema.NewsArticle.PublishedURL,
		schema.NewsArticle.PublishedURL,
		schema.NewsArticle.LayoutType,
		schema.NewsArticle.LayoutType,
		LayoutSlider,
		LayoutJobSlider,
		schema.NewsArticle.PublishedDate,
		schema.NewsArticle.ID,
	)

	rows, err := repository.pool.Query(ctx, query, since, maxCount)
	if err != nil {
		return nil, dberr.Wrap(err, "list_news_window")
	}
	return collectArticles(rows)
}

func (repository *postgresRepository) GetTranslations(ctx context.Context, canonicalID int64) ([]*Article, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 OR %s = $1
		ORDER BY %s ASC;
	`,
		articleColumns(),
		schema.NewsArticle.Table,
		schema.NewsArticle.CanonicalID,
		schema.NewsArticle.ID,
		schema.NewsArticle.ID,
	)

	rows, err := repository.pool.Query(ctx, query, canonicalID)
	if err != nil {
		return nil, dberr.Wrap(err, "get_translations")
	}
	return collectArticles(rows)
}

// # Detail Surface

func (repository *postgresRepository) GetDetail(ctx context.Context, publishedURL string, lang Language) (*Detail, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2;
	`,
		schema.NewsArticleDetail.ID,
		schema.NewsArticleDetail.PublishedURL,
		schema.NewsArticleDetail.Language,
		schema.NewsArticleDetail.ContentBlocks,
		schema.NewsArticleDetail.Author,
		schema.NewsArticleDetail.CreatedAt,
		schema.NewsArticleDetail.UpdatedAt,
		schema.NewsArticleDetail.Table,
		schema.NewsArticleDetail.PublishedURL,
		schema.NewsArticleDetail.Language,
	)

	var (
		d        Detail
		language string
		blocks   []byte
		author   *string
	)

	err := repository.pool.QueryRow(ctx, query, publishedURL, string(lang)).Scan(
		&d.ID, &d.PublishedURL, &language, &blocks, &author, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_detail")
	}

	d.Language = Language(language)
	if author != nil {
		d.Author = *author
	}
	if len(blocks) > 0 {
		// Malformed blocks degrade to an empty body.
		_ = json.Unmarshal(blocks, &d.ContentBlocks)
	}

	return &d, nil
}

func (repository *postgresRepository) UpsertDetail(ctx context.Context, d *Detail) error {
	blocks, err := json.Marshal(d.ContentBlocks)
	if err != nil {
		return dberr.Wrap(err, "encode_content_blocks")
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (%s, %s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = NOW()
		RETURNING %s, %s, %s;
	`,
		schema.NewsArticleDetail.Table,
		schema.NewsArticleDetail.PublishedURL,
		schema.NewsArticleDetail.Language,
		schema.NewsArticleDetail.ContentBlocks,
		schema.NewsArticleDetail.Author,
		schema.NewsArticleDetail.PublishedURL,
		schema.NewsArticleDetail.Language,
		schema.NewsArticleDetail.ContentBlocks,
		schema.NewsArticleDetail.ContentBlocks,
		schema.NewsArticleDetail.Author,
		schema.NewsArticleDetail.Author,
		schema.NewsArticleDetail.UpdatedAt,
		schema.NewsArticleDetail.ID,
		schema.NewsArticleDetail.CreatedAt,
		schema.NewsArticleDetail.UpdatedAt,
	)

	err = repository.pool.QueryRow(ctx, query,
		d.PublishedURL, string(d.Language), blocks, nullableString(d.Author),
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)

	return dberr.Wrap(err, "upsert_detail")
}

// # Write Surface

func (repository *postgresRepository) Create(ctx context.Context, a *Article) error {
	layoutData, imageData, err := encodeStructured(a)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (
			%s, %s, %s, %s, %s, %s, %s, %s, %s,
			%s, %s, %s, %s, %s, %s, %s, %s
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING %s, %s, %s;
	`,
		schema.NewsArticle.Table,
		schema.NewsArticle.Language,
		schema.NewsArticle.CanonicalID,
		schema.NewsArticle.OriginalLanguage,
		schema.NewsArticle.Section,
		schema.NewsArticle.IsHome,
		schema.NewsArticle.IsTemp,
		schema.NewsArticle.LayoutType,
		schema.NewsArticle.LayoutData,
		schema.NewsArticle.DisplayOrder,
		schema.NewsArticle.PublishedURL,
		schema.NewsArticle.PublishedURLEn,
		schema.NewsArticle.PublishedDate,
		schema.NewsArticle.Title,
		schema.NewsArticle.Slug,
		schema.NewsArticle.Category,
		schema.NewsArticle.ElementGUID,
		schema.NewsArticle.ImageData,
		schema.NewsArticle.ID,
		schema.NewsArticle.CreatedAt,
		schema.NewsArticle.UpdatedAt,
	)

	err = repository.pool.QueryRow(ctx, query,
		string(a.Language), a.CanonicalID, string(a.OriginalLanguage),
		string(a.Section), a.IsHome, a.IsTemp, layoutTypeParam(a.LayoutType),
		layoutData, a.DisplayOrder, a.PublishedURL, a.PublishedURLEn,
		a.PublishedDate, a.Title, a.Slug, nullableString(a.Category),
		nullableString(a.ElementGUID), imageData,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	return dberr.Wrap(err, "create_article")
}

func (repository *postgresRepository) Update(ctx context.Context, a *Article) error {
	layoutData, imageData, err := encodeStructured(a)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s SET
			%s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7,
			%s = $8, %s = $9, %s = $10, %s = $11, %s = $12, %s = $13,
			%s = $14, %s = NOW()
		WHERE %s = $1;
	`,
		schema.NewsArticle.Table,
		schema.NewsArticle.Section,
		schema.NewsArticle.IsHome,
		schema.NewsArticle.IsTemp,
		schema.NewsArticle.LayoutType,
		schema.NewsArticle.LayoutData,
		schema.NewsArticle.DisplayOrder,
		schema.NewsArticle.PublishedURL,
		schema.NewsArticle.PublishedURLEn,
		schema.NewsArticle.PublishedDate,
		schema.NewsArticle.Title,
		schema.NewsArticle.Slug,
		schema.NewsArticle.Category,
		schema.NewsArticle.ImageData,
		schema.NewsArticle.UpdatedAt,
		schema.NewsArticle.ID,
	)

	tag, err := repository.pool.Exec(ctx, query,
		a.ID, string(a.Section), a.IsHome, a.IsTemp,
		layoutTypeParam(a.LayoutType), layoutData, a.DisplayOrder,
		a.PublishedURL, a.PublishedURLEn, a.PublishedDate, a.Title, a.Slug,
		nullableString(a.Category), imageData,
	)
	if err != nil {
		return dberr.Wrap(err, "update_article")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *postgresRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`,
		schema.NewsArticle.Table, schema.NewsArticle.ID)

	tag, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_article")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

// # Parameter Helpers

// encodeStructured marshals the jsonb columns of an article.
func encodeStructured(a *Article) (layoutData, imageData []byte, err error) {
	if a.LayoutData != nil {
		if layoutData, err = json.Marshal(a.LayoutData); err != nil {
			return nil, nil, dberr.Wrap(err, "encode_layout_data")
		}
	}
	if a.ImageData != nil {
		if imageData, err = json.Marshal(a.ImageData); err != nil {
			return nil, nil, dberr.Wrap(err, "encode_image_data")
		}
	}
	return layoutData, imageData, nil
}

// layoutTypeParam converts an optional layout type into a bind parameter.
func layoutTypeParam(t *LayoutType) *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}

// nullableString maps "" to NULL for optional text columns.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
