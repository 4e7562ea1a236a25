// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package translation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nuukmedia/polarnews/internal/news/article"
	"github.com/nuukmedia/polarnews/internal/platform/database/schema"
	"github.com/nuukmedia/polarnews/internal/platform/dberr"
)

// ConstraintCanonicalLanguage is the unique index guarding one language per
// translation group. Violations of it become [ErrDuplicateLanguage].
const ConstraintCanonicalLanguage = "uq_article_canonical_language"

// # PostgreSQL Repository

// postgresRepository implements the [Repository] interface using pgx.
//
// Every write runs in a single transaction holding a row lock on the group
// root, so concurrent attaches to the same group serialize and feeds never
// observe a half-linked group.
type postgresRepository struct {
	pool     *pgxpool.Pool
	articles article.Repository
}

// NewPostgresRepository constructs a PostgreSQL backed translation store.
//
// The article repository is used for plain reads; graph mutations use their
// own transactional SQL.
func NewPostgresRepository(pool *pgxpool.Pool, articles article.Repository) Repository {
	return &postgresRepository{pool: pool, articles: articles}
}

func (repository *postgresRepository) GetArticle(ctx context.Context, id int64) (*article.Article, error) {
	return repository.articles.GetByID(ctx, id)
}

func (repository *postgresRepository) ListGroup(ctx context.Context, rootID int64) ([]*article.Article, error) {
	return repository.articles.GetTranslations(ctx, rootID)
}

// # Graph Mutations

func (repository *postgresRepository) InsertTranslation(ctx context.Context, a *article.Article, canonicalID int64) error {
	return repository.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockAndNormalizeRoot(ctx, tx, canonicalID); err != nil {
			return err
		}

		a.CanonicalID = &canonicalID
		if err := insertTranslationRow(ctx, tx, a); err != nil {
			return classifyGroupError(err)
		}

		return nil
	})
}

func (repository *postgresRepository) LinkTranslation(ctx context.Context, articleID, canonicalID int64) error {
	return repository.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockAndNormalizeRoot(ctx, tx, canonicalID); err != nil {
			return err
		}

		query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1;`,
			schema.NewsArticle.Table,
			schema.NewsArticle.CanonicalID,
			schema.NewsArticle.ID,
		)

		tag, err := tx.Exec(ctx, query, articleID, canonicalID)
		if err != nil {
			return classifyGroupError(err)
		}
		if tag.RowsAffected() == 0 {
			return dberr.ErrNotFound
		}

		return nil
	})
}

func (repository *postgresRepository) DetachArticle(ctx context.Context, articleID int64) error {
	return repository.inTx(ctx, func(tx pgx.Tx) error {
		lockQuery := fmt.Sprintf(`
			SELECT %s, %s FROM %s WHERE %s = $1 FOR UPDATE;
		`,
			schema.NewsArticle.ID,
			schema.NewsArticle.CanonicalID,
			schema.NewsArticle.Table,
			schema.NewsArticle.ID,
		)

		var (
			id          int64
			canonicalID *int64
		)
		if err := tx.QueryRow(ctx, lockQuery, articleID).Scan(&id, &canonicalID); err != nil {
			return dberr.Wrap(err, "lock_article")
		}

		// Non-root members just drop their link.
		if canonicalID != nil && *canonicalID != id {
			return clearCanonical(ctx, tx, articleID)
		}

		// Root member: promote the oldest surviving sibling, if any.
		siblingQuery := fmt.Sprintf(`
			SELECT %s FROM %s
			WHERE %s = $1 AND %s <> $1
			ORDER BY %s ASC
			FOR UPDATE;
		`,
			schema.NewsArticle.ID,
			schema.NewsArticle.Table,
			schema.NewsArticle.CanonicalID,
			schema.NewsArticle.ID,
			schema.NewsArticle.ID,
		)

		rows, err := tx.Query(ctx, siblingQuery, articleID)
		if err != nil {
			return dberr.Wrap(err, "list_siblings")
		}
		siblings, err := pgx.CollectRows(rows, pgx.RowTo[int64])
		if err != nil {
			return dberr.Wrap(err, "collect_siblings")
		}

		if newRoot, ok := promoteRoot(siblings); ok {
			repointQuery := fmt.Sprintf(`
				UPDATE %s SET %s = $2 WHERE %s = $1 AND %s <> $1;
			`,
				schema.NewsArticle.Table,
				schema.NewsArticle.CanonicalID,
				schema.NewsArticle.CanonicalID,
				schema.NewsArticle.ID,
			)
			if _, err := tx.Exec(ctx, repointQuery, articleID, newRoot); err != nil {
				return dberr.Wrap(err, "repoint_siblings")
			}
		}

		return clearCanonical(ctx, tx, articleID)
	})
}

// promoteRoot picks the new group root among the siblings a departing root
// leaves behind: the oldest one, identified by the smallest id. Reports
// false when the root had no dependants.
func promoteRoot(siblings []int64) (int64, bool) {
	if len(siblings) == 0 {
		return 0, false
	}

	oldest := siblings[0]
	for _, id := range siblings[1:] {
		if id < oldest {
			oldest = id
		}
	}
	return oldest, true
}

// # Transaction Helpers

// inTx runs fn inside a transaction with rollback on error.
func (repository *postgresRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := repository.pool.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_tx")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return dberr.Wrap(err, "commit_tx")
	}
	return nil
}

// lockAndNormalizeRoot locks the group root row, rejects non-root targets,
// and normalizes a NULL self-link so the (canonical_id, language) uniqueness
// covers the root itself.
func lockAndNormalizeRoot(ctx context.Context, tx pgx.Tx, canonicalID int64) error {
	lockQuery := fmt.Sprintf(`
		SELECT %s, %s FROM %s WHERE %s = $1 FOR UPDATE;
	`,
		schema.NewsArticle.ID,
		schema.NewsArticle.CanonicalID,
		schema.NewsArticle.Table,
		schema.NewsArticle.ID,
	)

	var (
		id   int64
		link *int64
	)
	err := tx.QueryRow(ctx, lockQuery, canonicalID).Scan(&id, &link)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrCanonicalMissing
	}
	if err != nil {
		return dberr.Wrap(err, "lock_canonical")
	}

	if link != nil && *link != id {
		return ErrCanonicalCycle
	}

	if link == nil {
		normalizeQuery := fmt.Sprintf(`UPDATE %s SET %s = %s WHERE %s = $1;`,
			schema.NewsArticle.Table,
			schema.NewsArticle.CanonicalID,
			schema.NewsArticle.ID,
			schema.NewsArticle.ID,
		)
		if _, err := tx.Exec(ctx, normalizeQuery, canonicalID); err != nil {
			return classifyGroupError(err)
		}
	}

	return nil
}

// insertTranslationRow inserts the new translation inside the group
// transaction.
func insertTranslationRow(ctx context.Context, tx pgx.Tx, a *article.Article) error {
	var (
		layoutData []byte
		imageData  []byte
		err        error
	)
	if a.LayoutData != nil {
		if layoutData, err = json.Marshal(a.LayoutData); err != nil {
			return dberr.Wrap(err, "encode_layout_data")
		}
	}
	if a.ImageData != nil {
		if imageData, err = json.Marshal(a.ImageData); err != nil {
			return dberr.Wrap(err, "encode_image_data")
		}
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

	var layoutType, category, elementGUID *string
	if a.LayoutType != nil {
		s := string(*a.LayoutType)
		layoutType = &s
	}
	if a.Category != "" {
		category = &a.Category
	}
	if a.ElementGUID != "" {
		elementGUID = &a.ElementGUID
	}

	return tx.QueryRow(ctx, query,
		string(a.Language), a.CanonicalID, string(a.OriginalLanguage),
		string(a.Section), a.IsHome, a.IsTemp, layoutType, layoutData,
		a.DisplayOrder, a.PublishedURL, a.PublishedURLEn, a.PublishedDate,
		a.Title, a.Slug, category, elementGUID, imageData,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// clearCanonical nulls the canonical link of one article.
func clearCanonical(ctx context.Context, tx pgx.Tx, articleID int64) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NULL WHERE %s = $1;`,
		schema.NewsArticle.Table,
		schema.NewsArticle.CanonicalID,
		schema.NewsArticle.ID,
	)
	if _, err := tx.Exec(ctx, query, articleID); err != nil {
		return dberr.Wrap(err, "clear_canonical")
	}
	return nil
}

// classifyGroupError maps a unique violation on the group index to the
// domain error, leaving everything else to the generic bridge.
func classifyGroupError(err error) error {
	wrapped := dberr.Wrap(err, "write_translation")
	if dberr.ViolatedConstraint(wrapped) == ConstraintCanonicalLanguage {
		return ErrDuplicateLanguage
	}
	return wrapped
}
