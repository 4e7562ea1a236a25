// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

/*
Package feed emits the public XML feeds: one sitemap per publication
language and a Google News sitemap covering the most recent articles.

Feed documents are rendered from the article store on demand and cached
in Redis. Article writes invalidate the cache, so a feed is at most one
request stale after an editorial change.
*/
package feed

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/nuukmedia/polarnews/internal/news/article"
	"github.com/nuukmedia/polarnews/internal/platform/constants"
	"github.com/nuukmedia/polarnews/pkg/slug"
)

// # Repository

// Repository exposes the article listings the sitemaps are built from.
type Repository interface {
	// ListFeedArticles returns the feed-visible articles for a language,
	// newest first.
	ListFeedArticles(ctx context.Context, language article.Language) ([]*article.Article, error)

	// ListNewsWindow returns articles published since the given time,
	// capped at maxCount, newest first.
	ListNewsWindow(ctx context.Context, since time.Time, maxCount int) ([]*article.Article, error)
}

// # Emitter

// Config carries the publication identity the emitted documents advertise.
type Config struct {
	// BaseDomain is the host every emitted loc is rewritten onto.
	BaseDomain string

	// PublicHost is the reader-facing domain used to recognize our own
	// image URLs.
	PublicHost string

	// PublicationName is the <news:name> value of the news sitemap.
	PublicationName string

	// UpstreamImageHost is the CDN host image URLs are synthesized
	// against.
	UpstreamImageHost string
}

/*
Emitter renders the sitemap documents served at the site root.

Three language sitemaps (Danish, Greenlandic, English) list every
feed-visible article with its last-modified date and lead image, and one
Google News sitemap lists the articles published inside the recency
window. All output locs live on the configured base domain regardless of
the origin recorded on the stored URLs.
*/
type Emitter struct {
	repo   Repository
	images *ImageSelector
	config Config
	logger *slog.Logger
}

func NewEmitter(repo Repository, config Config, logger *slog.Logger) *Emitter {
	return &Emitter{
		repo:   repo,
		images: NewImageSelector(config.PublicHost, config.UpstreamImageHost),
		config: config,
		logger: logger,
	}
}

/*
SitemapLang renders the sitemap document for one site language.

Articles with no URL in that language are skipped. A language with no
visible articles still yields a well-formed empty urlset.

Parameters:
  - ctx: request-scoped context.
  - language: site language the sitemap covers.

Returns:
  - []byte: the rendered XML document.
  - error: storage or serialization failure.
*/
func (emitter *Emitter) SitemapLang(ctx context.Context, language article.Language) ([]byte, error) {
	articles, err := emitter.repo.ListFeedArticles(ctx, language)
	if err != nil {
		return nil, err
	}

	document := urlSet{
		Xmlns:    sitemapNamespace,
		XmlnsImg: imageNamespace,
	}

	for _, current := range articles {
		locSource := current.URLForLanguage(language)
		if locSource == "" {
			continue
		}

		entry := urlEntry{Loc: Rewrite(locSource, emitter.config.BaseDomain)}

		if current.PublishedDate != nil {
			entry.LastMod = FormatLastMod(*current.PublishedDate)
		}

		if imageLoc := emitter.images.Select(current.ImageData); imageLoc != "" {
			entry.Image = &imageEntry{Loc: imageLoc}
		}

		document.URLs = append(document.URLs, entry)
	}

	emitter.logger.Info("sitemap_emitted",
		"language", string(language),
		"entries", len(document.URLs),
	)

	return render(document)
}

/*
SitemapNews renders the Google News sitemap.

Only articles published inside the recency window are listed, newest
first, capped at the Google News entry limit. Articles that were never
published to a URL get a loc synthesized from section, slug, and ID so
freshly ingested items are still announced.

Parameters:
  - ctx: request-scoped context.
  - now: reference time the recency window is anchored to.

Returns:
  - []byte: the rendered XML document.
  - error: storage or serialization failure.
*/
func (emitter *Emitter) SitemapNews(ctx context.Context, now time.Time) ([]byte, error) {
	since := now.Add(-constants.NewsWindow)

	articles, err := emitter.repo.ListNewsWindow(ctx, since, constants.NewsMaxEntries)
	if err != nil {
		return nil, err
	}

	document := newsURLSet{
		Xmlns:     sitemapNamespace,
		XmlnsNews: newsNamespace,
	}

	for _, current := range articles {
		if current.PublishedDate == nil {
			continue
		}

		document.URLs = append(document.URLs, newsURLEntry{
			Loc: emitter.newsLoc(current),
			News: newsEntry{
				Publication: newsPublication{
					Name:     emitter.config.PublicationName,
					Language: string(current.Language.OrEnglish()),
				},
				PublicationDate: FormatNewsDate(*current.PublishedDate),
				Title:           current.Title,
				Keywords:        newsKeywords(current),
				GeoLocations:    "Greenland",
			},
		})
	}

	emitter.logger.Info("news_sitemap_emitted", "entries", len(document.URLs))

	return render(document)
}

// newsLoc resolves the loc for a news entry, synthesizing a canonical site
// URL when the article was never published to one. Published URLs land on
// the public host; only synthesized locs use the bare site domain.
func (emitter *Emitter) newsLoc(current *article.Article) string {
	if current.PublishedURL != nil && *current.PublishedURL != "" {
		return Rewrite(*current.PublishedURL, emitter.config.PublicHost)
	}

	pathSlug := current.Slug
	if pathSlug == "" {
		pathSlug = slug.From(current.Title)
	}

	return "https://" + emitter.config.BaseDomain +
		"/" + string(current.Section) +
		"/" + pathSlug +
		"/" + strconv.FormatInt(current.ID, 10)
}

// newsKeywords joins section and category into the news:keywords value.
func newsKeywords(current *article.Article) string {
	keywords := string(current.Section)

	if current.Category != "" {
		if keywords != "" {
			keywords += ", "
		}
		keywords += current.Category
	}

	return keywords
}
