// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package feed_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuukmedia/polarnews/internal/news/article"
	"github.com/nuukmedia/polarnews/internal/news/feed"
	"github.com/nuukmedia/polarnews/pkg/pointer"
)

// stubRepository returns canned listings for the emitter.
type stubRepository struct {
	feedArticles []*article.Article
	newsArticles []*article.Article
	gotSince     time.Time
	gotMaxCount  int
}

func (stub *stubRepository) ListFeedArticles(_ context.Context, _ article.Language) ([]*article.Article, error) {
	return stub.feedArticles, nil
}

func (stub *stubRepository) ListNewsWindow(_ context.Context, since time.Time, maxCount int) ([]*article.Article, error) {
	stub.gotSince = since
	stub.gotMaxCount = maxCount
	return stub.newsArticles, nil
}

func newTestEmitter(repo feed.Repository) *feed.Emitter {
	return feed.NewEmitter(repo, feed.Config{
		BaseDomain:        "www.pub.example",
		PublicHost:        "pub.example",
		PublicationName:   "Polarnews",
		UpstreamImageHost: "cdn.upstream",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestEmitter_SitemapLang(t *testing.T) {
	published := time.Date(2026, 1, 22, 13, 45, 0, 0, time.UTC)

	repo := &stubRepository{
		feedArticles: []*article.Article{
			{
				ID:            101,
				Language:      article.LanguageDanish,
				Section:       "samfund",
				PublishedURL:  pointer.To("http://origin.example/samfund/nyt-tilskud/101"),
				PublishedDate: &published,
				ImageData: &article.ImageData{
					DesktopWebp: "http://pub.example/static/uploads/images/101.webp",
				},
			},
			{
				// No URL in this language: skipped.
				ID:       102,
				Language: article.LanguageDanish,
				Section:  "sport",
			},
		},
	}

	body, err := newTestEmitter(repo).SitemapLang(context.Background(), article.LanguageDanish)
	require.NoError(t, err)

	xml := string(body)
	assert.True(t, strings.HasPrefix(xml, `<?xml version="1.0" encoding="utf-8"?>`))
	assert.Contains(t, xml, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
	assert.Contains(t, xml, `xmlns:image="http://www.google.com/schemas/sitemap-image/1.1"`)

	assert.Contains(t, xml, "<loc>https://www.pub.example/samfund/nyt-tilskud/101</loc>")
	assert.Contains(t, xml, "<lastmod>2026-01-22T00:00+01:00</lastmod>")
	assert.Contains(t, xml, "<image:loc>https://pub.example/static/uploads/images/101.webp</image:loc>")

	// The URL-less article contributes no entry.
	assert.Equal(t, 1, strings.Count(xml, "<url>"))
}

func TestEmitter_SitemapLang_Empty(t *testing.T) {
	body, err := newTestEmitter(&stubRepository{}).SitemapLang(context.Background(), article.LanguageGreenlandic)
	require.NoError(t, err)

	xml := string(body)
	assert.Contains(t, xml, "<urlset")
	assert.NotContains(t, xml, "<url>")
}

func TestEmitter_SitemapNews(t *testing.T) {
	now := time.Date(2026, 1, 23, 9, 0, 0, 0, time.UTC)
	published := time.Date(2026, 1, 22, 13, 45, 0, 0, time.UTC)

	repo := &stubRepository{
		newsArticles: []*article.Article{
			{
				ID:            201,
				Language:      article.LanguageDanish,
				Section:       "samfund",
				Category:      "Politik",
				Title:         "Nyt tilskud til fiskeriet",
				PublishedURL:  pointer.To("http://origin.example/samfund/nyt-tilskud/201"),
				PublishedDate: &published,
			},
			{
				// Never published to a URL: loc is synthesized.
				ID:            202,
				Section:       "erhverv",
				Title:         "Royal Greenland udvider",
				Slug:          "royal-greenland-udvider",
				PublishedDate: &published,
			},
		},
	}

	body, err := newTestEmitter(repo).SitemapNews(context.Background(), now)
	require.NoError(t, err)

	xml := string(body)
	assert.Contains(t, xml, `xmlns:news="http://www.google.com/schemas/sitemap-news/0.9"`)

	// Published URLs land on the fixed public host, not the site domain.
	assert.Contains(t, xml, "<loc>https://pub.example/samfund/nyt-tilskud/201</loc>")
	assert.Contains(t, xml, "<news:publication_date>2026-01-22T13:45:00+00:00</news:publication_date>")
	assert.Contains(t, xml, "<news:title>Nyt tilskud til fiskeriet</news:title>")
	assert.Contains(t, xml, "<news:keywords>samfund, Politik</news:keywords>")
	assert.Contains(t, xml, "<news:geo_locations>Greenland</news:geo_locations>")
	assert.Contains(t, xml, "<news:name>Polarnews</news:name>")
	assert.Contains(t, xml, "<news:language>da</news:language>")

	// Synthesized loc for the never-published article, with its blank
	// language falling back to English.
	assert.Contains(t, xml, "<loc>https://www.pub.example/erhverv/royal-greenland-udvider/202</loc>")
	assert.Contains(t, xml, "<news:language>en</news:language>")

	// The recency window and entry cap reach the repository.
	assert.Equal(t, now.Add(-48*time.Hour), repo.gotSince)
	assert.Equal(t, 1000, repo.gotMaxCount)
}

func TestEmitter_SitemapNews_SlugFromTitle(t *testing.T) {
	published := time.Date(2026, 1, 22, 8, 0, 0, 0, time.UTC)

	repo := &stubRepository{
		newsArticles: []*article.Article{
			{
				ID:            301,
				Section:       "kultur",
				Title:         "Festival i Nuuk åbner",
				PublishedDate: &published,
			},
		},
	}

	body, err := newTestEmitter(repo).SitemapNews(context.Background(), published)
	require.NoError(t, err)

	assert.Contains(t, string(body), "<loc>https://www.pub.example/kultur/festival-i-nuuk-abner/301</loc>")
}
