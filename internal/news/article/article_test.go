// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package article_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuukmedia/polarnews/internal/news/article"
	"github.com/nuukmedia/polarnews/pkg/pointer"
)

func TestParsePublishedDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *time.Time
	}{
		{
			"rfc3339",
			"2026-01-22T13:45:00Z",
			pointer.To(time.Date(2026, 1, 22, 13, 45, 0, 0, time.UTC)),
		},
		{
			"datetime_without_zone",
			"2026-01-22T13:45:00",
			pointer.To(time.Date(2026, 1, 22, 13, 45, 0, 0, time.UTC)),
		},
		{
			"space_separated_datetime",
			"2026-01-22 13:45:00",
			pointer.To(time.Date(2026, 1, 22, 13, 45, 0, 0, time.UTC)),
		},
		{
			"bare_date",
			"2026-01-22",
			pointer.To(time.Date(2026, 1, 22, 0, 0, 0, 0, time.UTC)),
		},
		{
			"date_prefix_with_garbage_tail",
			"2026-01-22xyz rest of junk",
			pointer.To(time.Date(2026, 1, 22, 0, 0, 0, 0, time.UTC)),
		},
		{
			"pure_garbage",
			"not a date at all",
			nil,
		},
		{
			"empty",
			"",
			nil,
		},
		{
			"whitespace",
			"   ",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := article.ParsePublishedDate(tt.raw)

			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got))
		})
	}
}

func TestDecodeImageData(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *article.ImageData
	}{
		{
			"full_bundle",
			`{"desktop_webp":"https://a/1.webp","fallback":"https://a/1.jpg"}`,
			&article.ImageData{DesktopWebp: "https://a/1.webp", Fallback: "https://a/1.jpg"},
		},
		{"empty_input", "", nil},
		{"malformed_json", `{"desktop_webp": `, nil},
		{"wrong_shape", `["not", "an", "object"]`, nil},
		{"null_literal", "null", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, article.DecodeImageData([]byte(tt.raw)))
		})
	}
}

func TestImageData_Candidates(t *testing.T) {
	images := &article.ImageData{
		DesktopWebp: "w",
		DesktopJpeg: "j",
		MobileWebp:  "mw",
		MobileJpeg:  "mj",
		Fallback:    "f",
	}

	// The fallback outranks every variant except the desktop webp.
	assert.Equal(t, []string{"w", "f", "j", "mw", "mj"}, images.Candidates())

	var absent *article.ImageData
	assert.Nil(t, absent.Candidates())
}

func TestArticle_PublicationStates(t *testing.T) {
	tests := []struct {
		name        string
		a           article.Article
		feedVisible bool
		retired     bool
	}{
		{
			"published",
			article.Article{PublishedURL: pointer.To("https://x/1")},
			true,
			false,
		},
		{
			"never_published",
			article.Article{},
			false,
			false,
		},
		{
			"retired_empty_url",
			article.Article{PublishedURL: pointer.To("")},
			false,
			true,
		},
		{
			"draft_is_hidden",
			article.Article{IsTemp: true, PublishedURL: pointer.To("https://x/1")},
			false,
			false,
		},
		{
			"slot_container_is_hidden",
			article.Article{
				LayoutType:   pointer.To(article.LayoutSlider),
				PublishedURL: pointer.To("https://x/1"),
			},
			false,
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.feedVisible, tt.a.FeedVisible())
			assert.Equal(t, tt.retired, tt.a.IsRetired())
		})
	}
}

func TestArticle_URLForLanguage(t *testing.T) {
	a := article.Article{
		PublishedURL:   pointer.To("https://x/da/1"),
		PublishedURLEn: pointer.To("https://x/en/1"),
	}

	assert.Equal(t, "https://x/en/1", a.URLForLanguage(article.LanguageEnglish))
	assert.Equal(t, "https://x/da/1", a.URLForLanguage(article.LanguageDanish))
	assert.Equal(t, "https://x/da/1", a.URLForLanguage(article.LanguageGreenlandic))

	// English falls back to the canonical URL when no English URL exists.
	a.PublishedURLEn = nil
	assert.Equal(t, "https://x/da/1", a.URLForLanguage(article.LanguageEnglish))

	unpublished := article.Article{}
	assert.Equal(t, "", unpublished.URLForLanguage(article.LanguageDanish))
}

func TestArticle_GroupID(t *testing.T) {
	root := article.Article{ID: 10}
	assert.Equal(t, int64(10), root.GroupID())
	assert.True(t, root.IsCanonical())

	member := article.Article{ID: 11, CanonicalID: pointer.To(int64(10))}
	assert.Equal(t, int64(10), member.GroupID())
	assert.False(t, member.IsCanonical())

	selfLinked := article.Article{ID: 10, CanonicalID: pointer.To(int64(10))}
	assert.True(t, selfLinked.IsCanonical())
}
