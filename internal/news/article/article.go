// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

/*
Package article defines the multilingual article model at the heart of
Polarnews.

An article is a single-language unit of publishable content. Articles that
share a canonical id form a translation group (Danish, Greenlandic, English).
Home-page layout slots are articles too — they carry a layout type and a
display order instead of ordinary section placement.

# Identity

The numeric id is the sole identity key. The element GUID is a non-unique
lookup attribute: the same upstream item may occupy several layout slots.
*/
package article

import (
	"encoding/json"
	"strings"
	"time"
)

// # Languages

// Language is an ISO 639-1 code of a publication language.
type Language string

const (
	LanguageDanish      Language = "da"
	LanguageGreenlandic Language = "kl"
	LanguageEnglish     Language = "en"
)

// Known reports whether the language is one of the three publication
// languages. Unknown codes are preserved as-is; feeds fall back to English
// only for the news publication element.
func (l Language) Known() bool {
	switch l {
	case LanguageDanish, LanguageGreenlandic, LanguageEnglish:
		return true
	}
	return false
}

// OrEnglish returns the language itself when known, English otherwise.
func (l Language) OrEnglish() Language {
	if l.Known() {
		return l
	}
	return LanguageEnglish
}

// Languages lists the publication languages in canonical order.
func Languages() []Language {
	return []Language{LanguageDanish, LanguageGreenlandic, LanguageEnglish}
}

// # Sections

// Section identifies where an article is placed. SectionHome marks a
// home-page layout slot rather than a section article.
type Section string

const (
	SectionSamfund  Section = "samfund"
	SectionErhverv  Section = "erhverv"
	SectionKultur   Section = "kultur"
	SectionSport    Section = "sport"
	SectionJob      Section = "job"
	SectionPodcasti Section = "podcasti"
	SectionHome     Section = "home"
)

// Sections lists every valid section value, home slot included.
func Sections() []Section {
	return []Section{
		SectionSamfund, SectionErhverv, SectionKultur,
		SectionSport, SectionJob, SectionPodcasti, SectionHome,
	}
}

// # Layout Types

// LayoutType selects how a home-page slot renders.
type LayoutType string

const (
	Layout1Full          LayoutType = "1_full"
	Layout2Articles      LayoutType = "2_articles"
	Layout3Articles      LayoutType = "3_articles"
	Layout1SpecialBg     LayoutType = "1_special_bg"
	Layout1WithListLeft  LayoutType = "1_with_list_left"
	Layout1WithListRight LayoutType = "1_with_list_right"
	LayoutSlider         LayoutType = "slider"
	LayoutJobSlider      LayoutType = "job_slider"
)

// LayoutTypes lists every valid layout type value.
func LayoutTypes() []LayoutType {
	return []LayoutType{
		Layout1Full, Layout2Articles, Layout3Articles, Layout1SpecialBg,
		Layout1WithListLeft, Layout1WithListRight, LayoutSlider, LayoutJobSlider,
	}
}

// IsContainer reports whether the layout type is a slot container whose
// children live in the layout data rather than in the record itself.
// Containers carry an empty published URL and never appear in feeds.
func (t LayoutType) IsContainer() bool {
	return t == LayoutSlider || t == LayoutJobSlider
}

// # Image Bundles

// ImageData is the structured image bundle attached to an article. Each key
// holds an image URL and may be absent.
type ImageData struct {
	DesktopWebp string `json:"desktop_webp,omitempty"`
	DesktopJpeg string `json:"desktop_jpeg,omitempty"`
	MobileWebp  string `json:"mobile_webp,omitempty"`
	MobileJpeg  string `json:"mobile_jpeg,omitempty"`
	Fallback    string `json:"fallback,omitempty"`
}

// Candidates returns the non-empty image URLs in feed selection priority:
// desktop webp first, then the fallback, then the remaining variants.
func (d *ImageData) Candidates() []string {
	if d == nil {
		return nil
	}
	ordered := []string{d.DesktopWebp, d.Fallback, d.DesktopJpeg, d.MobileWebp, d.MobileJpeg}
	urls := make([]string, 0, len(ordered))
	for _, u := range ordered {
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// DecodeImageData leniently decodes a raw JSON image bundle.
//
// Any shape other than an object with the recognized keys is treated as
// absent: a malformed bundle costs the article its feed image, never the
// whole feed.
func DecodeImageData(raw []byte) *ImageData {
	if len(raw) == 0 {
		return nil
	}
	var data ImageData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil
	}
	if data == (ImageData{}) {
		return nil
	}
	return &data
}

// # The Article Entity

// Article is a single-language unit of publishable content, possibly serving
// as a home-page layout slot.
type Article struct {
	ID               int64          `json:"id"`
	Language         Language       `json:"language"`
	CanonicalID      *int64         `json:"canonical_id,omitempty"`
	OriginalLanguage Language       `json:"original_language"`
	Section          Section        `json:"section"`
	IsHome           bool           `json:"is_home"`
	IsTemp           bool           `json:"is_temp"`
	LayoutType       *LayoutType    `json:"layout_type,omitempty"`
	LayoutData       map[string]any `json:"layout_data,omitempty"`
	DisplayOrder     int            `json:"display_order"`

	// PublishedURL distinguishes three publication states: nil means the
	// article was never assigned a publisher URL (feeds synthesize one),
	// empty string means the record is retired, anything else is the
	// canonical publisher URL in the original language.
	PublishedURL   *string    `json:"published_url,omitempty"`
	PublishedURLEn *string    `json:"published_url_en,omitempty"`
	PublishedDate  *time.Time `json:"published_date,omitempty"`

	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Category    string     `json:"category,omitempty"`
	ElementGUID string     `json:"element_guid,omitempty"`
	ImageData   *ImageData `json:"image_data,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// GridSize is computed by the placement service for section pages.
	// It is never persisted.
	GridSize int `json:"grid_size,omitempty"`
}

// GroupID returns the canonical id of the article's translation group.
// Articles without a canonical link form a group of one rooted at themselves.
func (a *Article) GroupID() int64 {
	if a.CanonicalID != nil {
		return *a.CanonicalID
	}
	return a.ID
}

// IsCanonical reports whether the article is the root of its group.
func (a *Article) IsCanonical() bool {
	return a.CanonicalID == nil || *a.CanonicalID == a.ID
}

// IsContainer reports whether the article is a slider-style slot container.
func (a *Article) IsContainer() bool {
	return a.LayoutType != nil && a.LayoutType.IsContainer()
}

// IsRetired reports whether the article has been pulled from publication.
// Retired records keep their row but carry an empty published URL.
func (a *Article) IsRetired() bool {
	return a.PublishedURL != nil && *a.PublishedURL == ""
}

// FeedVisible reports whether the article may appear in sitemap output: not
// mid-translation, not retired, not a slot container, and carrying a
// publisher URL.
func (a *Article) FeedVisible() bool {
	return !a.IsTemp && !a.IsContainer() && a.PublishedURL != nil && *a.PublishedURL != ""
}

// URLForLanguage returns the publisher URL to emit for the given feed
// language: the English-locale URL when emitting English and the article
// carries one, the canonical URL otherwise. Returns "" when the article has
// no URL at all.
func (a *Article) URLForLanguage(lang Language) string {
	if lang == LanguageEnglish && a.PublishedURLEn != nil && *a.PublishedURLEn != "" {
		return *a.PublishedURLEn
	}
	if a.PublishedURL != nil {
		return *a.PublishedURL
	}
	return ""
}

// # Date Parsing

// Formats accepted for inbound published dates, tried in order.
var publishedDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParsePublishedDate leniently parses a published date supplied by the
// crawler or the admin editor.
//
// Unparseable values degrade instead of failing the write: the first ten
// characters are retried as a bare date (midnight), and if even that is not
// a date prefix the result is nil, which feeds render as an omitted lastmod.
func ParsePublishedDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	for _, layout := range publishedDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}

	if len(raw) >= 10 {
		if t, err := time.Parse("2006-01-02", raw[:10]); err == nil {
			return &t
		}
	}

	return nil
}
