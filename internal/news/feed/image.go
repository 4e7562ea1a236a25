// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package feed

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/nuukmedia/polarnews/internal/news/article"
)

// # Image Selection

// uploadsPathFragment marks images served from our own uploads directory.
const uploadsPathFragment = "static/uploads/images"

// imageIDPathPattern matches a numeric image ID as the final path segment,
// e.g. ".../12345.webp" or ".../12345.jpg".
var imageIDPathPattern = regexp.MustCompile(`/(\d+)\.(?:webp|jpe?g)$`)

/*
ImageSelector picks the sitemap image URL for an article.

Candidate URLs from the article's image set are tried in a fixed priority
order, in two passes. The first pass looks only for a candidate hosted on
our own publication domain, which is used directly (rewritten onto the
public host). Only when no candidate is ours does the second pass consider
upstream CDN candidates: their numeric image ID is extracted and a fresh
upstream URL with our preferred format and width parameters is synthesized.
Candidates with no recognizable image ID are skipped.
*/
type ImageSelector struct {
	publicHost   string
	upstreamHost string
}

func NewImageSelector(publicHost, upstreamHost string) *ImageSelector {
	return &ImageSelector{
		publicHost:   publicHost,
		upstreamHost: upstreamHost,
	}
}

// Select returns the image URL to publish for the article, or "" when no
// usable candidate exists. A candidate on our own domain wins over any
// upstream candidate, regardless of their relative priority.
func (selector *ImageSelector) Select(images *article.ImageData) string {
	if images == nil {
		return ""
	}

	candidates := images.Candidates()

	for _, candidate := range candidates {
		if candidate != "" && selector.isOurs(candidate) {
			return Rewrite(candidate, selector.publicHost)
		}
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if id := extractImageID(candidate); id != "" {
			return selector.synthesize(id)
		}
	}

	return ""
}

// isOurs reports whether the URL is served from the publication's own
// domain rather than proxied from the upstream CDN.
func (selector *ImageSelector) isOurs(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return false
	}

	if !strings.Contains(parsed.Host, selector.publicHost) {
		return false
	}

	if strings.Contains(raw, uploadsPathFragment) {
		return true
	}

	return !strings.Contains(raw, selector.upstreamHost)
}

// synthesize builds an upstream CDN URL for the given image ID with the
// rendition parameters the sitemaps advertise.
func (selector *ImageSelector) synthesize(imageID string) string {
	return "https://" + selector.upstreamHost + "/?imageId=" + imageID + "&format=webp&width=1200"
}

// extractImageID pulls the numeric image ID out of a URL, looking first at
// the imageId query parameter and then at the final path segment.
func extractImageID(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	if id := parsed.Query().Get("imageId"); id != "" {
		return id
	}

	if match := imageIDPathPattern.FindStringSubmatch(parsed.Path); match != nil {
		return match[1]
	}

	return ""
}
