// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package feed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nuukmedia/polarnews/internal/news/article"
	"github.com/nuukmedia/polarnews/internal/news/feed"
)

func newTestSelector() *feed.ImageSelector {
	return feed.NewImageSelector("publisher.example", "cdn.upstream")
}

func TestImageSelector_OwnUpload(t *testing.T) {
	selector := newTestSelector()

	images := &article.ImageData{
		DesktopWebp: "http://publisher.example/static/uploads/images/foo.webp",
	}

	assert.Equal(t,
		"https://publisher.example/static/uploads/images/foo.webp",
		selector.Select(images),
	)
}

func TestImageSelector_UpstreamSynthesis(t *testing.T) {
	selector := newTestSelector()

	tests := []struct {
		name   string
		images *article.ImageData
		want   string
	}{
		{
			"id_from_query_parameter",
			&article.ImageData{DesktopWebp: "https://cdn.upstream/render?imageId=99&width=640"},
			"https://cdn.upstream/?imageId=99&format=webp&width=1200",
		},
		{
			"id_from_path_segment",
			&article.ImageData{Fallback: "https://cdn.upstream/media/12345.webp"},
			"https://cdn.upstream/?imageId=12345&format=webp&width=1200",
		},
		{
			"id_from_jpeg_path",
			&article.ImageData{DesktopJpeg: "https://cdn.upstream/media/777.jpg"},
			"https://cdn.upstream/?imageId=777&format=webp&width=1200",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, selector.Select(tt.images))
		})
	}
}

func TestImageSelector_PriorityOrder(t *testing.T) {
	selector := newTestSelector()

	// Fallback outranks desktop JPEG, but desktop WebP outranks both.
	images := &article.ImageData{
		DesktopWebp: "http://publisher.example/static/uploads/images/a.webp",
		DesktopJpeg: "http://publisher.example/static/uploads/images/b.jpg",
		Fallback:    "http://publisher.example/static/uploads/images/c.jpg",
	}

	assert.Contains(t, selector.Select(images), "/a.webp")

	images.DesktopWebp = ""
	assert.Contains(t, selector.Select(images), "/c.jpg")

	images.Fallback = ""
	assert.Contains(t, selector.Select(images), "/b.jpg")
}

func TestImageSelector_OwnUploadOutranksUpstream(t *testing.T) {
	selector := newTestSelector()

	// The higher-priority candidate is upstream with a usable image ID,
	// but an own-domain candidate further down still wins.
	images := &article.ImageData{
		DesktopWebp: "https://cdn.upstream/?imageId=5",
		Fallback:    "https://publisher.example/static/uploads/images/c.jpg",
	}

	assert.Equal(t,
		"https://publisher.example/static/uploads/images/c.jpg",
		selector.Select(images),
	)
}

func TestImageSelector_SkipsUnusableCandidates(t *testing.T) {
	selector := newTestSelector()

	// The first candidate is foreign and carries no image ID; the next
	// usable one wins.
	images := &article.ImageData{
		DesktopWebp: "https://elsewhere.example/pic.webp",
		MobileWebp:  "https://cdn.upstream/media/31.webp",
	}

	assert.Equal(t,
		"https://cdn.upstream/?imageId=31&format=webp&width=1200",
		selector.Select(images),
	)
}

func TestImageSelector_NoCandidates(t *testing.T) {
	selector := newTestSelector()

	assert.Equal(t, "", selector.Select(nil))
	assert.Equal(t, "", selector.Select(&article.ImageData{}))
	assert.Equal(t, "", selector.Select(&article.ImageData{
		DesktopWebp: "https://elsewhere.example/no-id.png",
	}))
}
