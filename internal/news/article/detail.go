// Copyright (c) 2026 Polarnews Media. All rights reserved.
// Author: dev@polarnews.gl

package article

import "time"

// # Content Blocks

// BlockType identifies the kind of a single body block.
type BlockType string

const (
	BlockParagraph          BlockType = "paragraph"
	BlockSubtitle           BlockType = "subtitle"
	BlockImage              BlockType = "image"
	BlockHeaderImageCaption BlockType = "header_image_caption"
	BlockArticleMeta        BlockType = "article_meta"
	BlockPaywallOffer       BlockType = "paywall_offer"
)

// ContentBlock is one typed block of an article body. Blocks are rendered in
// sequence; unrecognized types are passed through to the template layer.
type ContentBlock struct {
	Type    BlockType      `json:"type"`
	Text    string         `json:"text,omitempty"`
	URL     string         `json:"url,omitempty"`
	Caption string         `json:"caption,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// # The Detail Entity

// Detail is the block-structured body of an article, keyed by
// (published URL, language). The URL alone is not unique — every language of
// a translation group shares it.
type Detail struct {
	ID            int64          `json:"id"`
	PublishedURL  string         `json:"published_url"`
	Language      Language       `json:"language"`
	ContentBlocks []ContentBlock `json:"content_blocks"`
	Author        string         `json:"author,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
