package schema

// NewsArticleDetailTable represents the 'news.article_detail' table
type NewsArticleDetailTable struct {
	Table         string
	ID            string
	PublishedURL  string
	Language      string
	ContentBlocks string
	Author        string
	CreatedAt     string
	UpdatedAt     string
}

// NewsArticleDetail is the schema definition for news.article_detail
var NewsArticleDetail = NewsArticleDetailTable{
	Table:         "news.article_detail",
	ID:            "id",
	PublishedURL:  "publishedurl",
	Language:      "language",
	ContentBlocks: "contentblocks",
	Author:        "author",
	CreatedAt:     "createdat",
	UpdatedAt:     "updatedat",
}

func (t NewsArticleDetailTable) Columns() []string {
	return []string{
		t.ID, t.PublishedURL, t.Language, t.ContentBlocks, t.Author,
		t.CreatedAt, t.UpdatedAt,
	}
}
