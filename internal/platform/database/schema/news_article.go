package schema

// NewsArticleTable represents the 'news.article' table
type NewsArticleTable struct {
	Table            string
	ID               string
	Language         string
	CanonicalID      string
	OriginalLanguage string
	Section          string
	IsHome           string
	IsTemp           string
	LayoutType       string
	LayoutData       string
	DisplayOrder     string
	PublishedURL     string
	PublishedURLEn   string
	PublishedDate    string
	Title            string
	Slug             string
	Category         string
	ElementGUID      string
	ImageData        string
	CreatedAt        string
	UpdatedAt        string
}

// NewsArticle is the schema definition for news.article
var NewsArticle = NewsArticleTable{
	Table:            "news.article",
	ID:               "id",
	Language:         "language",
	CanonicalID:      "canonicalid",
	OriginalLanguage: "originallanguage",
	Section:          "section",
	IsHome:           "ishome",
	IsTemp:           "istemp",
	LayoutType:       "layouttype",
	LayoutData:       "layoutdata",
	DisplayOrder:     "displayorder",
	PublishedURL:     "publishedurl",
	PublishedURLEn:   "publishedurlen",
	PublishedDate:    "publisheddate",
	Title:            "title",
	Slug:             "slug",
	Category:         "category",
	ElementGUID:      "elementguid",
	ImageData:        "imagedata",
	CreatedAt:        "createdat",
	UpdatedAt:        "updatedat",
}

func (t NewsArticleTable) Columns() []string {
	return []string{
		t.ID, t.Language, t.CanonicalID, t.OriginalLanguage, t.Section,
		t.IsHome, t.IsTemp, t.LayoutType, t.LayoutData, t.DisplayOrder,
		t.PublishedURL, t.PublishedURLEn, t.PublishedDate, t.Title, t.Slug,
		t.Category, t.ElementGUID, t.ImageData, t.CreatedAt, t.UpdatedAt,
	}
}
