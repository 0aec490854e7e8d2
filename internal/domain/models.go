package domain

// Domain contains the records exchanged with the article catalog API.

// ArticleSimpleDTO is the summary form of an article returned by list queries.
type ArticleSimpleDTO struct {
	ID               int64    `json:"id"`
	Title            string   `json:"title"`
	AuthorName       string   `json:"authorName,omitempty"`
	Topics           []string `json:"topics,omitempty"`
	FeaturedImageURL string   `json:"featuredImageUrl,omitempty"`
	PublicationDate  string   `json:"publicationDate,omitempty"`
	Views            int64    `json:"views,omitempty"`
	IsPrivate        bool     `json:"isPrivate,omitempty"`
}

// ArticleDetailedDTO is the full article returned by single-item lookups.
type ArticleDetailedDTO struct {
	ID               int64    `json:"id"`
	Title            string   `json:"title"`
	AuthorName       string   `json:"authorName,omitempty"`
	Topics           []string `json:"topics,omitempty"`
	FeaturedImageURL string   `json:"featuredImageUrl,omitempty"`
	PublicationDate  string   `json:"publicationDate,omitempty"`
	Views            int64    `json:"views,omitempty"`
	IsPrivate        bool     `json:"isPrivate,omitempty"`
	Summary          string   `json:"summary,omitempty"`
	Content          string   `json:"content,omitempty"`
}

// Customer is the account the catalog API returns for accepted credentials.
type Customer struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email,omitempty"`
	Name          string `json:"name,omitempty"`
	LastArticleID *int64 `json:"lastArticleId,omitempty"`
}
