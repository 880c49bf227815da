package dto

import (
	"time"

	"blog-api/internal/domain"
)

// CreateArticleRequest represents the multipart form fields for creating an
// article. The cover image file travels alongside as the "image" form file
// and is never accepted as a raw path.
type CreateArticleRequest struct {
	Title string `form:"title" binding:"required,min=3,max=100"`
	Body  string `form:"body" binding:"required,min=10,max=2000"`
}

// UpdateArticleRequest represents the request to update an article's title
// and body. The author and cover image are immutable.
type UpdateArticleRequest struct {
	Title string `json:"title" binding:"required,min=3,max=100"`
	Body  string `json:"body" binding:"required,min=10,max=2000"`
}

// AuthorResponse is the embedded author in article and comment responses
type AuthorResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// ArticleResponse represents the article response
type ArticleResponse struct {
	ID         uint           `json:"id"`
	Title      string         `json:"title"`
	Body       string         `json:"body"`
	CoverImage string         `json:"cover_image"`
	Author     AuthorResponse `json:"author"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// UpdateArticleResult carries the affected-row count of an article update.
// A count of zero means the article vanished between the existence check and
// the update; that race is reported as-is, not as an error.
type UpdateArticleResult struct {
	NumberOfAffectedRows int64 `json:"numberOfAffectedRows"`
}

// ToArticleResponse converts a domain Article to its response shape
func ToArticleResponse(a *domain.Article) *ArticleResponse {
	return &ArticleResponse{
		ID:         a.ID,
		Title:      a.Title,
		Body:       a.Body,
		CoverImage: a.CoverImage,
		Author: AuthorResponse{
			ID:       a.Author.ID,
			Username: a.Author.Username,
		},
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToArticleResponses converts a slice of domain Articles
func ToArticleResponses(articles []domain.Article) []*ArticleResponse {
	responses := make([]*ArticleResponse, 0, len(articles))
	for i := range articles {
		responses = append(responses, ToArticleResponse(&articles[i]))
	}
	return responses
}
