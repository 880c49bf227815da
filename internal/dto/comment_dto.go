package dto

import (
	"time"

	"blog-api/internal/domain"
)

// CreateCommentRequest represents the request to create a comment
type CreateCommentRequest struct {
	Body string `json:"body" binding:"required,min=1"`
}

// UpdateCommentRequest represents the request to replace a comment's body
type UpdateCommentRequest struct {
	Body string `json:"body" binding:"required,min=1"`
}

// CommentResponse represents the comment response
type CommentResponse struct {
	ID        uint           `json:"id"`
	Body      string         `json:"body"`
	ArticleID uint           `json:"articleId"`
	User      AuthorResponse `json:"user"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// ToCommentResponse converts a domain Comment to its response shape
func ToCommentResponse(c *domain.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        c.ID,
		Body:      c.Body,
		ArticleID: c.ArticleID,
		User: AuthorResponse{
			ID:       c.User.ID,
			Username: c.User.Username,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCommentResponses converts a slice of domain Comments
func ToCommentResponses(comments []domain.Comment) []*CommentResponse {
	responses := make([]*CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, ToCommentResponse(&comments[i]))
	}
	return responses
}
