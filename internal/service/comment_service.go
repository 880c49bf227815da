package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-api/internal/domain"
	"blog-api/internal/dto"
	"blog-api/internal/middleware"
	"blog-api/internal/repository"
	"blog-api/internal/response"
)

// CommentService defines the interface for comment business logic
type CommentService interface {
	CreateComment(ctx context.Context, articleID uint, identity middleware.Identity, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	UpdateComment(ctx context.Context, articleID, commentID, userID uint, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	GetComments(ctx context.Context, articleID uint) ([]*dto.CommentResponse, error)
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	articleRepo repository.ArticleRepository
	userRepo    repository.UserRepository
	logger      *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	articleRepo repository.ArticleRepository,
	userRepo repository.UserRepository,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (s *commentServiceImpl) articleExists(ctx context.Context, articleID uint) error {
	_, err := s.articleRepo.FindByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound,
				fmt.Sprintf("Article with id %d does not exist", articleID), "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to load article", err.Error())
	}
	return nil
}

// CreateComment persists a new comment on an existing article. The comment's
// user reference always comes from the authenticated identity.
func (s *commentServiceImpl) CreateComment(ctx context.Context, articleID uint, identity middleware.Identity, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if err := s.articleExists(ctx, articleID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeUnauthorized, "Authenticated user does not exist", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve user", err.Error())
	}

	comment := &domain.Comment{
		Body:      req.Body,
		ArticleID: articleID,
		UserID:    user.ID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}
	comment.User = *user
	middleware.RecordCommentCreated()

	s.logger.Info("Comment created",
		zap.Uint("comment_id", comment.ID),
		zap.Uint("article_id", articleID),
		zap.Uint("user_id", user.ID),
	)

	return dto.ToCommentResponse(comment), nil
}

// UpdateComment replaces the body of an existing comment. Existence of both
// the article and the comment is checked before ownership, so a missing
// resource is NOT_FOUND regardless of the acting identity.
func (s *commentServiceImpl) UpdateComment(ctx context.Context, articleID, commentID, userID uint, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	if err := s.articleExists(ctx, articleID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound,
				fmt.Sprintf("Comment with id %d not found", commentID), "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load comment", err.Error())
	}

	if comment.UserID != userID {
		return nil, response.NewAppError(response.ErrCodeUnauthorized,
			fmt.Sprintf("You are not allowed to update this comment %d", userID), "")
	}

	comment.Body = req.Body
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update comment", err.Error())
	}

	return dto.ToCommentResponse(comment), nil
}

// GetComments returns all comments on an existing article in insertion order
func (s *commentServiceImpl) GetComments(ctx context.Context, articleID uint) ([]*dto.CommentResponse, error) {
	if err := s.articleExists(ctx, articleID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindByArticleID(ctx, articleID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list comments", err.Error())
	}
	return dto.ToCommentResponses(comments), nil
}
