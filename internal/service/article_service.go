package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-api/internal/client"
	"blog-api/internal/domain"
	"blog-api/internal/dto"
	"blog-api/internal/middleware"
	"blog-api/internal/repository"
	"blog-api/internal/response"
)

// allowedCoverExtensions is the allow-list for cover image uploads,
// matched case-insensitively.
var allowedCoverExtensions = []string{".jpg", ".png"}

// CoverUpload carries an uploaded cover image into the service layer
type CoverUpload struct {
	FileName    string
	ContentType string
	Reader      io.Reader
}

// ArticleService defines the interface for article business logic
type ArticleService interface {
	ListArticles(ctx context.Context) ([]*dto.ArticleResponse, error)
	GetArticle(ctx context.Context, id uint) (*dto.ArticleResponse, error)
	CreateArticle(ctx context.Context, identity middleware.Identity, req *dto.CreateArticleRequest, upload *CoverUpload) (*dto.ArticleResponse, error)
	UpdateArticle(ctx context.Context, id, userID uint, req *dto.UpdateArticleRequest) (*dto.UpdateArticleResult, error)
}

type articleServiceImpl struct {
	articleRepo repository.ArticleRepository
	userRepo    repository.UserRepository
	s3Client    client.S3ClientInterface
	logger      *zap.Logger
}

// NewArticleService creates a new instance of ArticleService
func NewArticleService(
	articleRepo repository.ArticleRepository,
	userRepo repository.UserRepository,
	s3Client client.S3ClientInterface,
	logger *zap.Logger,
) ArticleService {
	return &articleServiceImpl{
		articleRepo: articleRepo,
		userRepo:    userRepo,
		s3Client:    s3Client,
		logger:      logger,
	}
}

// ListArticles returns all articles in insertion order
func (s *articleServiceImpl) ListArticles(ctx context.Context) ([]*dto.ArticleResponse, error) {
	articles, err := s.articleRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list articles", err.Error())
	}
	return dto.ToArticleResponses(articles), nil
}

// GetArticle returns the article matching id, or nil when it does not exist.
// Not-found signaling is left to the caller.
func (s *articleServiceImpl) GetArticle(ctx context.Context, id uint) (*dto.ArticleResponse, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load article", err.Error())
	}
	return dto.ToArticleResponse(article), nil
}

// CreateArticle validates the cover image against the extension allow-list,
// uploads it, and persists the article. The author always comes from the
// authenticated identity, never from the request body. A rejected extension
// short-circuits before the upload and before any database write.
func (s *articleServiceImpl) CreateArticle(ctx context.Context, identity middleware.Identity, req *dto.CreateArticleRequest, upload *CoverUpload) (*dto.ArticleResponse, error) {
	if upload == nil {
		return nil, response.NewAppError(response.ErrCodeBadRequest, "Cover image file is required", "")
	}

	ext := strings.ToLower(filepath.Ext(upload.FileName))
	if !extensionAllowed(ext) {
		middleware.RecordCoverImageRejected()
		return nil, response.NewAppError(response.ErrCodeBadRequest,
			fmt.Sprintf("File type %s is not allowed. Allowed types are %s",
				ext, strings.Join(allowedCoverExtensions, ", ")), "")
	}

	author, err := s.userRepo.FindByID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeUnauthorized, "Authenticated user does not exist", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve author", err.Error())
	}

	// The upload completes before the database write. There is no rollback of
	// the stored object if the write below fails; the cleanup job reclaims
	// such orphans.
	key, err := s.s3Client.UploadFile(ctx, s.s3Client.GenerateFileKey(ext), upload.Reader, upload.ContentType)
	if err != nil {
		s.logger.Error("Failed to upload cover image",
			zap.String("file_name", upload.FileName),
			zap.Error(err),
		)
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to store cover image", err.Error())
	}
	middleware.RecordCoverImageUploaded()

	article := &domain.Article{
		Title:      req.Title,
		Body:       req.Body,
		AuthorID:   author.ID,
		CoverImage: key,
	}
	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create article", err.Error())
	}
	article.Author = *author
	middleware.RecordArticleCreated()

	s.logger.Info("Article created",
		zap.Uint("article_id", article.ID),
		zap.Uint("author_id", author.ID),
	)

	return dto.ToArticleResponse(article), nil
}

// UpdateArticle applies new title and body to an existing article. Existence
// is checked before ownership: a missing article is NOT_FOUND for every
// identity. A zero affected-row count means the article vanished between
// check and update; it is returned as-is.
func (s *articleServiceImpl) UpdateArticle(ctx context.Context, id, userID uint, req *dto.UpdateArticleRequest) (*dto.UpdateArticleResult, error) {
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound,
				fmt.Sprintf("Article with id %d does not exist", id), "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load article", err.Error())
	}

	if article.AuthorID != userID {
		return nil, response.NewAppError(response.ErrCodeUnauthorized,
			fmt.Sprintf("You are not allowed to update this article %d", userID), "")
	}

	rows, err := s.articleRepo.UpdateFields(ctx, id, req.Title, req.Body)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update article", err.Error())
	}

	return &dto.UpdateArticleResult{NumberOfAffectedRows: rows}, nil
}

func extensionAllowed(ext string) bool {
	for _, allowed := range allowedCoverExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
