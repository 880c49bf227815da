package handler

import (
	"context"

	"blog-api/internal/dto"
	"blog-api/internal/middleware"
	"blog-api/internal/service"
)

// MockArticleService is a mock implementation of service.ArticleService
type MockArticleService struct {
	ListArticlesFunc  func(ctx context.Context) ([]*dto.ArticleResponse, error)
	GetArticleFunc    func(ctx context.Context, id uint) (*dto.ArticleResponse, error)
	CreateArticleFunc func(ctx context.Context, identity middleware.Identity, req *dto.CreateArticleRequest, upload *service.CoverUpload) (*dto.ArticleResponse, error)
	UpdateArticleFunc func(ctx context.Context, id, userID uint, req *dto.UpdateArticleRequest) (*dto.UpdateArticleResult, error)
}

func (m *MockArticleService) ListArticles(ctx context.Context) ([]*dto.ArticleResponse, error) {
	if m.ListArticlesFunc != nil {
		return m.ListArticlesFunc(ctx)
	}
	return nil, nil
}

func (m *MockArticleService) GetArticle(ctx context.Context, id uint) (*dto.ArticleResponse, error) {
	if m.GetArticleFunc != nil {
		return m.GetArticleFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockArticleService) CreateArticle(ctx context.Context, identity middleware.Identity, req *dto.CreateArticleRequest, upload *service.CoverUpload) (*dto.ArticleResponse, error) {
	if m.CreateArticleFunc != nil {
		return m.CreateArticleFunc(ctx, identity, req, upload)
	}
	return nil, nil
}

func (m *MockArticleService) UpdateArticle(ctx context.Context, id, userID uint, req *dto.UpdateArticleRequest) (*dto.UpdateArticleResult, error) {
	if m.UpdateArticleFunc != nil {
		return m.UpdateArticleFunc(ctx, id, userID, req)
	}
	return nil, nil
}

// MockCommentService is a mock implementation of service.CommentService
type MockCommentService struct {
	CreateCommentFunc func(ctx context.Context, articleID uint, identity middleware.Identity, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	UpdateCommentFunc func(ctx context.Context, articleID, commentID, userID uint, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	GetCommentsFunc   func(ctx context.Context, articleID uint) ([]*dto.CommentResponse, error)
}

func (m *MockCommentService) CreateComment(ctx context.Context, articleID uint, identity middleware.Identity, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if m.CreateCommentFunc != nil {
		return m.CreateCommentFunc(ctx, articleID, identity, req)
	}
	return nil, nil
}

func (m *MockCommentService) UpdateComment(ctx context.Context, articleID, commentID, userID uint, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	if m.UpdateCommentFunc != nil {
		return m.UpdateCommentFunc(ctx, articleID, commentID, userID, req)
	}
	return nil, nil
}

func (m *MockCommentService) GetComments(ctx context.Context, articleID uint) ([]*dto.CommentResponse, error) {
	if m.GetCommentsFunc != nil {
		return m.GetCommentsFunc(ctx, articleID)
	}
	return nil, nil
}
