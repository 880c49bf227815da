package service

import (
	"context"
	"io"

	"blog-api/internal/client"
	"blog-api/internal/domain"
)

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	CreateFunc          func(ctx context.Context, article *domain.Article) error
	FindByIDFunc        func(ctx context.Context, id uint) (*domain.Article, error)
	FindAllFunc         func(ctx context.Context) ([]domain.Article, error)
	UpdateFieldsFunc    func(ctx context.Context, id uint, title, body string) (int64, error)
	CoverImageInUseFunc func(ctx context.Context, key string) (bool, error)
}

func (m *MockArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, article)
	}
	return nil
}

func (m *MockArticleRepository) FindByID(ctx context.Context, id uint) (*domain.Article, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockArticleRepository) FindAll(ctx context.Context) ([]domain.Article, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockArticleRepository) UpdateFields(ctx context.Context, id uint, title, body string) (int64, error) {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, title, body)
	}
	return 0, nil
}

func (m *MockArticleRepository) CoverImageInUse(ctx context.Context, key string) (bool, error) {
	if m.CoverImageInUseFunc != nil {
		return m.CoverImageInUseFunc(ctx, key)
	}
	return false, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc          func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc        func(ctx context.Context, id uint) (*domain.Comment, error)
	FindByArticleIDFunc func(ctx context.Context, articleID uint) ([]domain.Comment, error)
	UpdateFunc          func(ctx context.Context, comment *domain.Comment) error
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uint) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByArticleID(ctx context.Context, articleID uint) ([]domain.Comment, error) {
	if m.FindByArticleIDFunc != nil {
		return m.FindByArticleIDFunc(ctx, articleID)
	}
	return nil, nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, comment)
	}
	return nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	FindByIDFunc       func(ctx context.Context, id uint) (*domain.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

// MockS3Client is a mock implementation of S3ClientInterface
type MockS3Client struct {
	GenerateFileKeyFunc func(fileExt string) string
	UploadFileFunc      func(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFileFunc      func(ctx context.Context, key string) error
	ListFilesFunc       func(ctx context.Context, prefix string) ([]client.StoredObject, error)
	GetFileURLFunc      func(key string) string
}

func (m *MockS3Client) GenerateFileKey(fileExt string) string {
	if m.GenerateFileKeyFunc != nil {
		return m.GenerateFileKeyFunc(fileExt)
	}
	return "blog/covers/test" + fileExt
}

func (m *MockS3Client) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, key, file, contentType)
	}
	return key, nil
}

func (m *MockS3Client) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	return nil
}

func (m *MockS3Client) ListFiles(ctx context.Context, prefix string) ([]client.StoredObject, error) {
	if m.ListFilesFunc != nil {
		return m.ListFilesFunc(ctx, prefix)
	}
	return nil, nil
}

func (m *MockS3Client) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}
	return "https://example.com/" + key
}
