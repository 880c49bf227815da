package repository

import (
	"context"

	"gorm.io/gorm"

	"blog-api/internal/domain"
)

// ArticleRepository handles article database operations
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	FindByID(ctx context.Context, id uint) (*domain.Article, error)
	FindAll(ctx context.Context) ([]domain.Article, error)
	UpdateFields(ctx context.Context, id uint, title, body string) (int64, error)
	CoverImageInUse(ctx context.Context, key string) (bool, error)
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *domain.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) FindByID(ctx context.Context, id uint) (*domain.Article, error) {
	var article domain.Article
	err := r.db.WithContext(ctx).
		Preload("Author").
		First(&article, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) FindAll(ctx context.Context) ([]domain.Article, error) {
	var articles []domain.Article
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("id ASC").
		Find(&articles).Error
	return articles, err
}

// UpdateFields applies a new title and body to the article matching id and
// returns the affected-row count. Zero rows means the article vanished
// between the caller's existence check and the update.
func (r *articleRepository) UpdateFields(ctx context.Context, id uint, title, body string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title": title,
			"body":  body,
		})
	return result.RowsAffected, result.Error
}

// CoverImageInUse reports whether any article references the stored key
func (r *articleRepository) CoverImageInUse(ctx context.Context, key string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("cover_image = ?", key).
		Count(&count).Error
	return count > 0, err
}
