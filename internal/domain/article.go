package domain

import "time"

// Article represents a published blog article
type Article struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	AuthorID   uint      `gorm:"not null;index:idx_articles_author_id" json:"-"`
	CoverImage string    `gorm:"not null" json:"cover_image"`
	CreatedAt  time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"not null" json:"updatedAt"`

	// AuthorID is immutable after creation; CoverImage is set once, from the
	// stored file key returned by the uploader.
	Author User `gorm:"foreignKey:AuthorID" json:"author"`
}

// TableName specifies the table name for Article
func (Article) TableName() string {
	return "articles"
}
