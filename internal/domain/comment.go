package domain

import "time"

// Comment represents a comment on an article
type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	ArticleID uint      `gorm:"not null;index:idx_comments_article_id" json:"-"`
	UserID    uint      `gorm:"not null;index:idx_comments_user_id" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`

	// ArticleID and UserID are immutable after creation; the user reference
	// always comes from the authenticated identity.
	Article Article `gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE" json:"article,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
