package model

import (
	"time"
)

// Comment 文章评论，创建后不可修改
type Comment struct {
	ID        uint64    `gorm:"primaryKey"`
	ArticleID uint64    `gorm:"not null;index:idx_article_id" json:"articleId"`
	UserID    uint64    `gorm:"not null" json:"userId"`
	UserName  string    `gorm:"type:varchar(100);not null" json:"userName"`
	Content   string    `gorm:"type:varchar(1000);not null" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Comment) TableName() string {
	return "comments"
}
