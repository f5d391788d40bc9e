package model

import (
	"time"
)

type Article struct {
	ID            uint64     `gorm:"primaryKey"`
	UserID        uint64     `gorm:"not null;index:idx_user_id" json:"user_id"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	Summary       *string    `gorm:"type:varchar(1000)" json:"summary"`
	CategoryID    uint64     `gorm:"not null;index:idx_category_id" json:"category_id"`
	Author        string     `gorm:"type:varchar(100);not null" json:"author"`
	Tags          StringList `gorm:"type:json;serializer:json" json:"tags"`
	LikesCount    int        `gorm:"not null;default:0" json:"likes_count"`
	DislikesCount int        `gorm:"not null;default:0" json:"dislikes_count"`
	CommentsCount int        `gorm:"not null;default:0" json:"comments_count"`
	ViewsCount    int        `gorm:"not null;default:0" json:"views_count"`
	ImageURL      *string    `gorm:"type:varchar(512)" json:"image_url"`
	VideoURL      *string    `gorm:"type:varchar(512)" json:"video_url"`
	Scope         string     `gorm:"type:varchar(50);not null;default:'public';index:idx_scope" json:"scope"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// 关联关系
	User     User     `gorm:"foreignKey:UserID;references:ID"`
	Category Category `gorm:"foreignKey:CategoryID;references:ID"`
}

func (Article) TableName() string {
	return "articles"
}

type StringList []string
