package model

import (
	"time"
)

type Listing struct {
	ID          uint64    `gorm:"primaryKey"`
	UserID      uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Price       int64     `gorm:"not null;default:0" json:"price"` // 单位：分，非负
	CategoryID  uint64    `gorm:"not null;index:idx_category_id" json:"category_id"`
	Contact     string    `gorm:"type:varchar(100);not null" json:"contact"`
	ImageURL    *string   `gorm:"type:varchar(500)" json:"image_url,omitempty"`
	ViewsCount  int       `gorm:"not null;default:0" json:"views_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User     User     `gorm:"foreignKey:UserID;references:ID"`
	Category Category `gorm:"foreignKey:CategoryID;references:ID"`
}

func (Listing) TableName() string {
	return "listings"
}
