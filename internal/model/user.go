package model

import (
	"time"
)

type User struct {
	ID          uint64  `gorm:"primaryKey"`
	Email       string  `gorm:"type:varchar(255);uniqueIndex:idx_email;not null"`
	Password    string  `gorm:"type:varchar(255);not null"`
	DisplayName *string `gorm:"type:varchar(50)"`
	LastLogin   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	UserRoles []UserRole `gorm:"foreignKey:UserID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
