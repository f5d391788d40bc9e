package model

import (
	"time"
)

type Poll struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	Question  string    `gorm:"type:varchar(500);not null" json:"question"`
	CreatedAt time.Time `json:"created_at"`

	Options []PollOption `gorm:"foreignKey:PollID;references:ID"`
}

func (Poll) TableName() string {
	return "polls"
}

type PollOption struct {
	ID       uint64 `gorm:"primaryKey"`
	PollID   uint64 `gorm:"not null;index:idx_poll_id" json:"poll_id"`
	Text     string `gorm:"type:varchar(255);not null" json:"text"`
	Votes    int    `gorm:"not null;default:0" json:"votes"`
	Position int    `gorm:"not null;default:0" json:"position"`
}

func (PollOption) TableName() string {
	return "poll_options"
}
