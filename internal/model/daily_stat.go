package model

import (
	"time"
)

// DailyStat 按天聚合的行为统计，由定时任务从 Redis 桶落库
type DailyStat struct {
	ID       uint64 `gorm:"primaryKey"`
	StatType string `gorm:"type:varchar(30);not null;index:idx_type_date,unique" json:"stat_type"`
	StatDate string `gorm:"type:date;not null;index:idx_type_date,unique" json:"stat_date"` // yyyy-mm-dd
	Count    int64  `gorm:"not null;default:0" json:"count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DailyStat) TableName() string {
	return "daily_stats"
}
