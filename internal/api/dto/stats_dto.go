package dto

// DailyPointDTO 单日计数点
type DailyPointDTO struct {
	Date  string `json:"date"` // yyyy-mm-dd
	Count int64  `json:"count"`
}

// StatsOverviewDTO 管理端总览
type StatsOverviewDTO struct {
	TotalUsers       int64 `json:"total_users"`
	ActiveUsers      int64 `json:"active_users"`       // 近30天
	ActiveUsersToday int64 `json:"active_users_today"` // 近24小时
	TotalArticles    int64 `json:"total_articles"`
	TotalListings    int64 `json:"total_listings"`
	TotalPolls       int64 `json:"total_polls"`
	TotalLikes       int64 `json:"total_likes"`
	TotalComments    int64 `json:"total_comments"`
}

// StatsSeriesDTO 指定类型最近 N 天的逐日序列
type StatsSeriesDTO struct {
	StatType string           `json:"stat_type"`
	Points   []*DailyPointDTO `json:"points"`
}

// RecentEventDTO 最近行为明细
type RecentEventDTO struct {
	Type       string `json:"type"`
	UserID     uint64 `json:"user_id"`
	TargetID   uint64 `json:"target_id,omitempty"`
	OccurredAt string `json:"occurred_at"`
}
