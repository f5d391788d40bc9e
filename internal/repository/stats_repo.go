package repository

import (
	"Kiosque/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatsRepo interface {
	UpsertDailyStat(ctx context.Context, statType, statDate string, count int64) error
	GetDailyStats(ctx context.Context, statType string, from, to time.Time) ([]*model.DailyStat, error)
}

type StatsRepoImpl struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) StatsRepo {
	return &StatsRepoImpl{db: db}
}

// UpsertDailyStat 幂等写入当日计数，冲突时整值覆盖而非累加，
// 保证定时任务重复刷写同一桶不会放大数据
func (s *StatsRepoImpl) UpsertDailyStat(ctx context.Context, statType, statDate string, count int64) error {
	stat := model.DailyStat{
		StatType: statType,
		StatDate: statDate,
		Count:    count,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "stat_type"}, {Name: "stat_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"count"}),
	}).Create(&stat).Error
}

func (s *StatsRepoImpl) GetDailyStats(ctx context.Context, statType string, from, to time.Time) ([]*model.DailyStat, error) {
	var stats []*model.DailyStat
	err := s.db.WithContext(ctx).
		Where("stat_type = ? AND stat_date >= ? AND stat_date <= ?",
			statType, from.Format(time.DateOnly), to.Format(time.DateOnly)).
		Order("stat_date ASC").
		Find(&stats).Error
	return stats, err
}
