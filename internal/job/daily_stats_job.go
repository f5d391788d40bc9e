package job

import (
	"Kiosque/internal/pkg/consts"
	"Kiosque/internal/pkg/logger"
	"Kiosque/internal/pkg/mongo"
	"Kiosque/internal/pkg/redis"
	"Kiosque/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// 落库最近两天的桶，跨零点时前一天的尾部计数不会丢
const flushBackfillDays = 2

var statTypes = []string{
	consts.EventTypeView,
	consts.EventTypeRegistration,
	consts.EventTypeComment,
	consts.EventTypeLike,
}

// DailyStatsJob 将 Redis 日桶计数落库到 daily_stats 表，
// 桶缺失时退回 Mongo 事件日志重建当天计数
type DailyStatsJob struct {
	statsRepo repository.StatsRepo
	eventRepo mongo.EventRepo
}

func NewDailyStatsJob(statsRepo repository.StatsRepo, eventRepo mongo.EventRepo) *DailyStatsJob {
	return &DailyStatsJob{
		statsRepo: statsRepo,
		eventRepo: eventRepo,
	}
}

func (s *DailyStatsJob) Run() {
	traceID := "job-stats-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 多实例部署时同一时刻只允许一个实例刷写
	lockValue := uuid.NewString()
	locked, err := redis.TryLock(ctx, consts.StatsFlushLockKey, lockValue, time.Minute, 0)
	if err != nil || !locked {
		return
	}
	defer redis.UnLock(ctx, consts.StatsFlushLockKey, lockValue)

	now := time.Now()
	earliest := now.AddDate(0, 0, -(flushBackfillDays - 1))
	since := time.Date(earliest.Year(), earliest.Month(), earliest.Day(), 0, 0, 0, 0, earliest.Location())

	flushed := 0
	for _, statType := range statTypes {
		var rebuilt map[string]int64
		for i := 0; i < flushBackfillDays; i++ {
			day := now.AddDate(0, 0, -i).Format(time.DateOnly)
			count, err := redis.GetInt64(ctx, consts.StatsDailyKey+statType+":"+day)
			if err != nil {
				if rebuilt == nil {
					rebuilt, err = s.eventRepo.CountByDay(ctx, statType, since)
					if err != nil {
						log.ErrorContext(ctx, "rebuild daily stat from events error", "type", statType, "err", err)
						break
					}
				}
				fallback, ok := rebuilt[day]
				if !ok {
					continue
				}
				count = fallback
			}
			if err := s.statsRepo.UpsertDailyStat(ctx, statType, day, count); err != nil {
				log.ErrorContext(ctx, "flush daily stat error", "type", statType, "date", day, "err", err)
				continue
			}
			flushed++
		}
	}

	log.InfoContext(ctx, "flush daily stats success", "flushed_buckets", flushed)
}
