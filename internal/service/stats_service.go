package service

import (
	"Kiosque/internal/api/dto"
	"Kiosque/internal/pkg/consts"
	"Kiosque/internal/pkg/mongo"
	"Kiosque/internal/pkg/redis"
	"Kiosque/internal/repository"
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// 活跃用户统计窗口
const (
	activeUserWindow      = 30 * 24 * time.Hour
	activeUserTodayWindow = 24 * time.Hour
)

type StatsService interface {
	GetOverview(ctx context.Context) (*dto.StatsOverviewDTO, error)
	GetDailySeries(ctx context.Context, statType string, days int) (*dto.StatsSeriesDTO, error)
	GetRecentEvents(ctx context.Context, eventType string, limit int64) ([]*dto.RecentEventDTO, error)
}

type StatsServiceImpl struct {
	userRepo    repository.UserRepo
	articleRepo repository.ArticleRepo
	listingRepo repository.ListingRepo
	pollRepo    repository.PollRepo
	statsRepo   repository.StatsRepo
	eventRepo   mongo.EventRepo
}

func NewStatsService(
	userRepo repository.UserRepo,
	articleRepo repository.ArticleRepo,
	listingRepo repository.ListingRepo,
	pollRepo repository.PollRepo,
	statsRepo repository.StatsRepo,
	eventRepo mongo.EventRepo,
) StatsService {
	return &StatsServiceImpl{
		userRepo:    userRepo,
		articleRepo: articleRepo,
		listingRepo: listingRepo,
		pollRepo:    pollRepo,
		statsRepo:   statsRepo,
		eventRepo:   eventRepo,
	}
}

// GetOverview 总量指标并发取数
func (s *StatsServiceImpl) GetOverview(ctx context.Context) (*dto.StatsOverviewDTO, error) {
	overview := &dto.StatsOverviewDTO{}
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		count, err := s.userRepo.CountUsers(groupCtx)
		overview.TotalUsers = count
		return err
	})
	group.Go(func() error {
		count, err := s.userRepo.CountActiveUsers(groupCtx, time.Now().Add(-activeUserWindow))
		overview.ActiveUsers = count
		return err
	})
	group.Go(func() error {
		count, err := s.userRepo.CountActiveUsers(groupCtx, time.Now().Add(-activeUserTodayWindow))
		overview.ActiveUsersToday = count
		return err
	})
	group.Go(func() error {
		count, err := s.pollRepo.CountPolls(groupCtx)
		overview.TotalPolls = count
		return err
	})
	group.Go(func() error {
		count, err := s.articleRepo.CountArticles(groupCtx)
		overview.TotalArticles = count
		return err
	})
	group.Go(func() error {
		count, err := s.listingRepo.CountListings(groupCtx)
		overview.TotalListings = count
		return err
	})
	group.Go(func() error {
		count, err := s.articleRepo.SumLikes(groupCtx)
		overview.TotalLikes = count
		return err
	})
	group.Go(func() error {
		count, err := s.articleRepo.SumComments(groupCtx)
		overview.TotalComments = count
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return overview, nil
}

// GetDailySeries 历史天数来自落库的 daily_stats，当天叠加 Redis 实时桶
func (s *StatsServiceImpl) GetDailySeries(ctx context.Context, statType string, days int) (*dto.StatsSeriesDTO, error) {
	if days <= 0 || days > 90 {
		days = 7
	}

	now := time.Now()
	from := now.AddDate(0, 0, -(days - 1))

	stats, err := s.statsRepo.GetDailyStats(ctx, statType, from, now)
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]int64, len(stats))
	for _, stat := range stats {
		byDate[stat.StatDate] = stat.Count
	}

	today := now.Format(time.DateOnly)
	if live, err := redis.GetInt64(ctx, consts.StatsDailyKey+statType+":"+today); err == nil {
		byDate[today] = live
	}

	points := make([]*dto.DailyPointDTO, 0, days)
	for i := 0; i < days; i++ {
		day := from.AddDate(0, 0, i).Format(time.DateOnly)
		points = append(points, &dto.DailyPointDTO{
			Date:  day,
			Count: byDate[day],
		})
	}
	return &dto.StatsSeriesDTO{StatType: statType, Points: points}, nil
}

func (s *StatsServiceImpl) GetRecentEvents(ctx context.Context, eventType string, limit int64) ([]*dto.RecentEventDTO, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	events, err := s.eventRepo.GetRecentEvents(ctx, eventType, limit)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.RecentEventDTO, 0, len(events))
	for _, event := range events {
		result = append(result, &dto.RecentEventDTO{
			Type:       event.Type,
			UserID:     event.UserID,
			TargetID:   event.TargetID,
			OccurredAt: event.OccurredAt.Format(time.DateTime),
		})
	}
	return result, nil
}
