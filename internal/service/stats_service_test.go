package service

import (
	"Kiosque/internal/model"
	"Kiosque/internal/pkg/consts"
	"Kiosque/internal/pkg/mongo"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func newStatsFixture(t *testing.T) (StatsService, *fakeStatsRepo, *fakeEventRepo) {
	t.Helper()
	now := time.Now()
	userRepo := newFakeUserRepo(
		// 1小时前登录：30天与24小时窗口都命中
		&model.User{ID: 1, Email: "a@example.com", LastLogin: timePtr(now.Add(-time.Hour))},
		// 10天前登录：只命中30天窗口
		&model.User{ID: 2, Email: "b@example.com", LastLogin: timePtr(now.AddDate(0, 0, -10))},
		// 从未登录
		&model.User{ID: 3, Email: "c@example.com"},
	)
	articleRepo := newFakeArticleRepo(&model.Article{ID: 1, Title: "x", CategoryID: 1, Author: "a"})
	articleRepo.totalLikes = 17
	articleRepo.totalComments = 42
	listingRepo := newFakeListingRepo(&model.Listing{ID: 1, Title: "y", CategoryID: 1})
	pollRepo := newFakePollRepo()
	_ = pollRepo.CreatePoll(context.Background(), &model.Poll{Question: "q", Options: []model.PollOption{{Text: "a"}, {Text: "b"}}})
	statsRepo := &fakeStatsRepo{}
	eventRepo := &fakeEventRepo{}
	svc := NewStatsService(userRepo, articleRepo, listingRepo, pollRepo, statsRepo, eventRepo)
	return svc, statsRepo, eventRepo
}

func TestGetOverview(t *testing.T) {
	svc, _, _ := newStatsFixture(t)

	overview, err := svc.GetOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), overview.TotalUsers)
	assert.Equal(t, int64(2), overview.ActiveUsers)
	assert.Equal(t, int64(1), overview.ActiveUsersToday)
	assert.Equal(t, int64(1), overview.TotalArticles)
	assert.Equal(t, int64(1), overview.TotalListings)
	assert.Equal(t, int64(1), overview.TotalPolls)
	assert.Equal(t, int64(17), overview.TotalLikes)
	assert.Equal(t, int64(42), overview.TotalComments)
}

func TestGetDailySeries(t *testing.T) {
	svc, statsRepo, _ := newStatsFixture(t)
	ctx := context.Background()

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1).Format(time.DateOnly)
	threeDaysAgo := now.AddDate(0, 0, -3).Format(time.DateOnly)
	require.NoError(t, statsRepo.UpsertDailyStat(ctx, consts.EventTypeView, yesterday, 120))
	require.NoError(t, statsRepo.UpsertDailyStat(ctx, consts.EventTypeView, threeDaysAgo, 80))
	// 其他类型的桶不串入
	require.NoError(t, statsRepo.UpsertDailyStat(ctx, consts.EventTypeLike, yesterday, 999))

	series, err := svc.GetDailySeries(ctx, consts.EventTypeView, 7)
	require.NoError(t, err)
	assert.Equal(t, consts.EventTypeView, series.StatType)
	require.Len(t, series.Points, 7)

	byDate := make(map[string]int64, len(series.Points))
	for i, point := range series.Points {
		byDate[point.Date] = point.Count
		if i > 0 {
			assert.Greater(t, point.Date, series.Points[i-1].Date)
		}
	}
	assert.Equal(t, int64(120), byDate[yesterday])
	assert.Equal(t, int64(80), byDate[threeDaysAgo])
	// 无数据的日期补零
	assert.Equal(t, int64(0), byDate[now.AddDate(0, 0, -2).Format(time.DateOnly)])
}

func TestGetDailySeriesClampsDays(t *testing.T) {
	svc, _, _ := newStatsFixture(t)
	ctx := context.Background()

	series, err := svc.GetDailySeries(ctx, consts.EventTypeView, 0)
	require.NoError(t, err)
	assert.Len(t, series.Points, 7)

	series, err = svc.GetDailySeries(ctx, consts.EventTypeView, 365)
	require.NoError(t, err)
	assert.Len(t, series.Points, 7)

	series, err = svc.GetDailySeries(ctx, consts.EventTypeView, 30)
	require.NoError(t, err)
	assert.Len(t, series.Points, 30)
}

func TestGetRecentEvents(t *testing.T) {
	svc, _, eventRepo := newStatsFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, eventRepo.CreateEvent(ctx, &mongo.EventModel{
			Type:       consts.EventTypeLike,
			UserID:     uint64(i + 1),
			TargetID:   7,
			OccurredAt: time.Now(),
		}))
	}

	events, err := svc.GetRecentEvents(ctx, consts.EventTypeLike, 10)
	require.NoError(t, err)
	assert.Len(t, events, 3)
	assert.Equal(t, consts.EventTypeLike, events[0].Type)

	// 超限与非法 limit 回落到默认值
	_, err = svc.GetRecentEvents(ctx, "", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(50), eventRepo.lastLimit)

	_, err = svc.GetRecentEvents(ctx, "", 5000)
	require.NoError(t, err)
	assert.Equal(t, int64(50), eventRepo.lastLimit)
}
