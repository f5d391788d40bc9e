package cron

import (
	"Kiosque/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine         *cron.Cron
	counterSyncJob *job.CounterSyncJob
	dailyStatsJob  *job.DailyStatsJob
}

func NewCronManager(counterSyncJob *job.CounterSyncJob, dailyStatsJob *job.DailyStatsJob) *Manager {
	return &Manager{
		engine:         cron.New(cron.WithSeconds()),
		counterSyncJob: counterSyncJob,
		dailyStatsJob:  dailyStatsJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	// 浏览计数每 5 分钟回写一次
	if _, err := s.engine.AddJob("0 */5 * * * *", s.counterSyncJob); err != nil {
		return err
	}
	// 日统计每 10 分钟刷写一次
	if _, err := s.engine.AddJob("0 */10 * * * *", s.dailyStatsJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
