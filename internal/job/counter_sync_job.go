package job

import (
	"Kiosque/internal/pkg/consts"
	"Kiosque/internal/pkg/logger"
	"Kiosque/internal/pkg/redis"
	"Kiosque/internal/pkg/util"
	"Kiosque/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// CounterSyncJob 将 Redis 中标脏文章的浏览计数回写 MySQL
type CounterSyncJob struct {
	articleRepo repository.ArticleRepo
}

func NewCounterSyncJob(articleRepo repository.ArticleRepo) *CounterSyncJob {
	return &CounterSyncJob{articleRepo: articleRepo}
}

func (s *CounterSyncJob) Run() {
	traceID := "job-counter-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 多实例部署时同一时刻只允许一个实例回写
	lockValue := uuid.NewString()
	locked, err := redis.TryLock(ctx, consts.CounterSyncLockKey, lockValue, time.Minute, 0)
	if err != nil || !locked {
		return
	}
	defer redis.UnLock(ctx, consts.CounterSyncLockKey, lockValue)

	// 脏集合改名为处理中集合，新的标脏不受本轮影响
	processingKey := consts.ArticleDirtyKey + ":processing"
	if err := redis.Rename(ctx, consts.ArticleDirtyKey, processingKey); err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get article dirty set error", "err", err)
		return
	}

	articleIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert article set to int slice error", "err", err)
		return
	}

	synced := 0
	for _, aid := range articleIDs {
		idStr := strconv.FormatUint(aid, 10)
		views, err := redis.GetInt64(ctx, consts.ArticleViewKey+idStr)
		if err != nil {
			continue
		}
		if err := s.articleRepo.UpdateViewsCount(ctx, aid, views); err != nil {
			log.ErrorContext(ctx, "update article views error", "aid", aid, "err", err)
			continue
		}
		synced++
	}

	if err := redis.DeleteKey(ctx, processingKey); err != nil {
		log.ErrorContext(ctx, "delete article processing set error", "err", err)
	}

	log.InfoContext(ctx, "sync article view counts success",
		"dirty_count", len(articleIDs),
		"synced_count", synced)
}
