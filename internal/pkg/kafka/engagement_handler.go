package kafka

import (
	"Kiosque/internal/pkg/consts"
	"Kiosque/internal/pkg/mongo"
	"Kiosque/internal/pkg/redis"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// 日桶保留 40 天，落库任务的取数窗口远小于该值
const dailyBucketTTL = 40 * 24 * time.Hour

// EngagementHandler 消费行为事件：
// 1. Redis 日桶计数自增，供当日统计实时读取
// 2. 事件明细写入 Mongo，供管理端追溯
// 3. 浏览事件额外累加文章浏览计数并标脏，等待定时任务回写 MySQL
type EngagementHandler struct {
	eventRepo mongo.EventRepo
}

func NewEngagementHandler(eventRepo mongo.EventRepo) *EngagementHandler {
	return &EngagementHandler{eventRepo: eventRepo}
}

func (s *EngagementHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("engagement event consumer setup")
	return nil
}

func (s *EngagementHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("engagement event consumer cleanup")
	return nil
}

func (s *EngagementHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("engagement event consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("engagement event process batch error", "err", err)
		return err
	}
	return nil
}

func (s *EngagementHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event EngagementEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("unmarshal engagement event error", "err", err)
		// 脏消息重试无意义，直接丢弃
		return nil
	}
	if event.Type == "" {
		return nil
	}

	if err := s.incrDailyBucket(ctx, &event); err != nil {
		return err
	}

	if event.Type == consts.EventTypeView && event.TargetID > 0 {
		if err := s.trackView(ctx, event.TargetID); err != nil {
			return err
		}
	}

	err := s.eventRepo.CreateEvent(ctx, &mongo.EventModel{
		Type:       event.Type,
		UserID:     event.UserID,
		TargetID:   event.TargetID,
		OccurredAt: event.OccurredAt,
	})
	if err != nil {
		log.ErrorContext(ctx, "save engagement event error", "err", err)
		return err
	}
	return nil
}

func (s *EngagementHandler) incrDailyBucket(ctx context.Context, event *EngagementEvent) error {
	day := event.OccurredAt.Format(time.DateOnly)
	key := consts.StatsDailyKey + event.Type + ":" + day
	if err := redis.Incr(ctx, key); err != nil {
		return err
	}
	return redis.Expire(ctx, key, dailyBucketTTL)
}

func (s *EngagementHandler) trackView(ctx context.Context, articleId uint64) error {
	idStr := strconv.FormatUint(articleId, 10)
	if err := redis.Incr(ctx, consts.ArticleViewKey+idStr); err != nil {
		return err
	}
	return redis.SAdd(ctx, consts.ArticleDirtyKey, idStr)
}
