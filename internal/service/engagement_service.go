package service

import (
	"Kiosque/internal/api/dto"
	"Kiosque/internal/model"
	"Kiosque/internal/pkg/consts"
	"Kiosque/internal/pkg/kafka"
	"Kiosque/internal/pkg/redis"
	"Kiosque/internal/repository"
	"context"
	"strconv"
)

// 投票动作与字符串形式的双向映射，对外接口统一使用字符串
var voteActionNames = map[int8]string{
	model.VoteNone:    "none",
	model.VoteLike:    "like",
	model.VoteDislike: "dislike",
}

var voteActionValues = map[string]int8{
	"like":    model.VoteLike,
	"dislike": model.VoteDislike,
}

type EngagementService interface {
	ApplyVote(ctx context.Context, userId, articleId uint64, action string) (*dto.EngagementStateDTO, error)
	ToggleFavorite(ctx context.Context, userId, articleId uint64) (*dto.EngagementStateDTO, error)
	GetEngagementState(ctx context.Context, userId, articleId uint64) (*dto.EngagementStateDTO, error)
	ListFavorites(ctx context.Context, userId uint64) ([]*dto.ArticleDTO, error)
}

type EngagementServiceImpl struct {
	reactionRepo repository.ReactionRepo
	articleRepo  repository.ArticleRepo
	producer     kafka.EventProducer
}

func NewEngagementService(
	reactionRepo repository.ReactionRepo,
	articleRepo repository.ArticleRepo,
	producer kafka.EventProducer,
) EngagementService {
	return &EngagementServiceImpl{
		reactionRepo: reactionRepo,
		articleRepo:  articleRepo,
		producer:     producer,
	}
}

// ApplyVote 同票撤销、异票切换、空票新增，计数与投票记录在同一事务内落库
func (s *EngagementServiceImpl) ApplyVote(ctx context.Context, userId, articleId uint64, action string) (*dto.EngagementStateDTO, error) {
	requested, ok := voteActionValues[action]
	if !ok {
		return nil, ErrParamInvalid
	}

	article, err := s.articleRepo.GetArticle(ctx, articleId)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	result, err := s.reactionRepo.ApplyVote(ctx, userId, articleId, requested)
	if err != nil {
		return nil, err
	}

	if result.Action == model.VoteLike && result.DeltaLikes > 0 {
		s.producer.Publish(ctx, consts.EventTypeLike, userId, articleId)
	}

	return s.buildState(ctx, userId, articleId)
}

func (s *EngagementServiceImpl) ToggleFavorite(ctx context.Context, userId, articleId uint64) (*dto.EngagementStateDTO, error) {
	article, err := s.articleRepo.GetArticle(ctx, articleId)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	if _, err := s.reactionRepo.ToggleFavorite(ctx, userId, articleId); err != nil {
		return nil, err
	}
	return s.buildState(ctx, userId, articleId)
}

func (s *EngagementServiceImpl) GetEngagementState(ctx context.Context, userId, articleId uint64) (*dto.EngagementStateDTO, error) {
	article, err := s.articleRepo.GetArticle(ctx, articleId)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return s.buildState(ctx, userId, articleId)
}

func (s *EngagementServiceImpl) ListFavorites(ctx context.Context, userId uint64) ([]*dto.ArticleDTO, error) {
	ids, err := s.reactionRepo.ListFavorites(ctx, userId)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*dto.ArticleDTO{}, nil
	}

	articles, err := s.articleRepo.GetArticleByIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	// 保持收藏时间倒序
	byID := make(map[uint64]*model.Article, len(articles))
	for _, article := range articles {
		byID[article.ID] = article
	}
	result := make([]*dto.ArticleDTO, 0, len(ids))
	for _, id := range ids {
		if article, ok := byID[id]; ok {
			result = append(result, toArticleDTO(ctx, article))
		}
	}
	return result, nil
}

func (s *EngagementServiceImpl) buildState(ctx context.Context, userId, articleId uint64) (*dto.EngagementStateDTO, error) {
	article, err := s.articleRepo.GetArticle(ctx, articleId)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	reaction, err := s.reactionRepo.GetReaction(ctx, userId, articleId)
	if err != nil {
		return nil, err
	}

	views := int64(article.ViewsCount)
	if cached, err := redis.GetInt64(ctx, consts.ArticleViewKey+strconv.FormatUint(articleId, 10)); err == nil {
		views = cached
	}

	state := &dto.EngagementStateDTO{
		ArticleID:     articleId,
		Action:        voteActionNames[model.VoteNone],
		LikesCount:    int64(article.LikesCount),
		DislikesCount: int64(article.DislikesCount),
		CommentsCount: int64(article.CommentsCount),
		ViewsCount:    views,
	}
	if reaction != nil {
		state.Action = voteActionNames[reaction.Action]
		state.Favorite = reaction.Favorite
	}
	return state, nil
}
