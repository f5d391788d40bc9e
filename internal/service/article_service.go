package service

import (
	"Kiosque/internal/api/dto"
	"Kiosque/internal/model"
	"Kiosque/internal/pkg/consts"
	"Kiosque/internal/pkg/es"
	"Kiosque/internal/pkg/kafka"
	"Kiosque/internal/pkg/llm"
	"Kiosque/internal/pkg/redis"
	"Kiosque/internal/pkg/util"
	"Kiosque/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"
)

type ArticleService interface {
	CreateArticle(ctx context.Context, userId uint64, createDTO *dto.CreateArticleDTO) (*dto.ArticleDTO, error)
	GetArticle(ctx context.Context, userId, id uint64) (*dto.ArticleDTO, error)
	ListArticles(ctx context.Context, categoryId uint64, scope string, limit int) ([]*dto.ArticleDTO, error)
	DeleteArticle(ctx context.Context, id uint64) error
	SearchArticles(ctx context.Context, queryText string, from, size int) ([]*dto.ArticleDTO, error)
}

type ArticleServiceImpl struct {
	articleRepo  repository.ArticleRepo
	categoryRepo repository.CategoryRepo
	esRepo       es.ArticleRepo
	producer     kafka.EventProducer
}

func NewArticleService(
	articleRepo repository.ArticleRepo,
	categoryRepo repository.CategoryRepo,
	esRepo es.ArticleRepo,
	producer kafka.EventProducer,
) ArticleService {
	return &ArticleServiceImpl{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		esRepo:       esRepo,
		producer:     producer,
	}
}

func (s *ArticleServiceImpl) CreateArticle(ctx context.Context, userId uint64, createDTO *dto.CreateArticleDTO) (*dto.ArticleDTO, error) {
	category, err := s.categoryRepo.GetCategory(ctx, createDTO.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	scope := createDTO.Scope
	if scope == "" {
		scope = "public"
	}

	article := &model.Article{
		UserID:     userId,
		Title:      createDTO.Title,
		Content:    createDTO.Content,
		Summary:    createDTO.Summary,
		CategoryID: createDTO.CategoryID,
		Author:     createDTO.Author,
		Tags:       util.NormalizeTags(createDTO.Tags),
		ImageURL:   createDTO.ImageURL,
		VideoURL:   createDTO.VideoURL,
		Scope:      scope,
	}

	// 未提供摘要时尝试 AI 生成，不可用则保持为空
	if article.Summary == nil && llm.Enabled() {
		if assist, err := llm.SummarizeArticle(ctx, article.Title, article.Content); err == nil {
			article.Summary = &assist.Summary
			if len(article.Tags) == 0 {
				article.Tags = util.NormalizeTags(assist.Tags)
			}
		}
	}

	if err := s.articleRepo.CreateArticle(ctx, article); err != nil {
		return nil, err
	}
	article.Category = *category

	if err := s.esRepo.IndexArticle(ctx, toArticleES(article)); err != nil {
		log.ErrorContext(ctx, "index article error", "articleID", article.ID, "err", err)
	}

	return toArticleDTO(ctx, article), nil
}

func (s *ArticleServiceImpl) GetArticle(ctx context.Context, userId, id uint64) (*dto.ArticleDTO, error) {
	article, err := s.articleRepo.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	s.producer.Publish(ctx, consts.EventTypeView, userId, id)
	return toArticleDTO(ctx, article), nil
}

func (s *ArticleServiceImpl) ListArticles(ctx context.Context, categoryId uint64, scope string, limit int) ([]*dto.ArticleDTO, error) {
	if limit <= 0 || limit > 100 {
		limit = consts.DefaultPageSize
	}
	articles, err := s.articleRepo.ListArticles(ctx, repository.ArticleFilter{
		CategoryID: categoryId,
		Scope:      scope,
	}, limit)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.ArticleDTO, 0, len(articles))
	for _, article := range articles {
		result = append(result, toArticleDTO(ctx, article))
	}
	return result, nil
}

// DeleteArticle 级联删除评论与投票记录，同时清理 ES 文档与 Redis 计数
func (s *ArticleServiceImpl) DeleteArticle(ctx context.Context, id uint64) error {
	article, err := s.articleRepo.GetArticle(ctx, id)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrArticleNotFound
	}

	if err := s.articleRepo.DeleteArticle(ctx, id); err != nil {
		return err
	}

	if err := s.esRepo.DeleteArticle(ctx, id); err != nil {
		log.ErrorContext(ctx, "delete article from es error", "articleID", id, "err", err)
	}

	idStr := strconv.FormatUint(id, 10)
	_ = redis.DeleteKey(ctx,
		consts.ArticleLikeKey+idStr,
		consts.ArticleDislikeKey+idStr,
		consts.ArticleCommentKey+idStr,
		consts.ArticleViewKey+idStr,
	)
	return nil
}

func (s *ArticleServiceImpl) SearchArticles(ctx context.Context, queryText string, from, size int) ([]*dto.ArticleDTO, error) {
	if size <= 0 || size > 100 {
		size = consts.DefaultPageSize
	}
	hits, err := s.esRepo.SearchArticles(ctx, queryText, from, size)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return []*dto.ArticleDTO{}, nil
	}

	ids := make([]uint64, 0, len(hits))
	for _, hit := range hits {
		ids = append(ids, hit.ID)
	}
	articles, err := s.articleRepo.GetArticleByIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	// 保持 ES 的相关度顺序
	byID := make(map[uint64]*model.Article, len(articles))
	for _, article := range articles {
		byID[article.ID] = article
	}
	result := make([]*dto.ArticleDTO, 0, len(hits))
	for _, hit := range hits {
		if article, ok := byID[hit.ID]; ok {
			result = append(result, toArticleDTO(ctx, article))
		}
	}
	return result, nil
}

// toArticleDTO 浏览计数以 Redis 实时值优先，未命中时回退数据库快照
func toArticleDTO(ctx context.Context, article *model.Article) *dto.ArticleDTO {
	views := int64(article.ViewsCount)
	idStr := strconv.FormatUint(article.ID, 10)
	if cached, err := redis.GetInt64(ctx, consts.ArticleViewKey+idStr); err == nil {
		views = cached
	}

	tags := article.Tags
	if tags == nil {
		tags = []string{}
	}

	return &dto.ArticleDTO{
		ID:            article.ID,
		Title:         article.Title,
		Content:       article.Content,
		Summary:       article.Summary,
		CategoryID:    article.CategoryID,
		CategoryName:  article.Category.Name,
		Author:        article.Author,
		Tags:          tags,
		LikesCount:    int64(article.LikesCount),
		DislikesCount: int64(article.DislikesCount),
		CommentsCount: int64(article.CommentsCount),
		ViewsCount:    views,
		ImageURL:      article.ImageURL,
		VideoURL:      article.VideoURL,
		Scope:         article.Scope,
		CreatedAt:     article.CreatedAt.Format(time.DateTime),
	}
}

func toArticleES(article *model.Article) *es.ArticleES {
	summary := ""
	if article.Summary != nil {
		summary = *article.Summary
	}
	return &es.ArticleES{
		ID:           article.ID,
		Title:        article.Title,
		Content:      article.Content,
		Summary:      summary,
		Author:       article.Author,
		CategoryID:   article.CategoryID,
		CategoryName: article.Category.Name,
		Tags:         article.Tags,
		Scope:        article.Scope,
		CreatedAt:    article.CreatedAt,
	}
}
