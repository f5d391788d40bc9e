package repository

import (
	"Kiosque/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// ArticleFilter 列表查询条件，零值字段不参与过滤
type ArticleFilter struct {
	CategoryID uint64
	Scope      string
}

type ArticleRepo interface {
	CreateArticle(ctx context.Context, article *model.Article) error
	GetArticle(ctx context.Context, id uint64) (*model.Article, error)
	GetArticleByIds(ctx context.Context, ids []uint64) ([]*model.Article, error)
	ListArticles(ctx context.Context, filter ArticleFilter, limit int) ([]*model.Article, error)
	DeleteArticle(ctx context.Context, id uint64) error
	ApplyCounterDeltas(ctx context.Context, id uint64, dLikes, dDislikes int) error
	UpdateViewsCount(ctx context.Context, id uint64, views int64) error
	CountArticles(ctx context.Context) (int64, error)
	SumLikes(ctx context.Context) (int64, error)
	SumComments(ctx context.Context) (int64, error)
}

type ArticleRepoImpl struct {
	db *gorm.DB
}

func NewArticleRepo(db *gorm.DB) ArticleRepo {
	return &ArticleRepoImpl{db: db}
}

func (s *ArticleRepoImpl) CreateArticle(ctx context.Context, article *model.Article) error {
	return s.db.WithContext(ctx).Create(article).Error
}

func (s *ArticleRepoImpl) GetArticle(ctx context.Context, id uint64) (*model.Article, error) {
	var article model.Article
	err := s.db.WithContext(ctx).
		Preload("Category").
		First(&article, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (s *ArticleRepoImpl) GetArticleByIds(ctx context.Context, ids []uint64) ([]*model.Article, error) {
	var articles []*model.Article
	err := s.db.WithContext(ctx).
		Preload("Category").
		Where("id IN ?", ids).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// ListArticles 按创建时间倒序返回第一页
func (s *ArticleRepoImpl) ListArticles(ctx context.Context, filter ArticleFilter, limit int) ([]*model.Article, error) {
	var articles []*model.Article
	query := s.db.WithContext(ctx).Preload("Category")
	if filter.CategoryID > 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Scope != "" {
		query = query.Where("scope = ?", filter.Scope)
	}
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&articles).Error
	return articles, err
}

// DeleteArticle 硬删除文章并级联清理评论与投票记录
func (s *ArticleRepoImpl) DeleteArticle(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", id).Delete(&model.ArticleReaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Article{}, id).Error
	})
}

// ApplyCounterDeltas 以服务端原子增量更新点赞/点踩计数
func (s *ArticleRepoImpl) ApplyCounterDeltas(ctx context.Context, id uint64, dLikes, dDislikes int) error {
	updates := map[string]interface{}{}
	if dLikes != 0 {
		updates["likes_count"] = gorm.Expr("likes_count + ?", dLikes)
	}
	if dDislikes != 0 {
		updates["dislikes_count"] = gorm.Expr("dislikes_count + ?", dDislikes)
	}
	if len(updates) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Model(&model.Article{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (s *ArticleRepoImpl) UpdateViewsCount(ctx context.Context, id uint64, views int64) error {
	return s.db.WithContext(ctx).Model(&model.Article{}).
		Where("id = ?", id).
		Update("views_count", views).Error
}

func (s *ArticleRepoImpl) CountArticles(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Article{}).Count(&count).Error
	return count, err
}

func (s *ArticleRepoImpl) SumLikes(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Article{}).
		Select("COALESCE(SUM(likes_count), 0)").
		Scan(&total).Error
	return total, err
}

func (s *ArticleRepoImpl) SumComments(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Article{}).
		Select("COALESCE(SUM(comments_count), 0)").
		Scan(&total).Error
	return total, err
}
