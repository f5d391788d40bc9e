package repository

import (
	"Kiosque/internal/model"
	"context"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	ListByArticle(ctx context.Context, articleId uint64, limit int) ([]*model.Comment, error)
	CountComments(ctx context.Context) (int64, error)
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

// CreateComment 写入评论并在同一事务内递增文章评论计数
func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return tx.Model(&model.Article{}).
			Where("id = ?", comment.ArticleID).
			Update("comments_count", gorm.Expr("comments_count + 1")).Error
	})
}

// ListByArticle 按创建时间倒序返回评论，最新在前
func (s *CommentRepoImpl) ListByArticle(ctx context.Context, articleId uint64, limit int) ([]*model.Comment, error) {
	var comments []*model.Comment
	query := s.db.WithContext(ctx).
		Where("article_id = ?", articleId).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&comments).Error
	return comments, err
}

func (s *CommentRepoImpl) CountComments(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).Count(&count).Error
	return count, err
}
