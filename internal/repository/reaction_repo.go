package repository

import (
	"Kiosque/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReactionRepo interface {
	ApplyVote(ctx context.Context, userId, articleId uint64, requested int8) (*model.VoteResult, error)
	ToggleFavorite(ctx context.Context, userId, articleId uint64) (bool, error)
	GetReaction(ctx context.Context, userId, articleId uint64) (*model.ArticleReaction, error)
	ListFavorites(ctx context.Context, userId uint64) ([]uint64, error)
}

type ReactionRepoImpl struct {
	db *gorm.DB
}

func NewReactionRepo(db *gorm.DB) ReactionRepo {
	return &ReactionRepoImpl{db: db}
}

// ApplyVote 在单个事务内完成投票状态机流转与文章计数增量，
// 对 reaction 行加排他锁避免同一用户并发投票交叉写入
func (s *ReactionRepoImpl) ApplyVote(ctx context.Context, userId, articleId uint64, requested int8) (*model.VoteResult, error) {
	var result model.VoteResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reaction model.ArticleReaction
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND article_id = ?", userId, articleId).
			First(&reaction).Error
		fresh := false
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			fresh = true
			reaction = model.ArticleReaction{
				UserID:    userId,
				ArticleID: articleId,
				Action:    model.VoteNone,
			}
		}

		next, dLikes, dDislikes := model.ResolveVote(reaction.Action, requested)
		result = model.VoteResult{Action: next, DeltaLikes: dLikes, DeltaDislikes: dDislikes}
		if dLikes == 0 && dDislikes == 0 && next == reaction.Action {
			return nil
		}

		reaction.Action = next
		reaction.UpdatedAt = time.Now()
		if fresh {
			if err := tx.Create(&reaction).Error; err != nil {
				return err
			}
		} else {
			err := tx.Model(&model.ArticleReaction{}).
				Where("user_id = ? AND article_id = ?", userId, articleId).
				Update("action", next).Error
			if err != nil {
				return err
			}
		}

		updates := map[string]interface{}{}
		if dLikes != 0 {
			updates["likes_count"] = gorm.Expr("likes_count + ?", dLikes)
		}
		if dDislikes != 0 {
			updates["dislikes_count"] = gorm.Expr("dislikes_count + ?", dDislikes)
		}
		if len(updates) > 0 {
			err := tx.Model(&model.Article{}).
				Where("id = ?", articleId).
				Updates(updates).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ToggleFavorite 翻转收藏标记，返回翻转后的状态
func (s *ReactionRepoImpl) ToggleFavorite(ctx context.Context, userId, articleId uint64) (bool, error) {
	var favorite bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reaction model.ArticleReaction
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND article_id = ?", userId, articleId).
			First(&reaction).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			favorite = true
			return tx.Create(&model.ArticleReaction{
				UserID:    userId,
				ArticleID: articleId,
				Action:    model.VoteNone,
				Favorite:  true,
			}).Error
		}
		favorite = !reaction.Favorite
		return tx.Model(&model.ArticleReaction{}).
			Where("user_id = ? AND article_id = ?", userId, articleId).
			Update("favorite", favorite).Error
	})
	if err != nil {
		return false, err
	}
	return favorite, nil
}

func (s *ReactionRepoImpl) GetReaction(ctx context.Context, userId, articleId uint64) (*model.ArticleReaction, error) {
	var reaction model.ArticleReaction
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND article_id = ?", userId, articleId).
		First(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reaction, nil
}

func (s *ReactionRepoImpl) ListFavorites(ctx context.Context, userId uint64) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.ArticleReaction{}).
		Where("user_id = ? AND favorite = ?", userId, true).
		Order("updated_at DESC").
		Pluck("article_id", &ids).Error
	return ids, err
}
