package repository

import (
	"Kiosque/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PollRepo interface {
	CreatePoll(ctx context.Context, poll *model.Poll) error
	GetPoll(ctx context.Context, id uint64) (*model.Poll, error)
	ListPolls(ctx context.Context, limit int) ([]*model.Poll, error)
	VoteOption(ctx context.Context, pollId, optionId uint64) (bool, error)
	DeletePoll(ctx context.Context, id uint64) error
	CountPolls(ctx context.Context) (int64, error)
}

type PollRepoImpl struct {
	db *gorm.DB
}

func NewPollRepo(db *gorm.DB) PollRepo {
	return &PollRepoImpl{db: db}
}

// CreatePoll 同一事务写入问卷与全部选项
func (s *PollRepoImpl) CreatePoll(ctx context.Context, poll *model.Poll) error {
	return s.db.WithContext(ctx).Create(poll).Error
}

func (s *PollRepoImpl) GetPoll(ctx context.Context, id uint64) (*model.Poll, error) {
	var poll model.Poll
	err := s.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&poll, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &poll, nil
}

func (s *PollRepoImpl) ListPolls(ctx context.Context, limit int) ([]*model.Poll, error) {
	var polls []*model.Poll
	err := s.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Limit(limit).
		Find(&polls).Error
	return polls, err
}

// VoteOption 原子递增选项票数，返回是否命中该问卷下的选项
func (s *PollRepoImpl) VoteOption(ctx context.Context, pollId, optionId uint64) (bool, error) {
	result := s.db.WithContext(ctx).Model(&model.PollOption{}).
		Where("id = ? AND poll_id = ?", optionId, pollId).
		Update("votes", gorm.Expr("votes + 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *PollRepoImpl) DeletePoll(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("poll_id = ?", id).Delete(&model.PollOption{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Poll{}, id).Error
	})
}

func (s *PollRepoImpl) CountPolls(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Poll{}).Count(&count).Error
	return count, err
}
