package service

import (
	"Kiosque/internal/api/dto"
	"Kiosque/internal/model"
	"Kiosque/internal/pkg/consts"
	"Kiosque/internal/repository"
	"context"
	"strings"
	"time"
)

type PollService interface {
	CreatePoll(ctx context.Context, userId uint64, createDTO *dto.CreatePollDTO) (*dto.PollDTO, error)
	GetPoll(ctx context.Context, id uint64) (*dto.PollDTO, error)
	ListPolls(ctx context.Context, limit int) ([]*dto.PollDTO, error)
	Vote(ctx context.Context, pollId, optionId uint64) (*dto.PollDTO, error)
	DeletePoll(ctx context.Context, id uint64) error
}

type PollServiceImpl struct {
	pollRepo repository.PollRepo
}

func NewPollService(pollRepo repository.PollRepo) PollService {
	return &PollServiceImpl{pollRepo: pollRepo}
}

func (s *PollServiceImpl) CreatePoll(ctx context.Context, userId uint64, createDTO *dto.CreatePollDTO) (*dto.PollDTO, error) {
	options := make([]model.PollOption, 0, len(createDTO.Options))
	for i, text := range createDTO.Options {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		options = append(options, model.PollOption{Text: text, Position: i})
	}
	if len(options) < 2 {
		return nil, ErrPollOptionTooFew
	}

	poll := &model.Poll{
		UserID:   userId,
		Question: createDTO.Question,
		Options:  options,
	}
	if err := s.pollRepo.CreatePoll(ctx, poll); err != nil {
		return nil, err
	}
	return toPollDTO(poll), nil
}

func (s *PollServiceImpl) GetPoll(ctx context.Context, id uint64) (*dto.PollDTO, error) {
	poll, err := s.pollRepo.GetPoll(ctx, id)
	if err != nil {
		return nil, err
	}
	if poll == nil {
		return nil, ErrPollNotFound
	}
	return toPollDTO(poll), nil
}

func (s *PollServiceImpl) ListPolls(ctx context.Context, limit int) ([]*dto.PollDTO, error) {
	if limit <= 0 || limit > 100 {
		limit = consts.DefaultPageSize
	}
	polls, err := s.pollRepo.ListPolls(ctx, limit)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.PollDTO, 0, len(polls))
	for _, poll := range polls {
		result = append(result, toPollDTO(poll))
	}
	return result, nil
}

// Vote 票数服务端原子自增，返回最新的选项分布
func (s *PollServiceImpl) Vote(ctx context.Context, pollId, optionId uint64) (*dto.PollDTO, error) {
	poll, err := s.pollRepo.GetPoll(ctx, pollId)
	if err != nil {
		return nil, err
	}
	if poll == nil {
		return nil, ErrPollNotFound
	}

	matched, err := s.pollRepo.VoteOption(ctx, pollId, optionId)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, ErrPollOptionNotFound
	}
	return s.GetPoll(ctx, pollId)
}

func (s *PollServiceImpl) DeletePoll(ctx context.Context, id uint64) error {
	poll, err := s.pollRepo.GetPoll(ctx, id)
	if err != nil {
		return err
	}
	if poll == nil {
		return ErrPollNotFound
	}
	return s.pollRepo.DeletePoll(ctx, id)
}

func toPollDTO(poll *model.Poll) *dto.PollDTO {
	options := make([]*dto.PollOptionDTO, 0, len(poll.Options))
	for _, option := range poll.Options {
		options = append(options, &dto.PollOptionDTO{
			ID:    option.ID,
			Text:  option.Text,
			Votes: option.Votes,
		})
	}
	return &dto.PollDTO{
		ID:        poll.ID,
		Question:  poll.Question,
		Options:   options,
		CreatedAt: poll.CreatedAt.Format(time.DateTime),
	}
}
