package service

import (
	"Kiosque/internal/api/dto"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePollTooFewOptions(t *testing.T) {
	svc := NewPollService(newFakePollRepo())
	ctx := context.Background()

	_, err := svc.CreatePoll(ctx, 1, &dto.CreatePollDTO{
		Question: "只有一个选项",
		Options:  []string{"唯一"},
	})
	assert.ErrorIs(t, err, ErrPollOptionTooFew)

	// 空白选项剔除后不足两个
	_, err = svc.CreatePoll(ctx, 1, &dto.CreatePollDTO{
		Question: "空白选项",
		Options:  []string{"有效", "   ", "\t"},
	})
	assert.ErrorIs(t, err, ErrPollOptionTooFew)
}

func TestCreatePollTrimsOptions(t *testing.T) {
	svc := NewPollService(newFakePollRepo())

	poll, err := svc.CreatePoll(context.Background(), 1, &dto.CreatePollDTO{
		Question: "小区健身房开放时段？",
		Options:  []string{" 早六点到八点 ", "晚七点到十点", "  "},
	})
	require.NoError(t, err)
	require.Len(t, poll.Options, 2)
	assert.Equal(t, "早六点到八点", poll.Options[0].Text)
	assert.Equal(t, "晚七点到十点", poll.Options[1].Text)
	for _, option := range poll.Options {
		assert.Equal(t, 0, option.Votes)
	}
}

func TestPollVote(t *testing.T) {
	repo := newFakePollRepo()
	svc := NewPollService(repo)
	ctx := context.Background()

	created, err := svc.CreatePoll(ctx, 1, &dto.CreatePollDTO{
		Question: "是否支持加装电梯？",
		Options:  []string{"支持", "反对"},
	})
	require.NoError(t, err)

	_, err = svc.Vote(ctx, 999, created.Options[0].ID)
	assert.ErrorIs(t, err, ErrPollNotFound)

	_, err = svc.Vote(ctx, created.ID, 424242)
	assert.ErrorIs(t, err, ErrPollOptionNotFound)

	poll, err := svc.Vote(ctx, created.ID, created.Options[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, poll.Options[0].Votes)
	assert.Equal(t, 0, poll.Options[1].Votes)

	poll, err = svc.Vote(ctx, created.ID, created.Options[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 2, poll.Options[0].Votes)
}

func TestDeletePoll(t *testing.T) {
	svc := NewPollService(newFakePollRepo())
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeletePoll(ctx, 999), ErrPollNotFound)

	created, err := svc.CreatePoll(ctx, 1, &dto.CreatePollDTO{
		Question: "临时议题",
		Options:  []string{"a", "b"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePoll(ctx, created.ID))
	_, err = svc.GetPoll(ctx, created.ID)
	assert.ErrorIs(t, err, ErrPollNotFound)
}
