package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveVote(t *testing.T) {
	cases := []struct {
		name      string
		prev      int8
		requested int8
		next      int8
		dLikes    int
		dDislikes int
	}{
		{"首次点赞", VoteNone, VoteLike, VoteLike, 1, 0},
		{"首次点踩", VoteNone, VoteDislike, VoteDislike, 0, 1},
		{"重复点赞撤销", VoteLike, VoteLike, VoteNone, -1, 0},
		{"重复点踩撤销", VoteDislike, VoteDislike, VoteNone, 0, -1},
		{"点赞切换点踩", VoteLike, VoteDislike, VoteDislike, -1, 1},
		{"点踩切换点赞", VoteDislike, VoteLike, VoteLike, 1, -1},
		{"非法动作不变更", VoteLike, VoteNone, VoteLike, 0, 0},
		{"越界动作不变更", VoteNone, 99, VoteNone, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			next, dLikes, dDislikes := ResolveVote(c.prev, c.requested)
			assert.Equal(t, c.next, next)
			assert.Equal(t, c.dLikes, dLikes)
			assert.Equal(t, c.dDislikes, dDislikes)
		})
	}
}

// 任意投票序列后计数增量之和等于处于对应状态的行数，单步绝对值不超过 1
func TestResolveVoteDeltaBounds(t *testing.T) {
	actions := []int8{VoteLike, VoteDislike, VoteLike, VoteLike, VoteDislike, VoteDislike, VoteLike}

	state := VoteNone
	likes, dislikes := 0, 0
	for _, requested := range actions {
		next, dLikes, dDislikes := ResolveVote(state, requested)
		assert.LessOrEqual(t, dLikes*dLikes, 1)
		assert.LessOrEqual(t, dDislikes*dDislikes, 1)
		state = next
		likes += dLikes
		dislikes += dDislikes
	}

	assert.GreaterOrEqual(t, likes, 0)
	assert.GreaterOrEqual(t, dislikes, 0)
	switch state {
	case VoteLike:
		assert.Equal(t, 1, likes)
		assert.Equal(t, 0, dislikes)
	case VoteDislike:
		assert.Equal(t, 0, likes)
		assert.Equal(t, 1, dislikes)
	default:
		assert.Equal(t, 0, likes)
		assert.Equal(t, 0, dislikes)
	}
}
