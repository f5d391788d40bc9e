package service

import (
	"Kiosque/internal/model"
	"Kiosque/internal/pkg/consts"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngagementFixture(t *testing.T) (EngagementService, *fakeArticleRepo, *fakeReactionRepo, *fakeProducer) {
	t.Helper()
	articleRepo := newFakeArticleRepo(&model.Article{
		ID:         1,
		Title:      "社区停水通知",
		Content:    "今晚十点后停水检修",
		CategoryID: 1,
		Author:     "物业",
	})
	reactionRepo := newFakeReactionRepo(articleRepo)
	producer := &fakeProducer{}
	return NewEngagementService(reactionRepo, articleRepo, producer), articleRepo, reactionRepo, producer
}

func TestApplyVoteInvalidAction(t *testing.T) {
	svc, _, _, _ := newEngagementFixture(t)

	_, err := svc.ApplyVote(context.Background(), 10, 1, "upvote")
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestApplyVoteArticleNotFound(t *testing.T) {
	svc, _, _, _ := newEngagementFixture(t)

	_, err := svc.ApplyVote(context.Background(), 10, 999, "like")
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestApplyVoteLifecycle(t *testing.T) {
	svc, articleRepo, _, producer := newEngagementFixture(t)
	ctx := context.Background()

	// 首次点赞
	state, err := svc.ApplyVote(ctx, 10, 1, "like")
	require.NoError(t, err)
	assert.Equal(t, "like", state.Action)
	assert.Equal(t, int64(1), state.LikesCount)
	assert.Equal(t, int64(0), state.DislikesCount)
	require.Len(t, producer.events, 1)
	assert.Equal(t, consts.EventTypeLike, producer.events[0].eventType)

	// 重复点赞撤销，不再发事件
	state, err = svc.ApplyVote(ctx, 10, 1, "like")
	require.NoError(t, err)
	assert.Equal(t, "none", state.Action)
	assert.Equal(t, int64(0), state.LikesCount)
	assert.Len(t, producer.events, 1)

	// 再点赞后切换点踩，两个计数同时变化
	_, err = svc.ApplyVote(ctx, 10, 1, "like")
	require.NoError(t, err)
	state, err = svc.ApplyVote(ctx, 10, 1, "dislike")
	require.NoError(t, err)
	assert.Equal(t, "dislike", state.Action)
	assert.Equal(t, int64(0), state.LikesCount)
	assert.Equal(t, int64(1), state.DislikesCount)

	article := articleRepo.articles[1]
	assert.Equal(t, 0, article.LikesCount)
	assert.Equal(t, 1, article.DislikesCount)
}

func TestApplyVoteIndependentUsers(t *testing.T) {
	svc, articleRepo, _, _ := newEngagementFixture(t)
	ctx := context.Background()

	_, err := svc.ApplyVote(ctx, 10, 1, "like")
	require.NoError(t, err)
	_, err = svc.ApplyVote(ctx, 11, 1, "like")
	require.NoError(t, err)

	assert.Equal(t, 2, articleRepo.articles[1].LikesCount)

	// 一个用户撤销不影响另一个
	state, err := svc.ApplyVote(ctx, 10, 1, "like")
	require.NoError(t, err)
	assert.Equal(t, "none", state.Action)
	assert.Equal(t, int64(1), state.LikesCount)

	other, err := svc.GetEngagementState(ctx, 11, 1)
	require.NoError(t, err)
	assert.Equal(t, "like", other.Action)
}

func TestToggleFavorite(t *testing.T) {
	svc, _, _, _ := newEngagementFixture(t)
	ctx := context.Background()

	state, err := svc.ToggleFavorite(ctx, 10, 1)
	require.NoError(t, err)
	assert.True(t, state.Favorite)

	state, err = svc.ToggleFavorite(ctx, 10, 1)
	require.NoError(t, err)
	assert.False(t, state.Favorite)

	_, err = svc.ToggleFavorite(ctx, 10, 999)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestFavoriteIndependentOfVote(t *testing.T) {
	svc, _, _, _ := newEngagementFixture(t)
	ctx := context.Background()

	_, err := svc.ToggleFavorite(ctx, 10, 1)
	require.NoError(t, err)

	// 撤销点赞不影响收藏标记
	_, err = svc.ApplyVote(ctx, 10, 1, "like")
	require.NoError(t, err)
	state, err := svc.ApplyVote(ctx, 10, 1, "like")
	require.NoError(t, err)
	assert.Equal(t, "none", state.Action)
	assert.True(t, state.Favorite)
}

func TestGetEngagementStateFresh(t *testing.T) {
	svc, _, _, _ := newEngagementFixture(t)

	state, err := svc.GetEngagementState(context.Background(), 42, 1)
	require.NoError(t, err)
	assert.Equal(t, "none", state.Action)
	assert.False(t, state.Favorite)
	assert.Equal(t, int64(0), state.LikesCount)
}

func TestListFavorites(t *testing.T) {
	articleRepo := newFakeArticleRepo(
		&model.Article{ID: 1, Title: "一", CategoryID: 1, Author: "a"},
		&model.Article{ID: 2, Title: "二", CategoryID: 1, Author: "a"},
	)
	reactionRepo := newFakeReactionRepo(articleRepo)
	svc := NewEngagementService(reactionRepo, articleRepo, &fakeProducer{})
	ctx := context.Background()

	empty, err := svc.ListFavorites(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = svc.ToggleFavorite(ctx, 10, 1)
	require.NoError(t, err)
	_, err = svc.ToggleFavorite(ctx, 10, 2)
	require.NoError(t, err)

	favorites, err := svc.ListFavorites(ctx, 10)
	require.NoError(t, err)
	require.Len(t, favorites, 2)

	// 取消一个收藏后不再返回
	_, err = svc.ToggleFavorite(ctx, 10, 1)
	require.NoError(t, err)
	favorites, err = svc.ListFavorites(ctx, 10)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, uint64(2), favorites[0].ID)
}
