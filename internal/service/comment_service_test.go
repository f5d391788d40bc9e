package service

import (
	"Kiosque/internal/api/dto"
	"Kiosque/internal/model"
	"Kiosque/internal/pkg/consts"
	"Kiosque/internal/pkg/util"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentFixture(t *testing.T) (CommentService, *fakeCommentRepo, *fakeProducer) {
	t.Helper()
	articleRepo := newFakeArticleRepo(&model.Article{
		ID:         1,
		Title:      "道路施工公告",
		Content:    "下周一起主干道封闭施工",
		CategoryID: 1,
		Author:     "市政",
	})
	userRepo := newFakeUserRepo(
		&model.User{ID: 10, Email: "alice@example.com", DisplayName: util.PtrStr("Alice")},
		&model.User{ID: 11, Email: "bob@example.com"},
	)
	commentRepo := &fakeCommentRepo{}
	producer := &fakeProducer{}
	svc := NewCommentService(commentRepo, articleRepo, userRepo, producer)
	return svc, commentRepo, producer
}

func TestCreateCommentEmpty(t *testing.T) {
	svc, _, _ := newCommentFixture(t)

	_, err := svc.CreateComment(context.Background(), 10, 1, &dto.CreateCommentDTO{Content: "   \t  "})
	assert.ErrorIs(t, err, ErrCommentEmpty)
}

func TestCreateCommentArticleNotFound(t *testing.T) {
	svc, _, _ := newCommentFixture(t)

	_, err := svc.CreateComment(context.Background(), 10, 999, &dto.CreateCommentDTO{Content: "hi"})
	assert.ErrorIs(t, err, ErrArticleNotFound)
}

func TestCreateComment(t *testing.T) {
	svc, commentRepo, producer := newCommentFixture(t)

	comment, err := svc.CreateComment(context.Background(), 10, 1, &dto.CreateCommentDTO{Content: "  支持，早该修了  "})
	require.NoError(t, err)

	assert.Equal(t, "支持，早该修了", comment.Content)
	assert.Equal(t, "Alice", comment.UserName)
	assert.Equal(t, uint64(1), comment.ArticleID)
	require.Len(t, commentRepo.comments, 1)

	require.Len(t, producer.events, 1)
	assert.Equal(t, consts.EventTypeComment, producer.events[0].eventType)
	assert.Equal(t, uint64(10), producer.events[0].userId)
	assert.Equal(t, uint64(1), producer.events[0].targetId)
}

func TestCreateCommentFallsBackToEmail(t *testing.T) {
	svc, _, _ := newCommentFixture(t)

	comment, err := svc.CreateComment(context.Background(), 11, 1, &dto.CreateCommentDTO{Content: "收到"})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", comment.UserName)
}

func TestListCommentsNewestFirst(t *testing.T) {
	svc, _, _ := newCommentFixture(t)
	ctx := context.Background()

	for _, content := range []string{"第一条", "第二条", "第三条"} {
		_, err := svc.CreateComment(ctx, 10, 1, &dto.CreateCommentDTO{Content: content})
		require.NoError(t, err)
	}

	comments, err := svc.ListComments(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "第三条", comments[0].Content)
	assert.Equal(t, "第一条", comments[2].Content)

	limited, err := svc.ListComments(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	_, err = svc.ListComments(ctx, 999, 10)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}
