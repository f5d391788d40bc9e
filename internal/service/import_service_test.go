package service

import (
	"Kiosque/internal/api/dto"
	"Kiosque/internal/model"
	"Kiosque/internal/pkg/fetch"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	page *fetch.PageArticle
	err  error
}

func (f *fakeFetcher) FetchArticle(_ context.Context, _ string) (*fetch.PageArticle, error) {
	return f.page, f.err
}

func newImportFixture(t *testing.T, fetcher fetch.Fetcher) (ImportService, *fakeArticleRepo) {
	t.Helper()
	articleRepo := newFakeArticleRepo()
	categoryRepo := newFakeCategoryRepo(&model.Category{ID: 1, Name: "转载"})
	articleSvc := NewArticleService(articleRepo, categoryRepo, newFakeESRepo(), &fakeProducer{})
	return NewImportService(fetcher, categoryRepo, articleSvc), articleRepo
}

func TestImportFromURL(t *testing.T) {
	fetcher := &fakeFetcher{page: &fetch.PageArticle{
		Title:    "外部报道标题",
		Content:  "<p>正文</p>",
		Text:     "正文",
		Excerpt:  "正文摘要",
		ImageURL: "https://example.com/cover.jpg",
	}}
	svc, articleRepo := newImportFixture(t, fetcher)

	article, err := svc.ImportFromURL(context.Background(), 10, &dto.ImportArticleDTO{
		URL:        "https://example.com/news/1",
		CategoryID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "外部报道标题", article.Title)
	// 来源地址记录为作者
	assert.Equal(t, "https://example.com/news/1", article.Author)
	require.NotNil(t, article.Summary)
	assert.Equal(t, "正文摘要", *article.Summary)
	require.NotNil(t, article.ImageURL)
	assert.Equal(t, "https://example.com/cover.jpg", *article.ImageURL)
	assert.Len(t, articleRepo.articles, 1)
}

func TestImportFromURLFetchFailed(t *testing.T) {
	svc, _ := newImportFixture(t, &fakeFetcher{err: errors.New("连接超时")})

	_, err := svc.ImportFromURL(context.Background(), 10, &dto.ImportArticleDTO{
		URL:        "https://example.com/news/1",
		CategoryID: 1,
	})
	assert.ErrorIs(t, err, ErrImportFailed)
}

func TestImportFromURLEmptyBody(t *testing.T) {
	svc, _ := newImportFixture(t, &fakeFetcher{page: &fetch.PageArticle{Title: "只有标题"}})

	_, err := svc.ImportFromURL(context.Background(), 10, &dto.ImportArticleDTO{
		URL:        "https://example.com/news/1",
		CategoryID: 1,
	})
	assert.ErrorIs(t, err, ErrImportFailed)
}

func TestImportFromURLCategoryNotFound(t *testing.T) {
	svc, _ := newImportFixture(t, &fakeFetcher{page: &fetch.PageArticle{Title: "t", Text: "x", Content: "x"}})

	_, err := svc.ImportFromURL(context.Background(), 10, &dto.ImportArticleDTO{
		URL:        "https://example.com/news/1",
		CategoryID: 404,
	})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
