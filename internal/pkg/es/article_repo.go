package es

import (
	"context"
	"errors"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/goccy/go-json"
)

const MaxSearchDepth = 400

type ArticleRepo interface {
	SearchArticles(ctx context.Context, queryText string, from, size int) ([]*ArticleES, error)
	IndexArticle(ctx context.Context, article *ArticleES) error
	DeleteArticle(ctx context.Context, id uint64) error
}

type ArticleRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewArticleRepo(client *elasticsearch.TypedClient) ArticleRepo {
	return &ArticleRepoImpl{client: client}
}

// SearchArticles 标题/正文/标签多字段检索，标题权重最高
func (s *ArticleRepoImpl) SearchArticles(ctx context.Context, queryText string, from, size int) ([]*ArticleES, error) {
	if from >= MaxSearchDepth {
		return []*ArticleES{}, nil
	}

	req := s.client.Search().Index(ArticleIndex).From(from).Size(size)

	if queryText != "" {
		req = req.Query(&types.Query{
			MultiMatch: &types.MultiMatchQuery{
				Query:  queryText,
				Fields: []string{"title^3", "tags^2", "summary^2", "content"},
			},
		})
	} else {
		req = req.Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
			Sort(types.SortOptions{SortOptions: map[string]types.FieldSort{
				"created_at": {Order: &sortorder.Desc},
			}})
	}

	resp, err := req.Do(ctx)
	if err != nil {
		return nil, err
	}

	articles := make([]*ArticleES, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var article ArticleES
		if err := json.Unmarshal(hit.Source_, &article); err != nil {
			continue
		}
		articles = append(articles, &article)
	}
	return articles, nil
}

func (s *ArticleRepoImpl) IndexArticle(ctx context.Context, article *ArticleES) error {
	docID := strconv.FormatUint(article.ID, 10)

	_, err := s.client.Index(ArticleIndex).
		Id(docID).
		Document(article).
		Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == ConflictCode {
				return nil
			}
		}
		return err
	}
	return nil
}

func (s *ArticleRepoImpl) DeleteArticle(ctx context.Context, id uint64) error {
	docID := strconv.FormatUint(id, 10)

	_, err := s.client.Delete(ArticleIndex, docID).Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				return nil
			}
		}
		return err
	}
	return nil
}
