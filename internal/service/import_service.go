package service

import (
	"Kiosque/internal/api/dto"
	"Kiosque/internal/pkg/fetch"
	"Kiosque/internal/pkg/llm"
	"Kiosque/internal/repository"
	"context"
	log "log/slog"
)

type ImportService interface {
	ImportFromURL(ctx context.Context, userId uint64, importDTO *dto.ImportArticleDTO) (*dto.ArticleDTO, error)
}

type ImportServiceImpl struct {
	fetcher        fetch.Fetcher
	categoryRepo   repository.CategoryRepo
	articleService ArticleService
}

func NewImportService(
	fetcher fetch.Fetcher,
	categoryRepo repository.CategoryRepo,
	articleService ArticleService,
) ImportService {
	return &ImportServiceImpl{
		fetcher:        fetcher,
		categoryRepo:   categoryRepo,
		articleService: articleService,
	}
}

// ImportFromURL 抓取外部网页正文并存为站内文章，
// AI 可用时补全摘要与标签
func (s *ImportServiceImpl) ImportFromURL(ctx context.Context, userId uint64, importDTO *dto.ImportArticleDTO) (*dto.ArticleDTO, error) {
	category, err := s.categoryRepo.GetCategory(ctx, importDTO.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	page, err := s.fetcher.FetchArticle(ctx, importDTO.URL)
	if err != nil {
		log.ErrorContext(ctx, "fetch external article error", "url", importDTO.URL, "err", err)
		return nil, ErrImportFailed
	}
	if page.Title == "" || page.Text == "" {
		return nil, ErrImportFailed
	}

	createDTO := &dto.CreateArticleDTO{
		Title:      page.Title,
		Content:    page.Content,
		CategoryID: importDTO.CategoryID,
		Author:     importDTO.URL,
		Scope:      "public",
	}
	if page.Excerpt != "" {
		excerpt := page.Excerpt
		createDTO.Summary = &excerpt
	}
	if page.ImageURL != "" {
		imageURL := page.ImageURL
		createDTO.ImageURL = &imageURL
	}

	if createDTO.Summary == nil && llm.Enabled() {
		if assist, err := llm.SummarizeArticle(ctx, page.Title, page.Text); err == nil {
			createDTO.Summary = &assist.Summary
			createDTO.Tags = assist.Tags
		}
	}

	return s.articleService.CreateArticle(ctx, userId, createDTO)
}
