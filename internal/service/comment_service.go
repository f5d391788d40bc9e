package service

import (
	"Kiosque/internal/api/dto"
	"Kiosque/internal/model"
	"Kiosque/internal/pkg/consts"
	"Kiosque/internal/pkg/kafka"
	"Kiosque/internal/pkg/redis"
	"Kiosque/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

type CommentService interface {
	CreateComment(ctx context.Context, userId, articleId uint64, createDTO *dto.CreateCommentDTO) (*dto.CommentDTO, error)
	ListComments(ctx context.Context, articleId uint64, limit int) ([]*dto.CommentDTO, error)
}

type CommentServiceImpl struct {
	commentRepo repository.CommentRepo
	articleRepo repository.ArticleRepo
	userRepo    repository.UserRepo
	producer    kafka.EventProducer
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	articleRepo repository.ArticleRepo,
	userRepo repository.UserRepo,
	producer kafka.EventProducer,
) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
		producer:    producer,
	}
}

// CreateComment 落库后推送到文章评论频道，订阅端实时收到新评论
func (s *CommentServiceImpl) CreateComment(ctx context.Context, userId, articleId uint64, createDTO *dto.CreateCommentDTO) (*dto.CommentDTO, error) {
	content := strings.TrimSpace(createDTO.Content)
	if content == "" {
		return nil, ErrCommentEmpty
	}

	article, err := s.articleRepo.GetArticle(ctx, articleId)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	user, err := s.userRepo.GetUserById(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	userName := user.Email
	if user.DisplayName != nil && *user.DisplayName != "" {
		userName = *user.DisplayName
	}

	comment := &model.Comment{
		ArticleID: articleId,
		UserID:    userId,
		UserName:  userName,
		Content:   content,
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	commentDTO := toCommentDTO(comment)

	channel := consts.CommentChannelKey + strconv.FormatUint(articleId, 10)
	if payload, err := json.Marshal(commentDTO); err == nil {
		if err := redis.Publish(ctx, channel, string(payload)); err != nil {
			log.WarnContext(ctx, "publish comment error", "articleID", articleId, "err", err)
		}
	}

	s.producer.Publish(ctx, consts.EventTypeComment, userId, articleId)
	return commentDTO, nil
}

// ListComments 最新在前
func (s *CommentServiceImpl) ListComments(ctx context.Context, articleId uint64, limit int) ([]*dto.CommentDTO, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	article, err := s.articleRepo.GetArticle(ctx, articleId)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	comments, err := s.commentRepo.ListByArticle(ctx, articleId, limit)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		result = append(result, toCommentDTO(comment))
	}
	return result, nil
}

func toCommentDTO(comment *model.Comment) *dto.CommentDTO {
	item := &dto.CommentDTO{}
	_ = copier.Copy(item, comment)
	item.CreatedAt = comment.CreatedAt.Format(time.DateTime)
	return item
}
