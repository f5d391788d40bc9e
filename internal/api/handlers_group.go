package api

import "Kiosque/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler       *handler.UserHandler
	CategoryHandler   *handler.CategoryHandler
	ArticleHandler    *handler.ArticleHandler
	EngagementHandler *handler.EngagementHandler
	CommentHandler    *handler.CommentHandler
	ListingHandler    *handler.ListingHandler
	PollHandler       *handler.PollHandler
	StatsHandler      *handler.StatsHandler
	MediaHandler      *handler.MediaHandler
}
