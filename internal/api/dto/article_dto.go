package dto

type CreateArticleDTO struct {
	Title      string   `json:"title" validate:"required,min=1,max=200"`
	Content    string   `json:"content" validate:"required"`
	Summary    *string  `json:"summary,omitempty" validate:"omitempty,max=500"`
	CategoryID uint64   `json:"category_id" validate:"required"`
	Author     string   `json:"author" validate:"required,max=60"`
	Tags       []string `json:"tags,omitempty" validate:"omitempty,max=10,dive,min=1,max=30"`
	ImageURL   *string  `json:"image_url,omitempty"`
	VideoURL   *string  `json:"video_url,omitempty"`
	Scope      string   `json:"scope,omitempty" validate:"omitempty,oneof=public internal"`
}

type ArticleDTO struct {
	ID            uint64   `json:"id"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Summary       *string  `json:"summary,omitempty"`
	CategoryID    uint64   `json:"category_id"`
	CategoryName  string   `json:"category_name"`
	Author        string   `json:"author"`
	Tags          []string `json:"tags"`
	LikesCount    int64    `json:"likes_count"`
	DislikesCount int64    `json:"dislikes_count"`
	CommentsCount int64    `json:"comments_count"`
	ViewsCount    int64    `json:"views_count"`
	ImageURL      *string  `json:"image_url,omitempty"`
	VideoURL      *string  `json:"video_url,omitempty"`
	Scope         string   `json:"scope"`
	CreatedAt     string   `json:"created_at"`
}

// VoteDTO action 取 like / dislike
type VoteDTO struct {
	Action string `json:"action" validate:"required,oneof=like dislike"`
}

// EngagementStateDTO 当前用户对单篇文章的投票与收藏状态，附全量互动计数
type EngagementStateDTO struct {
	ArticleID     uint64 `json:"article_id"`
	Action        string `json:"action"`
	Favorite      bool   `json:"favorite"`
	LikesCount    int64  `json:"likes_count"`
	DislikesCount int64  `json:"dislikes_count"`
	CommentsCount int64  `json:"comments_count"`
	ViewsCount    int64  `json:"views_count"`
}

type ImportArticleDTO struct {
	URL        string `json:"url" validate:"required,url"`
	CategoryID uint64 `json:"category_id" validate:"required"`
}
