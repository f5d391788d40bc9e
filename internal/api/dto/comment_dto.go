package dto

type CreateCommentDTO struct {
	Content string `json:"content" validate:"required,max=1000"`
}

type CommentDTO struct {
	ID        uint64 `json:"id"`
	ArticleID uint64 `json:"article_id"`
	UserID    uint64 `json:"user_id"`
	UserName  string `json:"user_name"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}
