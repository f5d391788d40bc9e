package es

import "time"

// ArticleES 写入 ES 的文章文档
type ArticleES struct {
	ID           uint64    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Summary      string    `json:"summary"`
	Author       string    `json:"author"`
	CategoryID   uint64    `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Tags         []string  `json:"tags"`
	Scope        string    `json:"scope"`
	CreatedAt    time.Time `json:"created_at"`
}
