package model

import (
	"time"
)

// 投票动作取值
const (
	VoteNone    int8 = 0
	VoteLike    int8 = 1
	VoteDislike int8 = 2
)

// ArticleReaction 记录单个用户对单篇文章的投票与收藏状态
// (user_id, article_id) 唯一，action 为 none 且未收藏时该行可不存在
type ArticleReaction struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	ArticleID uint64    `gorm:"primaryKey;index:idx_article_id" json:"articleId"`
	Action    int8      `gorm:"not null;default:0" json:"action"`
	Favorite  bool      `gorm:"type:tinyint(1);not null;default:0" json:"favorite"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ArticleReaction) TableName() string {
	return "article_reactions"
}

// VoteResult 单次投票落库后的最终状态与计数增量
type VoteResult struct {
	Action        int8
	DeltaLikes    int
	DeltaDislikes int
}

// ResolveVote 计算一次投票后的新状态与两个计数器的增量
// 同票撤销，异票切换，空票新增；增量绝对值不超过 1
func ResolveVote(prev, requested int8) (next int8, dLikes, dDislikes int) {
	if requested != VoteLike && requested != VoteDislike {
		return prev, 0, 0
	}

	switch {
	case prev == requested:
		next = VoteNone
		if requested == VoteLike {
			dLikes = -1
		} else {
			dDislikes = -1
		}
	case prev == VoteNone:
		next = requested
		if requested == VoteLike {
			dLikes = 1
		} else {
			dDislikes = 1
		}
	default:
		next = requested
		if requested == VoteLike {
			dLikes, dDislikes = 1, -1
		} else {
			dLikes, dDislikes = -1, 1
		}
	}
	return next, dLikes, dDislikes
}
