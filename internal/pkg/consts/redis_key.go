package consts

const (
	ArticleLikeKey     = "article:like:"
	ArticleDislikeKey  = "article:dislike:"
	ArticleCommentKey  = "article:comment:"
	ArticleViewKey     = "article:view:"
	ArticleDirtyKey    = "article:dirty"
	ListingViewKey     = "listing:view:"
	CommentChannelKey  = "article:comments:channel:"
	StatsDailyKey      = "stats:daily:" // stats:daily:<type>:<yyyy-mm-dd>
	TokenBlacklistKey  = "token:blacklist:"
	CategoryAllKey     = "category:all"
	StatsFlushLockKey  = "stats:flush:lock"
	CounterSyncLockKey = "counter:sync:lock"
)
