package consts

const (
	MimePrefixImage = "image"
	MimePrefixVideo = "video"
)

// 行为事件类型，与 daily_stats 的 stat_type 一致
const (
	EventTypeView         = "view"
	EventTypeRegistration = "registration"
	EventTypeComment      = "comment"
	EventTypeLike         = "like"
)

const (
	RoleAdmin = "ADMIN"
)

const (
	DefaultPageSize = 10
)
