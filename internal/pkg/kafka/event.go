package kafka

import "time"

// EngagementEvent 业务侧产生的行为事件，写入统一的事件主题
// Type 取 consts.EventType* 之一
type EngagementEvent struct {
	Type       string    `json:"type"`
	UserID     uint64    `json:"user_id"`
	TargetID   uint64    `json:"target_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
