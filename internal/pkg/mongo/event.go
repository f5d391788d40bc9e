package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventModel 行为事件，追加写入，作为统计的原始日志
type EventModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type       string             `bson:"type" json:"type"` // view / registration / comment / like
	UserID     uint64             `bson:"user_id" json:"userId"`
	TargetID   uint64             `bson:"target_id" json:"targetId"` // 关联的文章/商品ID，注册事件为 0
	OccurredAt time.Time          `bson:"occurred_at" json:"occurredAt"`
}
