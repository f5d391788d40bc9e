package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventRepo interface {
	CreateEvent(ctx context.Context, event *EventModel) error
	GetRecentEvents(ctx context.Context, eventType string, limit int64) ([]*EventModel, error)
	CountByDay(ctx context.Context, eventType string, since time.Time) (map[string]int64, error)
}

type eventRepoImpl struct {
	col *mongo.Collection
}

func NewEventRepo(db *mongo.Database) EventRepo {
	return &eventRepoImpl{
		col: db.Collection("user_events"),
	}
}

// CreateEvent 插入一条行为事件
func (s *eventRepoImpl) CreateEvent(ctx context.Context, event *EventModel) error {
	_, err := s.col.InsertOne(ctx, event)
	return err
}

// GetRecentEvents 按时间倒序获取最近的事件，eventType 为空时不过滤
func (s *eventRepoImpl) GetRecentEvents(ctx context.Context, eventType string, limit int64) ([]*EventModel, error) {
	filter := bson.M{}
	if eventType != "" {
		filter["type"] = eventType
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "occurred_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var list []*EventModel
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// CountByDay 按天聚合某类事件的数量，键为 yyyy-MM-dd
func (s *eventRepoImpl) CountByDay(ctx context.Context, eventType string, since time.Time) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"type":        eventType,
			"occurred_at": bson.M{"$gte": since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$occurred_at",
			}},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var rows []struct {
		Day   string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	res := make(map[string]int64, len(rows))
	for _, row := range rows {
		res[row.Day] = row.Count
	}
	return res, nil
}
