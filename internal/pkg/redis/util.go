package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotInitialized = errors.New("redis client is not initialized")

// SetWithExpiration 设置键值对并设置过期时间
func SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if Rdb == nil {
		return ErrNotInitialized
	}
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue 获取字符串类型的值
func GetValue(ctx context.Context, key string) (string, error) {
	if Rdb == nil {
		return "", ErrNotInitialized
	}
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// GetInt64 获取整型值，键不存在时返回 redis.Nil
func GetInt64(ctx context.Context, key string) (int64, error) {
	if Rdb == nil {
		return 0, ErrNotInitialized
	}
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(value, 10, 64)
}

// Incr 自增
func Incr(ctx context.Context, key string) error {
	if Rdb == nil {
		return ErrNotInitialized
	}
	return Rdb.Incr(ctx, key).Err()
}

// IncrBy 指定步长自增
func IncrBy(ctx context.Context, key string, delta int64) error {
	if Rdb == nil {
		return ErrNotInitialized
	}
	return Rdb.IncrBy(ctx, key, delta).Err()
}

// SAdd 集合添加成员
func SAdd(ctx context.Context, key string, members ...interface{}) error {
	if Rdb == nil {
		return ErrNotInitialized
	}
	return Rdb.SAdd(ctx, key, members...).Err()
}

// GetSet 获取集合
func GetSet(ctx context.Context, key string) ([]string, error) {
	if Rdb == nil {
		return nil, ErrNotInitialized
	}
	value, err := Rdb.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Expire 设置过期时间
func Expire(ctx context.Context, key string, expiration time.Duration) error {
	if Rdb == nil {
		return ErrNotInitialized
	}
	return Rdb.Expire(ctx, key, expiration).Err()
}

// Rename 重命名键，源键不存在时报错
func Rename(ctx context.Context, oldKey string, newKey string) error {
	if Rdb == nil {
		return ErrNotInitialized
	}
	return Rdb.Rename(ctx, oldKey, newKey).Err()
}

// DeleteKey 删除一个键
func DeleteKey(ctx context.Context, keys ...string) error {
	if Rdb == nil {
		return ErrNotInitialized
	}
	return Rdb.Del(ctx, keys...).Err()
}

// TryLock 尝试获取分布式锁
func TryLock(ctx context.Context, key string, value interface{}, expiration time.Duration, retryTimes int) (bool, error) {
	if Rdb == nil {
		return false, ErrNotInitialized
	}
	for i := 0; i <= retryTimes; i++ {
		success, err := Rdb.SetNX(ctx, key, value, expiration).Result()
		if err != nil {
			return false, err
		}
		if success {
			return true, nil
		}
		time.Sleep(time.Millisecond * 200)
	}
	return false, nil
}

// UnLock 释放锁
func UnLock(ctx context.Context, key string, value interface{}) {
	if Rdb == nil {
		return
	}
	Rdb.Eval(ctx, "if redis.call('get', KEYS[1]) == ARGV[1] then return redis.call('del', KEYS[1]) else return 0 end", []string{key}, value)
}

// Publish 发布消息
func Publish(ctx context.Context, channel string, payload interface{}) error {
	if Rdb == nil {
		return ErrNotInitialized
	}
	return Rdb.Publish(ctx, channel, payload).Err()
}

// Subscribe 订阅频道
func Subscribe(ctx context.Context, channels ...string) *redis.PubSub {
	return Rdb.Subscribe(ctx, channels...)
}

// GetRdbClient 获取redis客户端
func GetRdbClient() *redis.Client {
	return Rdb
}
