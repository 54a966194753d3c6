package cache

import (
	"context"
	"fmt"
	"time"

	"ReelVibe.com/config"
	"github.com/redis/go-redis/v9"
)

var rdb *redis.Client

// Load 初始化Redis客户端
func Load() {
	rdb = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
	})
}

func GetClient() *redis.Client {
	return rdb
}

// 缓存键名常量
const (
	// 评论点赞数缓存键
	CommentLikeCountKey = "comment:like_count:%d"
	// 回复点赞数缓存键
	ReplyLikeCountKey = "reply:like_count:%d"
)

// LikeCacheManager 点赞计数缓存管理器
// 计数以数据库为准 缓存只做读加速 toggle后增量更新
type LikeCacheManager struct {
	client        *redis.Client
	counterExpire time.Duration
}

func NewLikeCacheManager(client *redis.Client) *LikeCacheManager {
	return &LikeCacheManager{
		client:        client,
		counterExpire: 1 * time.Hour, // 计数器缓存1小时
	}
}

// GetCommentLikeCount 读取评论点赞数 第二个返回值表示是否命中
func (lcm *LikeCacheManager) GetCommentLikeCount(ctx context.Context, commentId int64) (int64, bool, error) {
	key := fmt.Sprintf(CommentLikeCountKey, commentId)
	count, err := lcm.client.Get(ctx, key).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, false, nil // 缓存未命中
		}
		return 0, false, fmt.Errorf("failed to get comment like count: %w", err)
	}
	return count, true, nil
}

func (lcm *LikeCacheManager) SetCommentLikeCount(ctx context.Context, commentId, count int64) error {
	key := fmt.Sprintf(CommentLikeCountKey, commentId)
	return lcm.client.Set(ctx, key, count, lcm.counterExpire).Err()
}

// IncrCommentLikeCount toggle真正改变集合后增量更新计数 键不存在时跳过
func (lcm *LikeCacheManager) IncrCommentLikeCount(ctx context.Context, commentId, delta int64) error {
	key := fmt.Sprintf(CommentLikeCountKey, commentId)
	exists, err := lcm.client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return nil
	}
	return lcm.client.IncrBy(ctx, key, delta).Err()
}

func (lcm *LikeCacheManager) GetReplyLikeCount(ctx context.Context, replyId int64) (int64, bool, error) {
	key := fmt.Sprintf(ReplyLikeCountKey, replyId)
	count, err := lcm.client.Get(ctx, key).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get reply like count: %w", err)
	}
	return count, true, nil
}

func (lcm *LikeCacheManager) SetReplyLikeCount(ctx context.Context, replyId, count int64) error {
	key := fmt.Sprintf(ReplyLikeCountKey, replyId)
	return lcm.client.Set(ctx, key, count, lcm.counterExpire).Err()
}

func (lcm *LikeCacheManager) IncrReplyLikeCount(ctx context.Context, replyId, delta int64) error {
	key := fmt.Sprintf(ReplyLikeCountKey, replyId)
	exists, err := lcm.client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}
	if exists == 0 {
		return nil
	}
	return lcm.client.IncrBy(ctx, key, delta).Err()
}

// DeleteCommentAndAllAbout 删除评论时清理其本身与所有回复的计数缓存
func (lcm *LikeCacheManager) DeleteCommentAndAllAbout(ctx context.Context, commentId int64, replyIds []int64) error {
	keys := make([]string, 0, len(replyIds)+1)
	keys = append(keys, fmt.Sprintf(CommentLikeCountKey, commentId))
	for _, replyId := range replyIds {
		keys = append(keys, fmt.Sprintf(ReplyLikeCountKey, replyId))
	}
	return lcm.client.Del(ctx, keys...).Err()
}
