package service

import (
	"context"
	"time"

	"ReelVibe.com/cmd/interaction/dal/db"
	"ReelVibe.com/cmd/model"
	"ReelVibe.com/pkg/cache"
	"ReelVibe.com/pkg/constants"
	"ReelVibe.com/pkg/errno"
	"ReelVibe.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

// LikeStore 点赞引擎依赖的存储操作
// Add/Remove返回集合是否真正发生了变化 重复的like/unlike是no-op
type LikeStore interface {
	CheckCommentExists(ctx context.Context, commentId int64) (bool, error)
	CheckReplyExists(ctx context.Context, commentId, replyId int64) (bool, error)
	GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error)
	GetReplyInfo(ctx context.Context, commentId, replyId int64) (*model.Reply, error)
	AddCommentLike(ctx context.Context, commentId, userId int64) (bool, error)
	RemoveCommentLike(ctx context.Context, commentId, userId int64) (bool, error)
	AddReplyLike(ctx context.Context, commentId, replyId, userId int64) (bool, error)
	RemoveReplyLike(ctx context.Context, replyId, userId int64) (bool, error)
	TouchReply(ctx context.Context, commentId, replyId int64, updatedAt string) error
	GetCommentLikeCount(ctx context.Context, commentId int64) (int64, error)
	GetReplyLikeCount(ctx context.Context, replyId int64) (int64, error)
}

type dbLikeStore struct{}

func (dbLikeStore) CheckCommentExists(ctx context.Context, commentId int64) (bool, error) {
	return db.CheckCommentExists(ctx, commentId)
}
func (dbLikeStore) CheckReplyExists(ctx context.Context, commentId, replyId int64) (bool, error) {
	return db.CheckReplyExists(ctx, commentId, replyId)
}
func (dbLikeStore) GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error) {
	return db.GetCommentInfo(ctx, commentId)
}
func (dbLikeStore) GetReplyInfo(ctx context.Context, commentId, replyId int64) (*model.Reply, error) {
	return db.GetReplyInfo(ctx, commentId, replyId)
}
func (dbLikeStore) AddCommentLike(ctx context.Context, commentId, userId int64) (bool, error) {
	return db.AddCommentLike(ctx, commentId, userId)
}
func (dbLikeStore) RemoveCommentLike(ctx context.Context, commentId, userId int64) (bool, error) {
	return db.RemoveCommentLike(ctx, commentId, userId)
}
func (dbLikeStore) AddReplyLike(ctx context.Context, commentId, replyId, userId int64) (bool, error) {
	return db.AddReplyLike(ctx, commentId, replyId, userId)
}
func (dbLikeStore) RemoveReplyLike(ctx context.Context, replyId, userId int64) (bool, error) {
	return db.RemoveReplyLike(ctx, replyId, userId)
}
func (dbLikeStore) TouchReply(ctx context.Context, commentId, replyId int64, updatedAt string) error {
	return db.TouchReply(ctx, commentId, replyId, updatedAt)
}
func (dbLikeStore) GetCommentLikeCount(ctx context.Context, commentId int64) (int64, error) {
	return db.GetCommentLikeCount(ctx, commentId)
}
func (dbLikeStore) GetReplyLikeCount(ctx context.Context, replyId int64) (int64, error) {
	return db.GetReplyLikeCount(ctx, replyId)
}

type LikeActionRequest struct {
	UserId     int64
	CommentId  int64
	ReplyId    int64
	ActionType string // "like" or "unlike"
}

// LikeActionService 点赞服务 对评论或其内嵌回复做集合语义的toggle
type LikeActionService struct {
	ctx          context.Context
	store        LikeStore
	cacheManager *cache.LikeCacheManager
	producer     *mq.Producer
}

func NewLikeActionService(ctx context.Context, producer *mq.Producer) *LikeActionService {
	var cacheManager *cache.LikeCacheManager
	if cache.GetClient() != nil {
		cacheManager = cache.NewLikeCacheManager(cache.GetClient())
	}
	return &LikeActionService{
		ctx:          ctx,
		store:        dbLikeStore{},
		cacheManager: cacheManager,
		producer:     producer,
	}
}

// CommentLikeAction 处理评论的like/unlike 返回最新点赞数
// 操作幂等 重复执行相同的(user, action)不改变最终集合
func (service *LikeActionService) CommentLikeAction(ctx context.Context, req *LikeActionRequest) (int64, error) {
	if req.ActionType != constants.ActionLike && req.ActionType != constants.ActionUnlike {
		return 0, errno.RequestErr.WithMessage("invalid action type")
	}

	exists, err := service.store.CheckCommentExists(ctx, req.CommentId)
	if err != nil {
		return 0, errno.MysqlErr
	}
	if !exists {
		return 0, errno.NotFoundErr.WithMessage("comment not found")
	}

	var changed bool
	if req.ActionType == constants.ActionLike {
		changed, err = service.store.AddCommentLike(ctx, req.CommentId, req.UserId)
	} else {
		changed, err = service.store.RemoveCommentLike(ctx, req.CommentId, req.UserId)
	}
	if err != nil {
		return 0, errno.MysqlErr
	}

	if changed {
		service.afterCommentToggle(ctx, req)
	}

	count, err := service.store.GetCommentLikeCount(ctx, req.CommentId)
	if err != nil {
		return 0, errno.MysqlErr
	}
	return count, nil
}

// ReplyLikeAction 处理回复的like/unlike
// 只有集合真正变化时才会刷新回复的更新时间 no-op的toggle不改变时间戳
func (service *LikeActionService) ReplyLikeAction(ctx context.Context, req *LikeActionRequest) (int64, error) {
	if req.ActionType != constants.ActionLike && req.ActionType != constants.ActionUnlike {
		return 0, errno.RequestErr.WithMessage("invalid action type")
	}

	exists, err := service.store.CheckReplyExists(ctx, req.CommentId, req.ReplyId)
	if err != nil {
		return 0, errno.MysqlErr
	}
	if !exists {
		return 0, errno.NotFoundErr.WithMessage("reply not found")
	}

	var changed bool
	if req.ActionType == constants.ActionLike {
		changed, err = service.store.AddReplyLike(ctx, req.CommentId, req.ReplyId, req.UserId)
	} else {
		changed, err = service.store.RemoveReplyLike(ctx, req.ReplyId, req.UserId)
	}
	if err != nil {
		return 0, errno.MysqlErr
	}

	if changed {
		if err := service.store.TouchReply(ctx, req.CommentId, req.ReplyId, time.Now().Format(constants.DataFormate)); err != nil {
			hlog.CtxWarnf(ctx, "Failed to touch reply %d: %v", req.ReplyId, err)
		}
		service.afterReplyToggle(ctx, req)
	}

	count, err := service.store.GetReplyLikeCount(ctx, req.ReplyId)
	if err != nil {
		return 0, errno.MysqlErr
	}
	return count, nil
}

// afterCommentToggle 集合变化后的副作用 缓存增量与点赞通知 均不影响主流程
func (service *LikeActionService) afterCommentToggle(ctx context.Context, req *LikeActionRequest) {
	if service.cacheManager != nil {
		delta := int64(1)
		if req.ActionType == constants.ActionUnlike {
			delta = -1
		}
		go func() {
			cacheCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := service.cacheManager.IncrCommentLikeCount(cacheCtx, req.CommentId, delta); err != nil {
				hlog.Warnf("Failed to update comment like count cache for %d: %v", req.CommentId, err)
			}
		}()
	}
	if req.ActionType == constants.ActionLike {
		service.sendLikeNotification(ctx, req, "comment_like")
	}
}

func (service *LikeActionService) afterReplyToggle(ctx context.Context, req *LikeActionRequest) {
	if service.cacheManager != nil {
		delta := int64(1)
		if req.ActionType == constants.ActionUnlike {
			delta = -1
		}
		go func() {
			cacheCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := service.cacheManager.IncrReplyLikeCount(cacheCtx, req.ReplyId, delta); err != nil {
				hlog.Warnf("Failed to update reply like count cache for %d: %v", req.ReplyId, err)
			}
		}()
	}
	if req.ActionType == constants.ActionLike {
		service.sendLikeNotification(ctx, req, "reply_like")
	}
}

func (service *LikeActionService) sendLikeNotification(ctx context.Context, req *LikeActionRequest, eventType string) {
	if service.producer == nil {
		return
	}

	var toUserId int64
	var content string
	var targetId int64

	if eventType == "comment_like" {
		comment, err := service.store.GetCommentInfo(ctx, req.CommentId)
		if err != nil {
			hlog.Errorf("Failed to get comment info for notification: %v", err)
			return
		}
		toUserId = comment.UserId
		targetId = comment.CommentId
		content = "赞了你的评论"
	} else {
		reply, err := service.store.GetReplyInfo(ctx, req.CommentId, req.ReplyId)
		if err != nil {
			hlog.Errorf("Failed to get reply info for notification: %v", err)
			return
		}
		toUserId = reply.UserId
		targetId = reply.ReplyId
		content = "赞了你的回复"
	}

	// 自己给自己点赞不发通知
	if req.UserId == toUserId {
		return
	}

	event := &mq.NotificationEvent{
		UserID:           toUserId,
		FromUserID:       req.UserId,
		NotificationType: "like",
		TargetID:         targetId,
		Content:          content,
		Timestamp:        time.Now().Unix(),
		EventID:          uuid.New().String(),
	}
	if err := service.producer.PublishNotificationEvent(ctx, event); err != nil {
		hlog.Errorf("Failed to publish notification event: %v", err)
	}
}
