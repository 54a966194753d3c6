package service

import (
	"context"
	"time"

	"ReelVibe.com/cmd/interaction/dal/db"
	"ReelVibe.com/cmd/model"
	reeldb "ReelVibe.com/cmd/reel/dal/db"
	"ReelVibe.com/pkg/constants"
	"ReelVibe.com/pkg/errno"
	"ReelVibe.com/pkg/mq"
	"ReelVibe.com/pkg/utils"
)

// NotificationPersister 消费MQ事件并落库为站内通知
// 实现mq.NotificationEventHandler与mq.ModerationEventHandler
type NotificationPersister struct{}

func NewNotificationPersister() *NotificationPersister {
	return &NotificationPersister{}
}

func (p *NotificationPersister) HandleNotificationEvent(ctx context.Context, event *mq.NotificationEvent) error {
	notification := &model.Notification{
		NotificationId:   utils.GenerateNotificationID(),
		UserId:           event.UserID,
		FromUserId:       event.FromUserID,
		NotificationType: event.NotificationType,
		TargetId:         event.TargetID,
		Content:          event.Content,
		IsRead:           false,
		CreatedAt:        time.Unix(event.Timestamp, 0).Format(constants.DataFormate),
	}
	return db.CreateNotification(ctx, notification)
}

// HandleModerationEvent 有效举报下架Reel后通知作者
func (p *NotificationPersister) HandleModerationEvent(ctx context.Context, event *mq.ModerationEvent) error {
	reel, err := reeldb.GetReelInfo(ctx, event.ReelID)
	if err != nil {
		return err
	}
	notification := &model.Notification{
		NotificationId:   utils.GenerateNotificationID(),
		UserId:           reel.UserId,
		NotificationType: "moderation",
		TargetId:         event.ReelID,
		Content:          "你的作品因违规被下架",
		IsRead:           false,
		CreatedAt:        time.Unix(event.Timestamp, 0).Format(constants.DataFormate),
	}
	return db.CreateNotification(ctx, notification)
}

type ListNotificationRequest struct {
	UserId   int64
	PageNum  int64
	PageSize int64
}

type NotificationService struct {
	ctx context.Context
}

func NewNotificationService(ctx context.Context) *NotificationService {
	return &NotificationService{ctx: ctx}
}

func (service *NotificationService) ListNotification(ctx context.Context, req *ListNotificationRequest) ([]*model.Notification, int64, error) {
	if req.PageNum <= 0 {
		req.PageNum = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = constants.DefaultLimit
	}
	if req.PageSize > constants.MaxLimit {
		req.PageSize = constants.MaxLimit
	}
	list, total, err := db.GetNotificationList(ctx, req.UserId, req.PageNum, req.PageSize)
	if err != nil {
		return nil, 0, errno.MysqlErr
	}
	return list, total, nil
}

func (service *NotificationService) UnreadCount(ctx context.Context, userId int64) (int64, error) {
	count, err := db.GetUnreadNotificationCount(ctx, userId)
	if err != nil {
		return 0, errno.MysqlErr
	}
	return count, nil
}

func (service *NotificationService) MarkRead(ctx context.Context, notificationId, userId int64) error {
	if err := db.MarkNotificationRead(ctx, notificationId, userId); err != nil {
		return errno.MysqlErr
	}
	return nil
}

func (service *NotificationService) MarkAllRead(ctx context.Context, userId int64) error {
	if err := db.MarkAllNotificationsRead(ctx, userId); err != nil {
		return errno.MysqlErr
	}
	return nil
}
