package interaction

import (
	"context"

	"ReelVibe.com/cmd/api/handlers"
	"ReelVibe.com/cmd/interaction/service"
	"ReelVibe.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

type ListNotificationParam struct {
	PageNum  int64 `json:"page_num" form:"page_num" query:"page_num"`
	PageSize int64 `json:"page_size" form:"page_size" query:"page_size"`
}

type MarkReadParam struct {
	NotificationId int64 `json:"notification_id" form:"notification_id" query:"notification_id"`
}

// ListNotification 当前用户的站内通知
func ListNotification(ctx context.Context, c *app.RequestContext) {
	var param ListNotificationParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	userId, _, err := handlers.GetCallerIdentity(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}

	list, total, err := service.NewNotificationService(ctx).ListNotification(ctx, &service.ListNotificationRequest{
		UserId:   userId,
		PageNum:  param.PageNum,
		PageSize: param.PageSize,
	})
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, map[string]interface{}{
		"items": list,
		"total": total,
	})
}

// UnreadNotificationCount 未读数
func UnreadNotificationCount(ctx context.Context, c *app.RequestContext) {
	userId, _, err := handlers.GetCallerIdentity(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	count, err := service.NewNotificationService(ctx).UnreadCount(ctx, userId)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, map[string]interface{}{"unread_count": count})
}

// MarkNotificationRead 标记单条通知为已读
func MarkNotificationRead(ctx context.Context, c *app.RequestContext) {
	var param MarkReadParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	userId, _, err := handlers.GetCallerIdentity(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	if err := service.NewNotificationService(ctx).MarkRead(ctx, param.NotificationId, userId); err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, nil)
}

// MarkAllNotificationsRead 全部标记已读
func MarkAllNotificationsRead(ctx context.Context, c *app.RequestContext) {
	userId, _, err := handlers.GetCallerIdentity(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	if err := service.NewNotificationService(ctx).MarkAllRead(ctx, userId); err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, nil)
}
