package db

import (
	"context"

	"ReelVibe.com/cmd/model"
)

func GetNotificationList(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Notification, int64, error) {
	var count int64
	list := make([]*model.Notification, 0)
	if err := DB.WithContext(ctx).Model(&model.Notification{}).Where("user_id = ?", userId).
		Count(&count).
		Order("created_at desc").Limit(int(pageSize)).Offset(int(pageNum-1) * int(pageSize)).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, count, nil
}

func GetUnreadNotificationCount(ctx context.Context, userId int64) (count int64, err error) {
	err = DB.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userId, false).Count(&count).Error
	return
}

// MarkNotificationRead 只允许收件人标记自己的通知
func MarkNotificationRead(ctx context.Context, notificationId, userId int64) error {
	return DB.WithContext(ctx).Model(&model.Notification{}).
		Where("notification_id = ? AND user_id = ?", notificationId, userId).
		Update("is_read", true).Error
}

func MarkAllNotificationsRead(ctx context.Context, userId int64) error {
	return DB.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userId, false).
		Update("is_read", true).Error
}
