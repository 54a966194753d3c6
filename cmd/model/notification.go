package model

// Notification 由MQ消费者落库的站内通知
type Notification struct {
	NotificationId   int64 `gorm:"primaryKey;autoIncrement:false"`
	UserId           int64 `gorm:"index"`
	FromUserId       int64
	NotificationType string `gorm:"type:varchar(32)"`
	TargetId         int64
	Content          string `gorm:"type:varchar(512)"`
	IsRead           bool
	CreatedAt        string
}
