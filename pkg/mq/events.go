package mq

// NotificationEvent 通知事件 消费后落库为站内通知
type NotificationEvent struct {
	UserID           int64  `json:"user_id"`      // 接收通知的用户
	FromUserID       int64  `json:"from_user_id"` // 触发通知的用户
	NotificationType string `json:"notification_type"`
	TargetID         int64  `json:"target_id"`
	Content          string `json:"content"`
	Timestamp        int64  `json:"timestamp"`
	EventID          string `json:"event_id"`
}

// ModerationEvent 审核事件 有效举报下架Reel后发布
type ModerationEvent struct {
	ReportID   int64  `json:"report_id"`
	ReelID     int64  `json:"reel_id"`
	ReviewerID int64  `json:"reviewer_id"`
	Verdict    string `json:"verdict"`
	Timestamp  int64  `json:"timestamp"`
	EventID    string `json:"event_id"`
}
