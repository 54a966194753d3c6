package model

// Report 对Reel/评论/回复的举报记录
// CommentId/ReplyId 按ReportType可为0 外键不级联删除 举报作为审计记录保留
type Report struct {
	ReportId   int64 `gorm:"primaryKey;autoIncrement:false"`
	ReporterId int64 `gorm:"index"`
	ReelId     int64 `gorm:"index"`
	CommentId  int64
	ReplyId    int64
	Reason     string `gorm:"type:varchar(32)"`
	ReportType string `gorm:"type:varchar(16);index"`
	Status     string `gorm:"type:varchar(16);index"`
	Verdict    string `gorm:"type:varchar(16)"`
	ReviewerId int64
	ReviewedAt string
	CreatedAt  string
	UpdatedAt  string
}
