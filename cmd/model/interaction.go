package model

// Comment 属于某一个Reel 回复以独立行的形式内嵌在评论聚合中
type Comment struct {
	CommentId int64 `gorm:"primaryKey;autoIncrement:false"`
	ReelId    int64 `gorm:"index"`
	UserId    int64
	Content   string `gorm:"type:varchar(512)"`
	CreatedAt string
	UpdatedAt string
}

// Reply 只存在于其父评论之下 不会被单独删除
type Reply struct {
	ReplyId   int64 `gorm:"primaryKey;autoIncrement:false"`
	CommentId int64 `gorm:"index"`
	UserId    int64
	Content   string `gorm:"type:varchar(512)"`
	CreatedAt string
	UpdatedAt string
}

// CommentLike 点赞集合的一行 唯一索引保证集合语义
type CommentLike struct {
	CommentLikeId int64 `gorm:"primaryKey;autoIncrement:false"`
	CommentId     int64 `gorm:"uniqueIndex:uk_comment_user"`
	UserId        int64 `gorm:"uniqueIndex:uk_comment_user"`
	CreatedAt     string
}

type ReplyLike struct {
	ReplyLikeId int64 `gorm:"primaryKey;autoIncrement:false"`
	CommentId   int64 `gorm:"index"`
	ReplyId     int64 `gorm:"uniqueIndex:uk_reply_user"`
	UserId      int64 `gorm:"uniqueIndex:uk_reply_user"`
	CreatedAt   string
}
