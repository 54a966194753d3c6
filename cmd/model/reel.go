package model

// Reel 短视频实体 审核通过的有效举报会将Status置为inactive
type Reel struct {
	ReelId       int64 `gorm:"primaryKey;autoIncrement:false"`
	UserId       int64 `gorm:"index"`
	VideoUrl     string
	CoverUrl     string
	Title        string `gorm:"type:varchar(255)"`
	Description  string `gorm:"type:varchar(1024)"`
	Status       string `gorm:"type:varchar(16);index"`
	VisitCount   int64
	LikeCount    int64
	CommentCount int64
	CreatedAt    string
	UpdatedAt    string
}
