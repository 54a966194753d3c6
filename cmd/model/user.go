package model

type User struct {
	UserId    int64  `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	UserName  string `gorm:"type:varchar(64);uniqueIndex" json:"user_name"`
	Password  string `gorm:"type:varchar(128)" json:"-"`
	Role      string `gorm:"type:varchar(16)" json:"role"`
	AvatarUrl string `json:"avatar_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
