package constants

// 时间统一使用该格式存储为字符串
const DataFormate = "2006-01-02 15:04:05"

const (
	DefaultLimit = int64(10)
	MaxLimit     = int64(50)
)

// 评论/回复内容长度限制
const (
	MinContentLength = 1
	MaxContentLength = 500
)

// 用户角色
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

// Reel状态
const (
	ReelStatusActive   = "active"
	ReelStatusInactive = "inactive"
	ReelStatusDeleted  = "deleted"
)

// 举报相关的枚举
const (
	ReportTypeReel    = "reel"
	ReportTypeComment = "comment"
	ReportTypeReply   = "reply"

	ReportStatusActive  = "active"
	ReportStatusDeleted = "deleted"

	ReportVerdictUnset   = ""
	ReportVerdictValid   = "valid"
	ReportVerdictInvalid = "invalid"
)

// 举报原因为封闭枚举
var ReportReasons = map[string]bool{
	"spam":      true,
	"abuse":     true,
	"nudity":    true,
	"violence":  true,
	"hate":      true,
	"copyright": true,
	"other":     true,
}

// 点赞动作
const (
	ActionLike   = "like"
	ActionUnlike = "unlike"
)
