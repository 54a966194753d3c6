package permission

import (
	"ReelVibe.com/pkg/constants"
)

// IsModerator 判断角色是否具有审核权限
func IsModerator(role string) bool {
	return role == constants.RoleAdmin || role == constants.RoleSuperAdmin
}

// CanModify 作者本人或管理员可以编辑/删除资源
// 所有写操作统一走这一个检查 避免每个handler各写一份
func CanModify(callerId int64, callerRole string, ownerId int64) bool {
	if callerId == ownerId {
		return true
	}
	return IsModerator(callerRole)
}
