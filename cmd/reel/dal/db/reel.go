package db

import (
	"context"

	"ReelVibe.com/cmd/model"
	"ReelVibe.com/pkg/constants"
	"gorm.io/gorm"
)

func CreateReel(ctx context.Context, reel *model.Reel) error {
	return DB.WithContext(ctx).Create(reel).Error
}

func GetReelInfo(ctx context.Context, reelId int64) (*model.Reel, error) {
	reel := &model.Reel{}
	if err := DB.WithContext(ctx).Model(&model.Reel{}).Where("reel_id = ?", reelId).First(reel).Error; err != nil {
		return nil, err
	}
	return reel, nil
}

// CheckReelExists 已删除的Reel视为不存在 下架的仍可被举报
func CheckReelExists(ctx context.Context, reelId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Reel{}).
		Where("reel_id = ? AND status <> ?", reelId, constants.ReelStatusDeleted).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

func UpdateReelStatus(ctx context.Context, reelId int64, status, updatedAt string) error {
	return DB.WithContext(ctx).Model(&model.Reel{}).Where("reel_id = ?", reelId).
		Updates(map[string]interface{}{"status": status, "updated_at": updatedAt}).Error
}

// 有效举报下架后的Reel不会出现在feed中
func GetActiveFeedList(ctx context.Context, pageNum, pageSize int64) ([]*model.Reel, int64, error) {
	list := make([]*model.Reel, 0)
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Reel{}).Where("status = ?", constants.ReelStatusActive).
		Count(&count).
		Order("created_at desc").Limit(int(pageSize)).Offset(int(pageNum-1) * int(pageSize)).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, count, nil
}

// 获取用户发布的Reel
func GetReelListByUser(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Reel, int64, error) {
	list := make([]*model.Reel, 0)
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Reel{}).
		Where("user_id = ? AND status <> ?", userId, constants.ReelStatusDeleted).
		Count(&count).
		Order("created_at desc").Limit(int(pageSize)).Offset(int(pageNum-1) * int(pageSize)).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, count, nil
}

func IncrReelCommentCount(ctx context.Context, reelId int64, delta int64) error {
	return DB.WithContext(ctx).Model(&model.Reel{}).Where("reel_id = ?", reelId).
		Update("comment_count", gorm.Expr("comment_count + ?", delta)).Error
}

func IncrReelVisitCount(ctx context.Context, reelId int64) error {
	return DB.WithContext(ctx).Model(&model.Reel{}).Where("reel_id = ?", reelId).
		Update("visit_count", gorm.Expr("visit_count + 1")).Error
}
