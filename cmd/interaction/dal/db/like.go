package db

import (
	"context"
	"time"

	"ReelVibe.com/cmd/model"
	"ReelVibe.com/pkg/constants"
	"ReelVibe.com/pkg/utils"
	"gorm.io/gorm/clause"
)

// AddCommentLike 集合语义由唯一索引保证 重复点赞时RowsAffected为0
// 返回值表示集合是否真正发生了变化
func AddCommentLike(ctx context.Context, commentId, userId int64) (bool, error) {
	result := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&model.CommentLike{
		CommentLikeId: utils.GenerateLikeID(),
		CommentId:     commentId,
		UserId:        userId,
		CreatedAt:     time.Now().Format(constants.DataFormate),
	})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// RemoveCommentLike 取消不存在的点赞是no-op
func RemoveCommentLike(ctx context.Context, commentId, userId int64) (bool, error) {
	result := DB.WithContext(ctx).Where("comment_id = ? AND user_id = ?", commentId, userId).
		Delete(&model.CommentLike{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func AddReplyLike(ctx context.Context, commentId, replyId, userId int64) (bool, error) {
	result := DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&model.ReplyLike{
		ReplyLikeId: utils.GenerateLikeID(),
		CommentId:   commentId,
		ReplyId:     replyId,
		UserId:      userId,
		CreatedAt:   time.Now().Format(constants.DataFormate),
	})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func RemoveReplyLike(ctx context.Context, replyId, userId int64) (bool, error) {
	result := DB.WithContext(ctx).Where("reply_id = ? AND user_id = ?", replyId, userId).
		Delete(&model.ReplyLike{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
