package db

import (
	"context"

	"ReelVibe.com/cmd/model"
	"gorm.io/gorm"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	return DB.WithContext(ctx).Create(comment).Error
}

// 获取某一条评论的全部信息 不存在时返回gorm.ErrRecordNotFound
func GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error) {
	comment := &model.Comment{}
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).First(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// 用来检查给定的comment_id是否在这个数据表中
func CheckCommentExists(ctx context.Context, commentId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

func UpdateCommentContent(ctx context.Context, commentId int64, content, updatedAt string) error {
	return DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).
		Updates(map[string]interface{}{"content": content, "updated_at": updatedAt}).Error
}

// DeleteCommentCascade 硬删除评论 同时删除其内嵌的全部回复与点赞行 作为单个事务执行
func DeleteCommentCascade(ctx context.Context, commentId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", commentId).Delete(&model.ReplyLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comment_id = ?", commentId).Delete(&model.Reply{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comment_id = ?", commentId).Delete(&model.CommentLike{}).Error; err != nil {
			return err
		}
		return tx.Where("comment_id = ?", commentId).Delete(&model.Comment{}).Error
	})
}

// 获取Reel的评论列表 按发布时间倒序分页
func GetReelCommentListByPart(ctx context.Context, reelId, pageNum, pageSize int64) ([]*model.Comment, error) {
	list := make([]*model.Comment, 0)
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("reel_id = ?", reelId).
		Order("created_at desc").Limit(int(pageSize)).Offset(int(pageNum-1) * int(pageSize)).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func GetReelCommentCount(ctx context.Context, reelId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("reel_id = ?", reelId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// 获得点赞某一条评论的所有用户
func GetCommentLikeList(ctx context.Context, commentId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.CommentLike{}).Where("comment_id = ?", commentId).Select("user_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// 这段代码表示获得评论的点赞数
func GetCommentLikeCount(ctx context.Context, commentId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.CommentLike{}).Where("comment_id = ?", commentId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// 通知落库 由MQ消费者调用
func CreateNotification(ctx context.Context, notification *model.Notification) error {
	return DB.WithContext(ctx).Create(notification).Error
}
