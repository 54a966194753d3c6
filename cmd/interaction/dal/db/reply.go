package db

import (
	"context"

	"ReelVibe.com/cmd/model"
)

func CreateReply(ctx context.Context, reply *model.Reply) error {
	return DB.WithContext(ctx).Create(reply).Error
}

// GetReplyInfo 回复只能通过(commentId, replyId)二元组定位
func GetReplyInfo(ctx context.Context, commentId, replyId int64) (*model.Reply, error) {
	reply := &model.Reply{}
	if err := DB.WithContext(ctx).Model(&model.Reply{}).
		Where("comment_id = ? AND reply_id = ?", commentId, replyId).First(reply).Error; err != nil {
		return nil, err
	}
	return reply, nil
}

func CheckReplyExists(ctx context.Context, commentId, replyId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Reply{}).
		Where("comment_id = ? AND reply_id = ?", commentId, replyId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

// UpdateReplyContent 只更新内容与更新时间 点赞集合和作者创建后不可变
// 单行UPDATE保证同一评论下兄弟回复的并发修改互不覆盖
func UpdateReplyContent(ctx context.Context, commentId, replyId int64, content, updatedAt string) error {
	return DB.WithContext(ctx).Model(&model.Reply{}).
		Where("comment_id = ? AND reply_id = ?", commentId, replyId).
		Updates(map[string]interface{}{"content": content, "updated_at": updatedAt}).Error
}

// TouchReply 点赞集合真正变化时刷新回复的更新时间
func TouchReply(ctx context.Context, commentId, replyId int64, updatedAt string) error {
	return DB.WithContext(ctx).Model(&model.Reply{}).
		Where("comment_id = ? AND reply_id = ?", commentId, replyId).
		Update("updated_at", updatedAt).Error
}

// 回复列表始终按插入顺序展示 最早的在前
func GetReplyListByPart(ctx context.Context, commentId, pageNum, pageSize int64) ([]*model.Reply, error) {
	list := make([]*model.Reply, 0)
	if err := DB.WithContext(ctx).Model(&model.Reply{}).Where("comment_id = ?", commentId).
		Order("reply_id asc").Limit(int(pageSize)).Offset(int(pageNum-1) * int(pageSize)).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func GetReplyIdsOfComment(ctx context.Context, commentId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Reply{}).Where("comment_id = ?", commentId).
		Select("reply_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func GetReplyLikeCount(ctx context.Context, replyId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.ReplyLike{}).Where("reply_id = ?", replyId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func GetReplyLikeList(ctx context.Context, replyId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.ReplyLike{}).Where("reply_id = ?", replyId).
		Select("user_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
