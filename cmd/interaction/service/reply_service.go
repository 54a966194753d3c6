package service

import (
	"context"
	"time"

	"ReelVibe.com/cmd/interaction/dal/db"
	"ReelVibe.com/cmd/model"
	"ReelVibe.com/pkg/constants"
	"ReelVibe.com/pkg/errno"
	"ReelVibe.com/pkg/mq"
	"ReelVibe.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

// ReplyStore 回复服务依赖的存储操作
// 回复内嵌于评论 所有读写都以(commentId, replyId)定位
type ReplyStore interface {
	CheckCommentExists(ctx context.Context, commentId int64) (bool, error)
	GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error)
	CreateReply(ctx context.Context, reply *model.Reply) error
	GetReplyInfo(ctx context.Context, commentId, replyId int64) (*model.Reply, error)
	UpdateReplyContent(ctx context.Context, commentId, replyId int64, content, updatedAt string) error
	GetReplyListByPart(ctx context.Context, commentId, pageNum, pageSize int64) ([]*model.Reply, error)
	GetReplyLikeCount(ctx context.Context, replyId int64) (int64, error)
	GetReplyLikeList(ctx context.Context, replyId int64) ([]int64, error)
}

type dbReplyStore struct{}

func (dbReplyStore) CheckCommentExists(ctx context.Context, commentId int64) (bool, error) {
	return db.CheckCommentExists(ctx, commentId)
}
func (dbReplyStore) GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error) {
	return db.GetCommentInfo(ctx, commentId)
}
func (dbReplyStore) CreateReply(ctx context.Context, reply *model.Reply) error {
	return db.CreateReply(ctx, reply)
}
func (dbReplyStore) GetReplyInfo(ctx context.Context, commentId, replyId int64) (*model.Reply, error) {
	return db.GetReplyInfo(ctx, commentId, replyId)
}
func (dbReplyStore) UpdateReplyContent(ctx context.Context, commentId, replyId int64, content, updatedAt string) error {
	return db.UpdateReplyContent(ctx, commentId, replyId, content, updatedAt)
}
func (dbReplyStore) GetReplyListByPart(ctx context.Context, commentId, pageNum, pageSize int64) ([]*model.Reply, error) {
	return db.GetReplyListByPart(ctx, commentId, pageNum, pageSize)
}
func (dbReplyStore) GetReplyLikeCount(ctx context.Context, replyId int64) (int64, error) {
	return db.GetReplyLikeCount(ctx, replyId)
}
func (dbReplyStore) GetReplyLikeList(ctx context.Context, replyId int64) ([]int64, error) {
	return db.GetReplyLikeList(ctx, replyId)
}

type AddReplyRequest struct {
	CommentId int64
	UserId    int64
	Content   string
}

type ListReplyRequest struct {
	CommentId int64
	PageNum   int64
	PageSize  int64
}

type ReplyService struct {
	ctx      context.Context
	store    ReplyStore
	producer *mq.Producer
}

func NewReplyService(ctx context.Context, producer *mq.Producer) *ReplyService {
	return &ReplyService{
		ctx:      ctx,
		store:    dbReplyStore{},
		producer: producer,
	}
}

// AddReply 在评论下追加回复 回复总是挂在列表末尾
func (service *ReplyService) AddReply(ctx context.Context, req *AddReplyRequest) (*model.Reply, error) {
	content, err := utils.ValidateContent(req.Content)
	if err != nil {
		return nil, err
	}

	exists, err := service.store.CheckCommentExists(ctx, req.CommentId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("comment not found")
	}

	now := time.Now().Format(constants.DataFormate)
	reply := &model.Reply{
		ReplyId:   utils.GenerateReplyID(),
		CommentId: req.CommentId,
		UserId:    req.UserId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := service.store.CreateReply(ctx, reply); err != nil {
		return nil, errno.MysqlErr
	}

	service.sendReplyNotification(ctx, reply)
	return reply, nil
}

// GetReply 单条回复详情 含点赞集合
func (service *ReplyService) GetReply(ctx context.Context, commentId, replyId int64) (*ReplyView, error) {
	reply, err := service.store.GetReplyInfo(ctx, commentId, replyId)
	if err != nil {
		return nil, errno.NotFoundErr.WithMessage("reply not found")
	}
	likeCount, err := service.store.GetReplyLikeCount(ctx, replyId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	likeUserIds, err := service.store.GetReplyLikeList(ctx, replyId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return &ReplyView{
		Reply:       reply,
		LikeCount:   likeCount,
		LikeUserIds: likeUserIds,
	}, nil
}

// EditReply 修改回复内容 只改这一条 不触碰同评论下的其他回复
func (service *ReplyService) EditReply(ctx context.Context, commentId, replyId int64, content string) error {
	content, err := utils.ValidateContent(content)
	if err != nil {
		return err
	}
	if _, err := service.store.GetReplyInfo(ctx, commentId, replyId); err != nil {
		return errno.NotFoundErr.WithMessage("reply not found")
	}
	if err := service.store.UpdateReplyContent(ctx, commentId, replyId, content, time.Now().Format(constants.DataFormate)); err != nil {
		return errno.MysqlErr
	}
	return nil
}

// ListReply 按插入顺序分页列出评论下的回复
func (service *ReplyService) ListReply(ctx context.Context, req *ListReplyRequest) ([]*ReplyView, error) {
	if req.PageNum <= 0 {
		req.PageNum = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = constants.DefaultLimit
	}
	if req.PageSize > constants.MaxLimit {
		req.PageSize = constants.MaxLimit
	}

	exists, err := service.store.CheckCommentExists(ctx, req.CommentId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("comment not found")
	}

	replies, err := service.store.GetReplyListByPart(ctx, req.CommentId, req.PageNum, req.PageSize)
	if err != nil {
		return nil, errno.MysqlErr
	}

	views := make([]*ReplyView, 0, len(replies))
	for _, reply := range replies {
		likeCount, err := service.store.GetReplyLikeCount(ctx, reply.ReplyId)
		if err != nil {
			return nil, errno.MysqlErr
		}
		likeUserIds, err := service.store.GetReplyLikeList(ctx, reply.ReplyId)
		if err != nil {
			return nil, errno.MysqlErr
		}
		views = append(views, &ReplyView{
			Reply:       reply,
			LikeCount:   likeCount,
			LikeUserIds: likeUserIds,
		})
	}
	return views, nil
}

func (service *ReplyService) sendReplyNotification(ctx context.Context, reply *model.Reply) {
	if service.producer == nil {
		return
	}
	comment, err := service.store.GetCommentInfo(ctx, reply.CommentId)
	if err != nil {
		hlog.Errorf("Failed to get comment info for notification: %v", err)
		return
	}
	if comment.UserId == reply.UserId {
		return
	}
	event := &mq.NotificationEvent{
		UserID:           comment.UserId,
		FromUserID:       reply.UserId,
		NotificationType: "reply",
		TargetID:         reply.ReplyId,
		Content:          "回复了你的评论",
		Timestamp:        time.Now().Unix(),
		EventID:          uuid.New().String(),
	}
	if err := service.producer.PublishNotificationEvent(ctx, event); err != nil {
		hlog.Errorf("Failed to publish notification event: %v", err)
	}
}
