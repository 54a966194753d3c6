package service

import (
	"context"
	"time"

	"ReelVibe.com/cmd/interaction/dal/db"
	"ReelVibe.com/cmd/model"
	reeldb "ReelVibe.com/cmd/reel/dal/db"
	"ReelVibe.com/pkg/cache"
	"ReelVibe.com/pkg/constants"
	"ReelVibe.com/pkg/errno"
	"ReelVibe.com/pkg/mq"
	"ReelVibe.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

// CommentStore 评论服务依赖的存储操作
type CommentStore interface {
	CheckReelExists(ctx context.Context, reelId int64) (bool, error)
	GetReelInfo(ctx context.Context, reelId int64) (*model.Reel, error)
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error)
	UpdateCommentContent(ctx context.Context, commentId int64, content, updatedAt string) error
	DeleteCommentCascade(ctx context.Context, commentId int64) error
	GetReelCommentListByPart(ctx context.Context, reelId, pageNum, pageSize int64) ([]*model.Comment, error)
	GetReelCommentCount(ctx context.Context, reelId int64) (int64, error)
	GetCommentLikeCount(ctx context.Context, commentId int64) (int64, error)
	GetCommentLikeList(ctx context.Context, commentId int64) ([]int64, error)
	GetReplyListByPart(ctx context.Context, commentId, pageNum, pageSize int64) ([]*model.Reply, error)
	GetReplyIdsOfComment(ctx context.Context, commentId int64) ([]int64, error)
	GetReplyLikeCount(ctx context.Context, replyId int64) (int64, error)
	GetReplyLikeList(ctx context.Context, replyId int64) ([]int64, error)
	IncrReelCommentCount(ctx context.Context, reelId, delta int64) error
}

type dbCommentStore struct{}

func (dbCommentStore) CheckReelExists(ctx context.Context, reelId int64) (bool, error) {
	return reeldb.CheckReelExists(ctx, reelId)
}
func (dbCommentStore) GetReelInfo(ctx context.Context, reelId int64) (*model.Reel, error) {
	return reeldb.GetReelInfo(ctx, reelId)
}
func (dbCommentStore) CreateComment(ctx context.Context, comment *model.Comment) error {
	return db.CreateComment(ctx, comment)
}
func (dbCommentStore) GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error) {
	return db.GetCommentInfo(ctx, commentId)
}
func (dbCommentStore) UpdateCommentContent(ctx context.Context, commentId int64, content, updatedAt string) error {
	return db.UpdateCommentContent(ctx, commentId, content, updatedAt)
}
func (dbCommentStore) DeleteCommentCascade(ctx context.Context, commentId int64) error {
	return db.DeleteCommentCascade(ctx, commentId)
}
func (dbCommentStore) GetReelCommentListByPart(ctx context.Context, reelId, pageNum, pageSize int64) ([]*model.Comment, error) {
	return db.GetReelCommentListByPart(ctx, reelId, pageNum, pageSize)
}
func (dbCommentStore) GetReelCommentCount(ctx context.Context, reelId int64) (int64, error) {
	return db.GetReelCommentCount(ctx, reelId)
}
func (dbCommentStore) GetCommentLikeCount(ctx context.Context, commentId int64) (int64, error) {
	return db.GetCommentLikeCount(ctx, commentId)
}
func (dbCommentStore) GetCommentLikeList(ctx context.Context, commentId int64) ([]int64, error) {
	return db.GetCommentLikeList(ctx, commentId)
}
func (dbCommentStore) GetReplyListByPart(ctx context.Context, commentId, pageNum, pageSize int64) ([]*model.Reply, error) {
	return db.GetReplyListByPart(ctx, commentId, pageNum, pageSize)
}
func (dbCommentStore) GetReplyIdsOfComment(ctx context.Context, commentId int64) ([]int64, error) {
	return db.GetReplyIdsOfComment(ctx, commentId)
}
func (dbCommentStore) GetReplyLikeCount(ctx context.Context, replyId int64) (int64, error) {
	return db.GetReplyLikeCount(ctx, replyId)
}
func (dbCommentStore) GetReplyLikeList(ctx context.Context, replyId int64) ([]int64, error) {
	return db.GetReplyLikeList(ctx, replyId)
}
func (dbCommentStore) IncrReelCommentCount(ctx context.Context, reelId, delta int64) error {
	return reeldb.IncrReelCommentCount(ctx, reelId, delta)
}

// ReplyView 回复及其点赞集合
type ReplyView struct {
	*model.Reply
	LikeCount   int64   `json:"like_count"`
	LikeUserIds []int64 `json:"like_user_ids"`
}

// CommentView 评论详情 内嵌回复列表按插入顺序排列
type CommentView struct {
	*model.Comment
	LikeCount   int64        `json:"like_count"`
	LikeUserIds []int64      `json:"like_user_ids"`
	ReplyCount  int64        `json:"reply_count"`
	Replies     []*ReplyView `json:"replies"`
}

type CreateCommentRequest struct {
	ReelId  int64
	UserId  int64
	Content string
}

type ListCommentRequest struct {
	ReelId   int64
	PageNum  int64
	PageSize int64
}

type CommentService struct {
	ctx          context.Context
	store        CommentStore
	cacheManager *cache.LikeCacheManager
	producer     *mq.Producer
}

func NewCommentService(ctx context.Context, producer *mq.Producer) *CommentService {
	var cacheManager *cache.LikeCacheManager
	if cache.GetClient() != nil {
		cacheManager = cache.NewLikeCacheManager(cache.GetClient())
	}
	return &CommentService{
		ctx:          ctx,
		store:        dbCommentStore{},
		cacheManager: cacheManager,
		producer:     producer,
	}
}

// CreateComment 在Reel下新建评论
func (service *CommentService) CreateComment(ctx context.Context, req *CreateCommentRequest) (*model.Comment, error) {
	content, err := utils.ValidateContent(req.Content)
	if err != nil {
		return nil, err
	}

	exists, err := service.store.CheckReelExists(ctx, req.ReelId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	if !exists {
		return nil, errno.NotFoundErr.WithMessage("reel not found")
	}

	now := time.Now().Format(constants.DataFormate)
	comment := &model.Comment{
		CommentId: utils.GenerateCommentID(),
		ReelId:    req.ReelId,
		UserId:    req.UserId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := service.store.CreateComment(ctx, comment); err != nil {
		return nil, errno.MysqlErr
	}

	if err := service.store.IncrReelCommentCount(ctx, req.ReelId, 1); err != nil {
		hlog.CtxWarnf(ctx, "Failed to incr comment count of reel %d: %v", req.ReelId, err)
	}
	service.sendCommentNotification(ctx, comment)
	return comment, nil
}

// GetComment 评论详情 含点赞集合与全部回复
func (service *CommentService) GetComment(ctx context.Context, commentId int64) (*CommentView, error) {
	comment, err := service.store.GetCommentInfo(ctx, commentId)
	if err != nil {
		return nil, errno.NotFoundErr.WithMessage("comment not found")
	}

	view, err := service.buildCommentView(ctx, comment)
	if err != nil {
		return nil, err
	}

	replies, err := service.store.GetReplyListByPart(ctx, commentId, 1, constants.MaxLimit)
	if err != nil {
		return nil, errno.MysqlErr
	}
	view.ReplyCount = int64(len(replies))
	view.Replies = make([]*ReplyView, 0, len(replies))
	for _, reply := range replies {
		likeCount, err := service.getReplyLikeCount(ctx, reply.ReplyId)
		if err != nil {
			return nil, errno.MysqlErr
		}
		likeUserIds, err := service.store.GetReplyLikeList(ctx, reply.ReplyId)
		if err != nil {
			return nil, errno.MysqlErr
		}
		view.Replies = append(view.Replies, &ReplyView{
			Reply:       reply,
			LikeCount:   likeCount,
			LikeUserIds: likeUserIds,
		})
	}
	return view, nil
}

// EditComment 修改评论内容 只有作者或管理员可以改 权限在handler校验
func (service *CommentService) EditComment(ctx context.Context, commentId int64, content string) error {
	content, err := utils.ValidateContent(content)
	if err != nil {
		return err
	}
	if _, err := service.store.GetCommentInfo(ctx, commentId); err != nil {
		return errno.NotFoundErr.WithMessage("comment not found")
	}
	if err := service.store.UpdateCommentContent(ctx, commentId, content, time.Now().Format(constants.DataFormate)); err != nil {
		return errno.MysqlErr
	}
	return nil
}

// DeleteComment 删除评论 内嵌的回复与两级点赞集合一并消失
func (service *CommentService) DeleteComment(ctx context.Context, commentId int64) error {
	comment, err := service.store.GetCommentInfo(ctx, commentId)
	if err != nil {
		return errno.NotFoundErr.WithMessage("comment not found")
	}

	replyIds, err := service.store.GetReplyIdsOfComment(ctx, commentId)
	if err != nil {
		return errno.MysqlErr
	}

	if err := service.store.DeleteCommentCascade(ctx, commentId); err != nil {
		return errno.MysqlErr
	}

	if err := service.store.IncrReelCommentCount(ctx, comment.ReelId, -1); err != nil {
		hlog.CtxWarnf(ctx, "Failed to decr comment count of reel %d: %v", comment.ReelId, err)
	}

	if service.cacheManager != nil {
		go func() {
			cacheCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := service.cacheManager.DeleteCommentAndAllAbout(cacheCtx, commentId, replyIds); err != nil {
				hlog.Warnf("Failed to clean like count cache of comment %d: %v", commentId, err)
			}
		}()
	}
	return nil
}

// ListComment 分页列出Reel下的评论 按创建时间倒序
func (service *CommentService) ListComment(ctx context.Context, req *ListCommentRequest) ([]*CommentView, int64, error) {
	if req.PageNum <= 0 {
		req.PageNum = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = constants.DefaultLimit
	}
	if req.PageSize > constants.MaxLimit {
		req.PageSize = constants.MaxLimit
	}

	exists, err := service.store.CheckReelExists(ctx, req.ReelId)
	if err != nil {
		return nil, 0, errno.MysqlErr
	}
	if !exists {
		return nil, 0, errno.NotFoundErr.WithMessage("reel not found")
	}

	comments, err := service.store.GetReelCommentListByPart(ctx, req.ReelId, req.PageNum, req.PageSize)
	if err != nil {
		return nil, 0, errno.MysqlErr
	}
	total, err := service.store.GetReelCommentCount(ctx, req.ReelId)
	if err != nil {
		return nil, 0, errno.MysqlErr
	}

	views := make([]*CommentView, 0, len(comments))
	for _, comment := range comments {
		view, err := service.buildCommentView(ctx, comment)
		if err != nil {
			return nil, 0, err
		}
		replyIds, err := service.store.GetReplyIdsOfComment(ctx, comment.CommentId)
		if err != nil {
			return nil, 0, errno.MysqlErr
		}
		view.ReplyCount = int64(len(replyIds))
		views = append(views, view)
	}
	return views, total, nil
}

// buildCommentView 组装单条评论的点赞信息 计数走缓存旁路
func (service *CommentService) buildCommentView(ctx context.Context, comment *model.Comment) (*CommentView, error) {
	likeCount, err := service.getCommentLikeCount(ctx, comment.CommentId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	likeUserIds, err := service.store.GetCommentLikeList(ctx, comment.CommentId)
	if err != nil {
		return nil, errno.MysqlErr
	}
	return &CommentView{
		Comment:     comment,
		LikeCount:   likeCount,
		LikeUserIds: likeUserIds,
	}, nil
}

func (service *CommentService) getCommentLikeCount(ctx context.Context, commentId int64) (int64, error) {
	if service.cacheManager != nil {
		count, hit, err := service.cacheManager.GetCommentLikeCount(ctx, commentId)
		if err != nil {
			hlog.CtxWarnf(ctx, "Comment like count cache read failed: %v", err)
		} else if hit {
			return count, nil
		}
	}
	count, err := service.store.GetCommentLikeCount(ctx, commentId)
	if err != nil {
		return 0, err
	}
	if service.cacheManager != nil {
		if err := service.cacheManager.SetCommentLikeCount(ctx, commentId, count); err != nil {
			hlog.CtxWarnf(ctx, "Comment like count cache write failed: %v", err)
		}
	}
	return count, nil
}

func (service *CommentService) getReplyLikeCount(ctx context.Context, replyId int64) (int64, error) {
	if service.cacheManager != nil {
		count, hit, err := service.cacheManager.GetReplyLikeCount(ctx, replyId)
		if err != nil {
			hlog.CtxWarnf(ctx, "Reply like count cache read failed: %v", err)
		} else if hit {
			return count, nil
		}
	}
	count, err := service.store.GetReplyLikeCount(ctx, replyId)
	if err != nil {
		return 0, err
	}
	if service.cacheManager != nil {
		if err := service.cacheManager.SetReplyLikeCount(ctx, replyId, count); err != nil {
			hlog.CtxWarnf(ctx, "Reply like count cache write failed: %v", err)
		}
	}
	return count, nil
}

func (service *CommentService) sendCommentNotification(ctx context.Context, comment *model.Comment) {
	if service.producer == nil {
		return
	}
	reel, err := service.store.GetReelInfo(ctx, comment.ReelId)
	if err != nil {
		hlog.Errorf("Failed to get reel info for notification: %v", err)
		return
	}
	if reel.UserId == comment.UserId {
		return
	}
	event := &mq.NotificationEvent{
		UserID:           reel.UserId,
		FromUserID:       comment.UserId,
		NotificationType: "comment",
		TargetID:         comment.CommentId,
		Content:          "评论了你的作品",
		Timestamp:        time.Now().Unix(),
		EventID:          uuid.New().String(),
	}
	if err := service.producer.PublishNotificationEvent(ctx, event); err != nil {
		hlog.Errorf("Failed to publish notification event: %v", err)
	}
}
