package service

import (
	"context"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"ReelVibe.com/cmd/model"
	"ReelVibe.com/cmd/reel/dal/db"
	"ReelVibe.com/pkg/constants"
	"ReelVibe.com/pkg/errno"
	"ReelVibe.com/pkg/oss"
	"ReelVibe.com/pkg/permission"
	"ReelVibe.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// ReelStore Reel服务依赖的存储操作
type ReelStore interface {
	CreateReel(ctx context.Context, reel *model.Reel) error
	GetReelInfo(ctx context.Context, reelId int64) (*model.Reel, error)
	UpdateReelStatus(ctx context.Context, reelId int64, status, updatedAt string) error
	GetActiveFeedList(ctx context.Context, pageNum, pageSize int64) ([]*model.Reel, int64, error)
	GetReelListByUser(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Reel, int64, error)
	IncrReelVisitCount(ctx context.Context, reelId int64) error
}

type dbReelStore struct{}

func (dbReelStore) CreateReel(ctx context.Context, reel *model.Reel) error {
	return db.CreateReel(ctx, reel)
}
func (dbReelStore) GetReelInfo(ctx context.Context, reelId int64) (*model.Reel, error) {
	return db.GetReelInfo(ctx, reelId)
}
func (dbReelStore) UpdateReelStatus(ctx context.Context, reelId int64, status, updatedAt string) error {
	return db.UpdateReelStatus(ctx, reelId, status, updatedAt)
}
func (dbReelStore) GetActiveFeedList(ctx context.Context, pageNum, pageSize int64) ([]*model.Reel, int64, error) {
	return db.GetActiveFeedList(ctx, pageNum, pageSize)
}
func (dbReelStore) GetReelListByUser(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Reel, int64, error) {
	return db.GetReelListByUser(ctx, userId, pageNum, pageSize)
}
func (dbReelStore) IncrReelVisitCount(ctx context.Context, reelId int64) error {
	return db.IncrReelVisitCount(ctx, reelId)
}

// uploader 视频与封面的对象存储上传 测试时可替换
type uploader func(ctx context.Context, data []byte, reelId string, contentType string) (string, error)

type PublishReelRequest struct {
	UserId           int64
	Title            string
	Description      string
	VideoData        []byte
	VideoContentType string
	CoverData        []byte
	CoverContentType string
}

type ReelFeedRequest struct {
	PageNum  int64
	PageSize int64
}

type ReelService struct {
	ctx         context.Context
	store       ReelStore
	uploadVideo uploader
	uploadCover uploader
}

func NewReelService(ctx context.Context) *ReelService {
	return &ReelService{
		ctx:         ctx,
		store:       dbReelStore{},
		uploadVideo: oss.UploadReelVideo,
		uploadCover: oss.UploadReelCover,
	}
}

// PublishReel 上传视频与封面到对象存储后落库 新Reel默认active
func (service *ReelService) PublishReel(ctx context.Context, req *PublishReelRequest) (*model.Reel, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errno.RequestErr.WithMessage("title is empty")
	}
	if utf8.RuneCountInString(title) > 100 {
		return nil, errno.RequestErr.WithMessage("title is too long")
	}
	if len(req.VideoData) == 0 {
		return nil, errno.RequestErr.WithMessage("video is empty")
	}

	reelId := utils.GenerateReelID()
	reelIdStr := strconv.FormatInt(reelId, 10)

	videoUrl, err := service.uploadVideo(ctx, req.VideoData, reelIdStr, req.VideoContentType)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to upload reel video: %v", err)
		return nil, errno.OssErr
	}
	var coverUrl string
	if len(req.CoverData) > 0 {
		coverUrl, err = service.uploadCover(ctx, req.CoverData, reelIdStr, req.CoverContentType)
		if err != nil {
			hlog.CtxErrorf(ctx, "Failed to upload reel cover: %v", err)
			return nil, errno.OssErr
		}
	}

	now := time.Now().Format(constants.DataFormate)
	reel := &model.Reel{
		ReelId:      reelId,
		UserId:      req.UserId,
		VideoUrl:    videoUrl,
		CoverUrl:    coverUrl,
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Status:      constants.ReelStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := service.store.CreateReel(ctx, reel); err != nil {
		return nil, errno.MysqlErr
	}
	return reel, nil
}

// GetReel 单个Reel详情 下架与删除的对普通访问不可见
func (service *ReelService) GetReel(ctx context.Context, reelId int64) (*model.Reel, error) {
	reel, err := service.store.GetReelInfo(ctx, reelId)
	if err != nil {
		return nil, errno.NotFoundErr.WithMessage("reel not found")
	}
	if reel.Status != constants.ReelStatusActive {
		return nil, errno.NotFoundErr.WithMessage("reel not found")
	}
	if err := service.store.IncrReelVisitCount(ctx, reelId); err != nil {
		hlog.CtxWarnf(ctx, "Failed to incr visit count of reel %d: %v", reelId, err)
	}
	return reel, nil
}

// Feed 活动Reel流 inactive的不会出现在结果里
func (service *ReelService) Feed(ctx context.Context, req *ReelFeedRequest) ([]*model.Reel, int64, error) {
	if req.PageNum <= 0 {
		req.PageNum = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = constants.DefaultLimit
	}
	if req.PageSize > constants.MaxLimit {
		req.PageSize = constants.MaxLimit
	}
	reels, total, err := service.store.GetActiveFeedList(ctx, req.PageNum, req.PageSize)
	if err != nil {
		return nil, 0, errno.MysqlErr
	}
	return reels, total, nil
}

// ListUserReels 某个作者的作品列表
func (service *ReelService) ListUserReels(ctx context.Context, userId, pageNum, pageSize int64) ([]*model.Reel, int64, error) {
	if pageNum <= 0 {
		pageNum = 1
	}
	if pageSize <= 0 {
		pageSize = constants.DefaultLimit
	}
	if pageSize > constants.MaxLimit {
		pageSize = constants.MaxLimit
	}
	reels, total, err := service.store.GetReelListByUser(ctx, userId, pageNum, pageSize)
	if err != nil {
		return nil, 0, errno.MysqlErr
	}
	return reels, total, nil
}

// DeleteReel 作者本人或管理员下架作品 软删除
func (service *ReelService) DeleteReel(ctx context.Context, reelId, callerId int64, callerRole string) error {
	reel, err := service.store.GetReelInfo(ctx, reelId)
	if err != nil {
		return errno.NotFoundErr.WithMessage("reel not found")
	}
	if !permission.CanModify(callerId, callerRole, reel.UserId) {
		return errno.ForbiddenErr
	}
	if err := service.store.UpdateReelStatus(ctx, reelId, constants.ReelStatusDeleted, time.Now().Format(constants.DataFormate)); err != nil {
		return errno.MysqlErr
	}
	return nil
}
