package reel

import (
	"context"
	"io"

	"ReelVibe.com/cmd/api/handlers"
	"ReelVibe.com/cmd/reel/service"
	"ReelVibe.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

type PublishReelParam struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

type ReelIdParam struct {
	ReelId int64 `json:"reel_id" form:"reel_id" query:"reel_id"`
}

type FeedParam struct {
	PageNum  int64 `json:"page_num" form:"page_num" query:"page_num"`
	PageSize int64 `json:"page_size" form:"page_size" query:"page_size"`
}

type ListUserReelsParam struct {
	UserId   int64 `json:"user_id" form:"user_id" query:"user_id"`
	PageNum  int64 `json:"page_num" form:"page_num" query:"page_num"`
	PageSize int64 `json:"page_size" form:"page_size" query:"page_size"`
}

// PublishReel multipart上传视频与封面 发布新Reel
func PublishReel(ctx context.Context, c *app.RequestContext) {
	var param PublishReelParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	userId, _, err := handlers.GetCallerIdentity(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}

	videoData, videoContentType, err := readFormFile(c, "video")
	if err != nil {
		handlers.SendResponse(c, errno.RequestErr.WithMessage("video file is required"), nil)
		return
	}
	// 封面可选
	coverData, coverContentType, _ := readFormFile(c, "cover")

	result, err := service.NewReelService(ctx).PublishReel(ctx, &service.PublishReelRequest{
		UserId:           userId,
		Title:            param.Title,
		Description:      param.Description,
		VideoData:        videoData,
		VideoContentType: videoContentType,
		CoverData:        coverData,
		CoverContentType: coverContentType,
	})
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, result)
}

// GetReel Reel详情
func GetReel(ctx context.Context, c *app.RequestContext) {
	var param ReelIdParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	result, err := service.NewReelService(ctx).GetReel(ctx, param.ReelId)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, result)
}

// Feed 活动Reel流
func Feed(ctx context.Context, c *app.RequestContext) {
	var param FeedParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	reels, total, err := service.NewReelService(ctx).Feed(ctx, &service.ReelFeedRequest{
		PageNum:  param.PageNum,
		PageSize: param.PageSize,
	})
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, map[string]interface{}{
		"items": reels,
		"total": total,
	})
}

// ListUserReels 某个作者的作品列表
func ListUserReels(ctx context.Context, c *app.RequestContext) {
	var param ListUserReelsParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	reels, total, err := service.NewReelService(ctx).ListUserReels(ctx, param.UserId, param.PageNum, param.PageSize)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, map[string]interface{}{
		"items": reels,
		"total": total,
	})
}

// DeleteReel 作者下架自己的作品
func DeleteReel(ctx context.Context, c *app.RequestContext) {
	var param ReelIdParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	userId, role, err := handlers.GetCallerIdentity(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}

	if err := service.NewReelService(ctx).DeleteReel(ctx, param.ReelId, userId, role); err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, nil)
}

func readFormFile(c *app.RequestContext, name string) ([]byte, string, error) {
	fileHeader, err := c.FormFile(name)
	if err != nil {
		return nil, "", err
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return data, fileHeader.Header.Get("Content-Type"), nil
}
