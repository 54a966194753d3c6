package interaction

import (
	"context"

	"ReelVibe.com/cmd/api/handlers"
	"ReelVibe.com/cmd/interaction/service"
	"ReelVibe.com/pkg/errno"
	"ReelVibe.com/pkg/permission"
	"github.com/cloudwego/hertz/pkg/app"
)

type CreateCommentParam struct {
	ReelId  int64  `json:"reel_id" form:"reel_id" query:"reel_id"`
	Content string `json:"content" form:"content"`
}

type UpdateCommentParam struct {
	CommentId int64  `json:"comment_id" form:"comment_id" query:"comment_id"`
	Content   string `json:"content" form:"content"`
}

type CommentIdParam struct {
	CommentId int64 `json:"comment_id" form:"comment_id" query:"comment_id"`
}

type ListCommentParam struct {
	ReelId   int64 `json:"reel_id" form:"reel_id" query:"reel_id"`
	PageNum  int64 `json:"page_num" form:"page_num" query:"page_num"`
	PageSize int64 `json:"page_size" form:"page_size" query:"page_size"`
}

// CreateComment 在Reel下发表评论
func CreateComment(ctx context.Context, c *app.RequestContext) {
	var param CreateCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	userId, _, err := handlers.GetCallerIdentity(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}

	comment, err := service.NewCommentService(ctx, handlers.GetProducer()).CreateComment(ctx, &service.CreateCommentRequest{
		ReelId:  param.ReelId,
		UserId:  userId,
		Content: param.Content,
	})
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, comment)
}

// GetComment 评论详情 含点赞集合与内嵌回复
func GetComment(ctx context.Context, c *app.RequestContext) {
	var param CommentIdParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	view, err := service.NewCommentService(ctx, handlers.GetProducer()).GetComment(ctx, param.CommentId)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, view)
}

// UpdateComment 修改评论 作者或管理员可改
func UpdateComment(ctx context.Context, c *app.RequestContext) {
	var param UpdateCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	userId, role, err := handlers.GetCallerIdentity(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}

	commentService := service.NewCommentService(ctx, handlers.GetProducer())
	view, err := commentService.GetComment(ctx, param.CommentId)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	if !permission.CanModify(userId, role, view.UserId) {
		handlers.SendResponse(c, errno.ForbiddenErr, nil)
		return
	}

	if err := commentService.EditComment(ctx, param.CommentId, param.Content); err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, nil)
}

// DeleteComment 删除评论及其全部回复与点赞
func DeleteComment(ctx context.Context, c *app.RequestContext) {
	var param CommentIdParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	userId, role, err := handlers.GetCallerIdentity(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}

	commentService := service.NewCommentService(ctx, handlers.GetProducer())
	view, err := commentService.GetComment(ctx, param.CommentId)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	if !permission.CanModify(userId, role, view.UserId) {
		handlers.SendResponse(c, errno.ForbiddenErr, nil)
		return
	}

	if err := commentService.DeleteComment(ctx, param.CommentId); err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, nil)
}

// ListComment Reel下的评论列表
func ListComment(ctx context.Context, c *app.RequestContext) {
	var param ListCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	views, total, err := service.NewCommentService(ctx, handlers.GetProducer()).ListComment(ctx, &service.ListCommentRequest{
		ReelId:   param.ReelId,
		PageNum:  param.PageNum,
		PageSize: param.PageSize,
	})
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, map[string]interface{}{
		"items": views,
		"total": total,
	})
}
