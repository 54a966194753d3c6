package interaction

import (
	"context"

	"ReelVibe.com/cmd/api/handlers"
	"ReelVibe.com/cmd/interaction/service"
	"ReelVibe.com/pkg/errno"
	"ReelVibe.com/pkg/permission"
	"github.com/cloudwego/hertz/pkg/app"
)

type AddReplyParam struct {
	CommentId int64  `json:"comment_id" form:"comment_id" query:"comment_id"`
	Content   string `json:"content" form:"content"`
}

type UpdateReplyParam struct {
	CommentId int64  `json:"comment_id" form:"comment_id" query:"comment_id"`
	ReplyId   int64  `json:"reply_id" form:"reply_id" query:"reply_id"`
	Content   string `json:"content" form:"content"`
}

type ReplyIdParam struct {
	CommentId int64 `json:"comment_id" form:"comment_id" query:"comment_id"`
	ReplyId   int64 `json:"reply_id" form:"reply_id" query:"reply_id"`
}

type ListReplyParam struct {
	CommentId int64 `json:"comment_id" form:"comment_id" query:"comment_id"`
	PageNum   int64 `json:"page_num" form:"page_num" query:"page_num"`
	PageSize  int64 `json:"page_size" form:"page_size" query:"page_size"`
}

// AddReply 在评论下追加回复
func AddReply(ctx context.Context, c *app.RequestContext) {
	var param AddReplyParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	userId, _, err := handlers.GetCallerIdentity(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}

	reply, err := service.NewReplyService(ctx, handlers.GetProducer()).AddReply(ctx, &service.AddReplyRequest{
		CommentId: param.CommentId,
		UserId:    userId,
		Content:   param.Content,
	})
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, reply)
}

// GetReply 单条回复详情
func GetReply(ctx context.Context, c *app.RequestContext) {
	var param ReplyIdParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	view, err := service.NewReplyService(ctx, handlers.GetProducer()).GetReply(ctx, param.CommentId, param.ReplyId)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, view)
}

// UpdateReply 修改回复内容 作者或管理员可改
func UpdateReply(ctx context.Context, c *app.RequestContext) {
	var param UpdateReplyParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	userId, role, err := handlers.GetCallerIdentity(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}

	replyService := service.NewReplyService(ctx, handlers.GetProducer())
	view, err := replyService.GetReply(ctx, param.CommentId, param.ReplyId)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	if !permission.CanModify(userId, role, view.UserId) {
		handlers.SendResponse(c, errno.ForbiddenErr, nil)
		return
	}

	if err := replyService.EditReply(ctx, param.CommentId, param.ReplyId, param.Content); err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, nil)
}

// ListReply 评论下的回复列表 按插入顺序
func ListReply(ctx context.Context, c *app.RequestContext) {
	var param ListReplyParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	views, err := service.NewReplyService(ctx, handlers.GetProducer()).ListReply(ctx, &service.ListReplyRequest{
		CommentId: param.CommentId,
		PageNum:   param.PageNum,
		PageSize:  param.PageSize,
	})
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, views)
}
