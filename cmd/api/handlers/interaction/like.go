package interaction

import (
	"context"

	"ReelVibe.com/cmd/api/handlers"
	"ReelVibe.com/cmd/interaction/service"
	"ReelVibe.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

type CommentLikeActionParam struct {
	CommentId  int64  `json:"comment_id" form:"comment_id" query:"comment_id"`
	ActionType string `json:"action_type" form:"action_type" query:"action_type"`
}

type ReplyLikeActionParam struct {
	CommentId  int64  `json:"comment_id" form:"comment_id" query:"comment_id"`
	ReplyId    int64  `json:"reply_id" form:"reply_id" query:"reply_id"`
	ActionType string `json:"action_type" form:"action_type" query:"action_type"`
}

// CommentLikeAction 评论点赞/取消 幂等toggle
func CommentLikeAction(ctx context.Context, c *app.RequestContext) {
	var param CommentLikeActionParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	userId, _, err := handlers.GetCallerIdentity(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}

	count, err := service.NewLikeActionService(ctx, handlers.GetProducer()).CommentLikeAction(ctx, &service.LikeActionRequest{
		UserId:     userId,
		CommentId:  param.CommentId,
		ActionType: param.ActionType,
	})
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, map[string]interface{}{"like_count": count})
}

// ReplyLikeAction 回复点赞/取消 幂等toggle
func ReplyLikeAction(ctx context.Context, c *app.RequestContext) {
	var param ReplyLikeActionParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	userId, _, err := handlers.GetCallerIdentity(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}

	count, err := service.NewLikeActionService(ctx, handlers.GetProducer()).ReplyLikeAction(ctx, &service.LikeActionRequest{
		UserId:     userId,
		CommentId:  param.CommentId,
		ReplyId:    param.ReplyId,
		ActionType: param.ActionType,
	})
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, map[string]interface{}{"like_count": count})
}
