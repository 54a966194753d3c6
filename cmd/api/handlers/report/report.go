package report

import (
	"context"

	"ReelVibe.com/cmd/api/handlers"
	"ReelVibe.com/cmd/report/service"
	"ReelVibe.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

type SubmitReportParam struct {
	ReelId     int64  `json:"reel_id" form:"reel_id" query:"reel_id"`
	CommentId  int64  `json:"comment_id" form:"comment_id" query:"comment_id"`
	ReplyId    int64  `json:"reply_id" form:"reply_id" query:"reply_id"`
	Reason     string `json:"reason" form:"reason" query:"reason"`
	ReportType string `json:"report_type" form:"report_type" query:"report_type"`
}

type ReportIdParam struct {
	ReportId int64 `json:"report_id" form:"report_id" query:"report_id"`
}

type ListReportParam struct {
	ReportType string `json:"report_type" form:"report_type" query:"report_type"`
	Status     string `json:"status" form:"status" query:"status"`
	Verdict    string `json:"verdict" form:"verdict" query:"verdict"`
	ReviewerId int64  `json:"reviewer_id" form:"reviewer_id" query:"reviewer_id"`
	ReelId     int64  `json:"reel_id" form:"reel_id" query:"reel_id"`
	PageNum    int64  `json:"page_num" form:"page_num" query:"page_num"`
	PageSize   int64  `json:"page_size" form:"page_size" query:"page_size"`
}

// SubmitReport 提交举报 重复提交返回成功但不会产生新记录
func SubmitReport(ctx context.Context, c *app.RequestContext) {
	var param SubmitReportParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	userId, _, err := handlers.GetCallerIdentity(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}

	if err := service.NewReportService(ctx).SubmitReport(ctx, &service.SubmitReportRequest{
		ReporterId: userId,
		ReelId:     param.ReelId,
		CommentId:  param.CommentId,
		ReplyId:    param.ReplyId,
		Reason:     param.Reason,
		ReportType: param.ReportType,
	}); err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, nil)
}

// WithdrawReport 撤回举报 举报人本人或管理员
func WithdrawReport(ctx context.Context, c *app.RequestContext) {
	var param ReportIdParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	userId, role, err := handlers.GetCallerIdentity(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	if err := service.NewReportService(ctx).WithdrawReport(ctx, param.ReportId, userId, role); err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, nil)
}

// GetReport 举报详情 仅版主
func GetReport(ctx context.Context, c *app.RequestContext) {
	var param ReportIdParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	report, err := service.NewReportService(ctx).GetReport(ctx, param.ReportId)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, report)
}

// ListReport 审核队列 仅版主
func ListReport(ctx context.Context, c *app.RequestContext) {
	var param ListReportParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	reports, total, err := service.NewReportService(ctx).ListReport(ctx, &service.ListReportRequest{
		ReportType: param.ReportType,
		Status:     param.Status,
		Verdict:    param.Verdict,
		ReviewerId: param.ReviewerId,
		ReelId:     param.ReelId,
		PageNum:    param.PageNum,
		PageSize:   param.PageSize,
	})
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, map[string]interface{}{
		"items": reports,
		"total": total,
	})
}
