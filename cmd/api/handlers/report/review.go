package report

import (
	"context"

	"ReelVibe.com/cmd/api/handlers"
	"ReelVibe.com/cmd/report/service"
	"ReelVibe.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

type ReviewReportParam struct {
	ReportId int64  `json:"report_id" form:"report_id" query:"report_id"`
	Verdict  string `json:"verdict" form:"verdict" query:"verdict"`
}

// ReviewReport 版主给举报写结论 路由层已保证调用方是版主
func ReviewReport(ctx context.Context, c *app.RequestContext) {
	var param ReviewReportParam
	if err := c.BindAndValidate(&param); err != nil {
		handlers.SendResponse(c, errno.RequestErr, nil)
		return
	}
	reviewerId, _, err := handlers.GetCallerIdentity(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}

	report, err := service.NewReviewService(ctx, handlers.GetProducer()).ReviewReport(ctx, &service.ReviewRequest{
		ReportId:   param.ReportId,
		ReviewerId: reviewerId,
		Verdict:    param.Verdict,
	})
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, errno.Success, report)
}
