package service

import (
	"context"
	"time"

	"ReelVibe.com/cmd/model"
	"ReelVibe.com/pkg/constants"
	"ReelVibe.com/pkg/errno"
	"ReelVibe.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

type ReviewRequest struct {
	ReportId   int64
	ReviewerId int64
	Verdict    string // "valid" or "invalid"
}

// ReviewService 审核服务 只有版主角色能走到这里 入口由路由中间件把守
type ReviewService struct {
	ctx      context.Context
	store    ReportStore
	producer *mq.Producer
}

func NewReviewService(ctx context.Context, producer *mq.Producer) *ReviewService {
	return &ReviewService{ctx: ctx, store: dbReportStore{}, producer: producer}
}

// ReviewReport 给举报写结论 结论可被后续审核覆盖
// valid会在同一事务里把被举报的Reel置为inactive invalid不触碰任何内容
func (service *ReviewService) ReviewReport(ctx context.Context, req *ReviewRequest) (*model.Report, error) {
	if req.Verdict != constants.ReportVerdictValid && req.Verdict != constants.ReportVerdictInvalid {
		return nil, errno.RequestErr.WithMessage("invalid verdict")
	}

	report, err := service.store.GetReportInfo(ctx, req.ReportId)
	if err != nil {
		return nil, errno.NotFoundErr.WithMessage("report not found")
	}

	// 撤回只影响去重轴 不拦审核 已撤回的举报同样可以写结论
	reviewedAt := time.Now().Format(constants.DataFormate)
	var deactivateReelId int64
	if req.Verdict == constants.ReportVerdictValid {
		deactivateReelId = report.ReelId
	}
	if err := service.store.ApplyReview(ctx, req.ReportId, req.ReviewerId, req.Verdict, reviewedAt, deactivateReelId); err != nil {
		return nil, errno.MysqlErr
	}

	report.Verdict = req.Verdict
	report.ReviewerId = req.ReviewerId
	report.ReviewedAt = reviewedAt
	report.UpdatedAt = reviewedAt

	if req.Verdict == constants.ReportVerdictValid {
		service.sendModerationEvent(ctx, report)
	}
	return report, nil
}

func (service *ReviewService) sendModerationEvent(ctx context.Context, report *model.Report) {
	if service.producer == nil {
		return
	}
	event := &mq.ModerationEvent{
		ReportID:   report.ReportId,
		ReelID:     report.ReelId,
		ReviewerID: report.ReviewerId,
		Verdict:    report.Verdict,
		Timestamp:  time.Now().Unix(),
		EventID:    uuid.New().String(),
	}
	if err := service.producer.PublishModerationEvent(ctx, event); err != nil {
		hlog.Errorf("Failed to publish moderation event: %v", err)
	}
}
