package service

import (
	"context"
	"testing"

	"ReelVibe.com/pkg/constants"
	"ReelVibe.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewServiceForTest(store ReportStore) *ReviewService {
	return &ReviewService{ctx: context.Background(), store: store}
}

func submitOneReport(t *testing.T, store *fakeReportStore) int64 {
	t.Helper()
	require.NoError(t, newReportServiceForTest(store).SubmitReport(context.Background(), &SubmitReportRequest{
		ReporterId: 20, ReelId: 1, Reason: "nudity", ReportType: constants.ReportTypeReel,
	}))
	var reportId int64
	for id := range store.reports {
		reportId = id
	}
	return reportId
}

func TestReviewReportValidDeactivatesReel(t *testing.T) {
	store := newFakeReportStore()
	store.seedTargets()
	reportId := submitOneReport(t, store)
	service := newReviewServiceForTest(store)

	report, err := service.ReviewReport(context.Background(), &ReviewRequest{
		ReportId: reportId, ReviewerId: 50, Verdict: constants.ReportVerdictValid,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.ReportVerdictValid, report.Verdict)
	assert.Equal(t, int64(50), report.ReviewerId)
	assert.NotEmpty(t, report.ReviewedAt)
	assert.Equal(t, constants.ReelStatusInactive, store.reelStatus[1])
}

func TestReviewReportInvalidLeavesReelAlone(t *testing.T) {
	store := newFakeReportStore()
	store.seedTargets()
	reportId := submitOneReport(t, store)
	service := newReviewServiceForTest(store)

	report, err := service.ReviewReport(context.Background(), &ReviewRequest{
		ReportId: reportId, ReviewerId: 50, Verdict: constants.ReportVerdictInvalid,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.ReportVerdictInvalid, report.Verdict)
	assert.Equal(t, constants.ReelStatusActive, store.reelStatus[1])
}

func TestReviewReportOverwrite(t *testing.T) {
	store := newFakeReportStore()
	store.seedTargets()
	reportId := submitOneReport(t, store)
	service := newReviewServiceForTest(store)
	ctx := context.Background()

	_, err := service.ReviewReport(ctx, &ReviewRequest{
		ReportId: reportId, ReviewerId: 50, Verdict: constants.ReportVerdictInvalid,
	})
	require.NoError(t, err)

	// 二次审核覆盖之前的结论
	report, err := service.ReviewReport(ctx, &ReviewRequest{
		ReportId: reportId, ReviewerId: 51, Verdict: constants.ReportVerdictValid,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.ReportVerdictValid, report.Verdict)
	assert.Equal(t, int64(51), report.ReviewerId)
	assert.Equal(t, constants.ReelStatusInactive, store.reelStatus[1])
}

func TestReviewReportBadVerdict(t *testing.T) {
	store := newFakeReportStore()
	store.seedTargets()
	reportId := submitOneReport(t, store)
	service := newReviewServiceForTest(store)

	_, err := service.ReviewReport(context.Background(), &ReviewRequest{
		ReportId: reportId, ReviewerId: 50, Verdict: "maybe",
	})
	require.Error(t, err)
	assert.Equal(t, errno.RequestErr.ErrCode, errno.ConvertErr(err).ErrCode)
	assert.Equal(t, constants.ReelStatusActive, store.reelStatus[1])
}

func TestReviewReportNotFound(t *testing.T) {
	store := newFakeReportStore()
	store.seedTargets()
	service := newReviewServiceForTest(store)

	_, err := service.ReviewReport(context.Background(), &ReviewRequest{
		ReportId: 404, ReviewerId: 50, Verdict: constants.ReportVerdictValid,
	})
	require.Error(t, err)
	assert.Equal(t, errno.NotFoundErr.ErrCode, errno.ConvertErr(err).ErrCode)
}

func TestReviewWithdrawnReportStillReviewable(t *testing.T) {
	store := newFakeReportStore()
	store.seedTargets()
	reportId := submitOneReport(t, store)
	ctx := context.Background()

	require.NoError(t, newReportServiceForTest(store).WithdrawReport(ctx, reportId, 20, constants.RoleUser))

	// 撤回和审核是两个独立的轴 撤回后的举报依然能写结论并触发下架
	report, err := newReviewServiceForTest(store).ReviewReport(ctx, &ReviewRequest{
		ReportId: reportId, ReviewerId: 50, Verdict: constants.ReportVerdictValid,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.ReportVerdictValid, report.Verdict)
	assert.Equal(t, constants.ReportStatusDeleted, report.Status)
	assert.Equal(t, constants.ReelStatusInactive, store.reelStatus[1])
}
