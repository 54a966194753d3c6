package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	interactiondb "ReelVibe.com/cmd/interaction/dal/db"
	"ReelVibe.com/cmd/model"
	reeldb "ReelVibe.com/cmd/reel/dal/db"
	"ReelVibe.com/cmd/report/dal/db"
	"ReelVibe.com/pkg/constants"
	"ReelVibe.com/pkg/errno"
	"ReelVibe.com/pkg/lock"
	"ReelVibe.com/pkg/permission"
	"ReelVibe.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/gorm"
)

// ReportStore 举报服务依赖的存储操作
type ReportStore interface {
	CheckReelExists(ctx context.Context, reelId int64) (bool, error)
	CheckCommentExists(ctx context.Context, commentId int64) (bool, error)
	CheckReplyExists(ctx context.Context, commentId, replyId int64) (bool, error)
	CreateReport(ctx context.Context, report *model.Report) error
	GetReportInfo(ctx context.Context, reportId int64) (*model.Report, error)
	FindActiveDuplicate(ctx context.Context, report *model.Report) (bool, error)
	ListReports(ctx context.Context, filter *db.ReportFilter, pageNum, pageSize int64) ([]*model.Report, int64, error)
	SoftDeleteReport(ctx context.Context, reportId int64, updatedAt string) error
	ApplyReview(ctx context.Context, reportId, reviewerId int64, verdict, reviewedAt string, deactivateReelId int64) error
}

type dbReportStore struct{}

func (dbReportStore) CheckReelExists(ctx context.Context, reelId int64) (bool, error) {
	return reeldb.CheckReelExists(ctx, reelId)
}
func (dbReportStore) CheckCommentExists(ctx context.Context, commentId int64) (bool, error) {
	return interactiondb.CheckCommentExists(ctx, commentId)
}
func (dbReportStore) CheckReplyExists(ctx context.Context, commentId, replyId int64) (bool, error) {
	return interactiondb.CheckReplyExists(ctx, commentId, replyId)
}
func (dbReportStore) CreateReport(ctx context.Context, report *model.Report) error {
	return db.CreateReport(ctx, report)
}
func (dbReportStore) GetReportInfo(ctx context.Context, reportId int64) (*model.Report, error) {
	return db.GetReportInfo(ctx, reportId)
}
func (dbReportStore) FindActiveDuplicate(ctx context.Context, report *model.Report) (bool, error) {
	return db.FindActiveDuplicate(ctx, report)
}
func (dbReportStore) ListReports(ctx context.Context, filter *db.ReportFilter, pageNum, pageSize int64) ([]*model.Report, int64, error) {
	return db.ListReports(ctx, filter, pageNum, pageSize)
}
func (dbReportStore) SoftDeleteReport(ctx context.Context, reportId int64, updatedAt string) error {
	return db.SoftDeleteReport(ctx, reportId, updatedAt)
}
func (dbReportStore) ApplyReview(ctx context.Context, reportId, reviewerId int64, verdict, reviewedAt string, deactivateReelId int64) error {
	return db.ApplyReview(ctx, reportId, reviewerId, verdict, reviewedAt, deactivateReelId)
}

type SubmitReportRequest struct {
	ReporterId int64
	ReelId     int64
	CommentId  int64
	ReplyId    int64
	Reason     string
	ReportType string
}

type ListReportRequest struct {
	ReportType string
	Status     string
	Verdict    string
	ReviewerId int64
	ReelId     int64
	PageNum    int64
	PageSize   int64
}

type ReportService struct {
	ctx   context.Context
	store ReportStore
}

func NewReportService(ctx context.Context) *ReportService {
	return &ReportService{ctx: ctx, store: dbReportStore{}}
}

// SubmitReport 提交举报 重复举报静默吞掉 不报错也不产生第二条记录
func (service *ReportService) SubmitReport(ctx context.Context, req *SubmitReportRequest) error {
	if !constants.ReportReasons[req.Reason] {
		return errno.RequestErr.WithMessage("invalid report reason")
	}
	if err := service.validateTarget(ctx, req); err != nil {
		return err
	}

	now := time.Now().Format(constants.DataFormate)
	report := &model.Report{
		ReportId:   utils.GenerateReportID(),
		ReporterId: req.ReporterId,
		ReelId:     req.ReelId,
		CommentId:  req.CommentId,
		ReplyId:    req.ReplyId,
		Reason:     req.Reason,
		ReportType: req.ReportType,
		Status:     constants.ReportStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// 同一用户对同一目标同一理由并发提交时用分布式锁串行化去重检查
	mutex := lock.NewMutex("report:dedup:" + utils.MD5(dedupKey(report)))
	if mutex != nil {
		if err := mutex.LockContext(ctx); err != nil {
			hlog.CtxWarnf(ctx, "Failed to acquire report dedup lock: %v", err)
		} else {
			defer func() {
				if _, err := mutex.UnlockContext(ctx); err != nil {
					hlog.CtxWarnf(ctx, "Failed to release report dedup lock: %v", err)
				}
			}()
		}
	}

	dup, err := service.store.FindActiveDuplicate(ctx, report)
	if err != nil {
		return errno.MysqlErr
	}
	if dup {
		// 已有同元组的活跃举报 幂等返回成功
		return nil
	}

	if err := service.store.CreateReport(ctx, report); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return errno.MysqlErr
	}
	return nil
}

// WithdrawReport 撤回举报 举报人本人或管理员可以撤 软删除保留审计轨迹
func (service *ReportService) WithdrawReport(ctx context.Context, reportId, callerId int64, callerRole string) error {
	report, err := service.store.GetReportInfo(ctx, reportId)
	if err != nil {
		return errno.NotFoundErr.WithMessage("report not found")
	}
	if !permission.CanModify(callerId, callerRole, report.ReporterId) {
		return errno.ForbiddenErr
	}
	if report.Status == constants.ReportStatusDeleted {
		return nil
	}
	if err := service.store.SoftDeleteReport(ctx, reportId, time.Now().Format(constants.DataFormate)); err != nil {
		return errno.MysqlErr
	}
	return nil
}

// GetReport 举报详情 审核队列里的单条记录
func (service *ReportService) GetReport(ctx context.Context, reportId int64) (*model.Report, error) {
	report, err := service.store.GetReportInfo(ctx, reportId)
	if err != nil {
		return nil, errno.NotFoundErr.WithMessage("report not found")
	}
	return report, nil
}

// ListReport 审核队列 支持按类型/状态/裁决/审核人/Reel过滤
func (service *ReportService) ListReport(ctx context.Context, req *ListReportRequest) ([]*model.Report, int64, error) {
	if req.PageNum <= 0 {
		req.PageNum = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = constants.DefaultLimit
	}
	if req.PageSize > constants.MaxLimit {
		req.PageSize = constants.MaxLimit
	}
	filter := &db.ReportFilter{
		ReportType: req.ReportType,
		Status:     req.Status,
		Verdict:    req.Verdict,
		ReviewerId: req.ReviewerId,
		ReelId:     req.ReelId,
	}
	reports, total, err := service.store.ListReports(ctx, filter, req.PageNum, req.PageSize)
	if err != nil {
		return nil, 0, errno.MysqlErr
	}
	return reports, total, nil
}

// validateTarget 目标必须真实存在 comment/reply类型的举报还要求定位字段齐全
func (service *ReportService) validateTarget(ctx context.Context, req *SubmitReportRequest) error {
	switch req.ReportType {
	case constants.ReportTypeReel:
	case constants.ReportTypeComment:
		if req.CommentId == 0 {
			return errno.RequestErr.WithMessage("comment id is required")
		}
	case constants.ReportTypeReply:
		if req.CommentId == 0 || req.ReplyId == 0 {
			return errno.RequestErr.WithMessage("comment id and reply id are required")
		}
	default:
		return errno.RequestErr.WithMessage("invalid report type")
	}

	exists, err := service.store.CheckReelExists(ctx, req.ReelId)
	if err != nil {
		return errno.MysqlErr
	}
	if !exists {
		return errno.NotFoundErr.WithMessage("reel not found")
	}

	if req.ReportType == constants.ReportTypeComment || req.ReportType == constants.ReportTypeReply {
		exists, err = service.store.CheckCommentExists(ctx, req.CommentId)
		if err != nil {
			return errno.MysqlErr
		}
		if !exists {
			return errno.NotFoundErr.WithMessage("comment not found")
		}
	}
	if req.ReportType == constants.ReportTypeReply {
		exists, err = service.store.CheckReplyExists(ctx, req.CommentId, req.ReplyId)
		if err != nil {
			return errno.MysqlErr
		}
		if !exists {
			return errno.NotFoundErr.WithMessage("reply not found")
		}
	}
	return nil
}

func dedupKey(report *model.Report) string {
	return fmt.Sprintf("%d:%d:%d:%d:%s:%s", report.ReporterId, report.ReelId, report.CommentId, report.ReplyId, report.Reason, report.ReportType)
}
