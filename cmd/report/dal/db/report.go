package db

import (
	"context"

	"ReelVibe.com/cmd/model"
	"ReelVibe.com/pkg/constants"
	"gorm.io/gorm"
)

func CreateReport(ctx context.Context, report *model.Report) error {
	return DB.WithContext(ctx).Create(report).Error
}

func GetReportInfo(ctx context.Context, reportId int64) (*model.Report, error) {
	report := &model.Report{}
	if err := DB.WithContext(ctx).Model(&model.Report{}).Where("report_id = ?", reportId).First(report).Error; err != nil {
		return nil, err
	}
	return report, nil
}

// FindActiveDuplicate 判断相同元组的active举报是否已存在
// 元组为 (reporter, reel, comment, reply, reason, report_type)
func FindActiveDuplicate(ctx context.Context, report *model.Report) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Report{}).
		Where("reporter_id = ? AND reel_id = ? AND comment_id = ? AND reply_id = ? AND reason = ? AND report_type = ? AND status = ?",
			report.ReporterId, report.ReelId, report.CommentId, report.ReplyId,
			report.Reason, report.ReportType, constants.ReportStatusActive).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

// ReportFilter 举报列表的筛选条件 零值表示不过滤
type ReportFilter struct {
	ReportType string
	Status     string
	Verdict    string
	ReviewerId int64
	ReelId     int64
}

func ListReports(ctx context.Context, filter *ReportFilter, pageNum, pageSize int64) ([]*model.Report, int64, error) {
	query := DB.WithContext(ctx).Model(&model.Report{})
	if filter.ReportType != "" {
		query = query.Where("report_type = ?", filter.ReportType)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Verdict != "" {
		query = query.Where("verdict = ?", filter.Verdict)
	}
	if filter.ReviewerId != 0 {
		query = query.Where("reviewer_id = ?", filter.ReviewerId)
	}
	if filter.ReelId != 0 {
		query = query.Where("reel_id = ?", filter.ReelId)
	}

	var count int64
	list := make([]*model.Report, 0)
	if err := query.Count(&count).
		Order("created_at desc").Limit(int(pageSize)).Offset(int(pageNum-1) * int(pageSize)).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, count, nil
}

// SoftDeleteReport 举报的生命周期只有active->deleted一条转移
func SoftDeleteReport(ctx context.Context, reportId int64, updatedAt string) error {
	return DB.WithContext(ctx).Model(&model.Report{}).Where("report_id = ?", reportId).
		Updates(map[string]interface{}{"status": constants.ReportStatusDeleted, "updated_at": updatedAt}).Error
}

// ApplyReview 写入审核结论 verdict为valid时在同一事务内下架目标Reel
// 两个写要么都提交 要么都回滚 避免"举报已确认但内容还在线"的中间态
func ApplyReview(ctx context.Context, reportId, reviewerId int64, verdict, reviewedAt string, deactivateReelId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Report{}).Where("report_id = ?", reportId).
			Updates(map[string]interface{}{
				"verdict":     verdict,
				"reviewer_id": reviewerId,
				"reviewed_at": reviewedAt,
				"updated_at":  reviewedAt,
			}).Error; err != nil {
			return err
		}
		if deactivateReelId != 0 {
			if err := tx.Table("reels").Where("reel_id = ?", deactivateReelId).
				Updates(map[string]interface{}{
					"status":     constants.ReelStatusInactive,
					"updated_at": reviewedAt,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
