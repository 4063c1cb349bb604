package repository

import (
	"context"

	"gorm.io/gorm"

	"stock-advisor/internal/model"
	"stock-advisor/pkg/utils"
)

type ReportRepository interface {
	Create(ctx context.Context, report *model.Report) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]model.Report, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{
		db: db,
	}
}

func (r *reportRepository) Create(ctx context.Context, report *model.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// ListByUser returns the user's reports, newest first.
func (r *reportRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]model.Report, error) {
	var reports []model.Report
	query := utils.ApplyOptions(r.db.WithContext(ctx),
		utils.WithOrder("timestamp DESC"),
		utils.WithLimit(limit),
	)
	if err := query.Where("user_id = ?", userID).Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
